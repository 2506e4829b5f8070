package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

// AuthService owns the persisted session and the role-based route guard.
type AuthService interface {
	Login(ctx context.Context, email, password string) (entity.Role, error)
	Register(ctx context.Context, name, email, password string, role entity.Role) error
	Logout(ctx context.Context)
	Session(ctx context.Context) *entity.Session
	Token() string
	Guard(ctx context.Context, current entity.Page) entity.Page
	HandleUnauthorized()
}

type authService struct {
	sessions repository.SessionRepository
	client   *api.Client
	log      logger.Logger

	// cached copy of the persisted session; the client is single-threaded,
	// so no locking discipline is needed
	current *entity.Session
}

func NewAuthService(sessions repository.SessionRepository, client *api.Client, log logger.Logger) AuthService {
	s := &authService{
		sessions: sessions,
		client:   client,
		log:      log,
	}
	s.restore()

	client.SetTokenProvider(s.Token)
	client.SetUnauthorizedHandler(s.HandleUnauthorized)
	return s
}

func (s *authService) restore() {
	session, err := s.sessions.Load(context.Background())
	if err != nil {
		s.current = nil
		return
	}
	s.current = session
}

func (s *authService) Login(ctx context.Context, email, password string) (entity.Role, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Warnf("Login failed for %s: %v", email, err)
		return "", fmt.Errorf("login failed: %w", err)
	}

	session := &entity.Session{
		AccessToken: resp.AccessToken,
		Role:        resp.Role,
		SavedAt:     time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("could not persist session: %w", err)
	}
	s.current = session
	s.log.Infof("Signed in as %s", resp.Role)
	return resp.Role, nil
}

func (s *authService) Register(ctx context.Context, name, email, password string, role entity.Role) error {
	if err := s.client.Register(ctx, name, email, password, role); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	s.log.Infof("Registered %s as %s", email, role)
	return nil
}

func (s *authService) Logout(ctx context.Context) {
	if err := s.sessions.Delete(ctx); err != nil {
		s.log.Warnf("Failed to delete persisted session: %v", err)
	}
	s.current = nil
	s.log.Info("Signed out")
}

// Session returns the active session, or nil when there is none or its
// token has expired.
func (s *authService) Session(ctx context.Context) *entity.Session {
	if !s.current.Authenticated() {
		return nil
	}
	if tokenExpired(s.current.AccessToken) {
		s.log.Info("Session token expired")
		s.Logout(ctx)
		return nil
	}
	return s.current
}

func (s *authService) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.AccessToken
}

// Guard resolves where the client should be. Unauthenticated sessions belong
// on the landing page; authenticated ones on their role's home page, which
// is authoritative over the requested page.
func (s *authService) Guard(ctx context.Context, current entity.Page) entity.Page {
	session := s.Session(ctx)
	if session == nil {
		return entity.PageLanding
	}
	home := entity.HomePage(session.Role)
	if current != home {
		s.log.Debugf("Redirecting %s from %s to %s", session.Role, current, home)
	}
	return home
}

// HandleUnauthorized is invoked by the API client on any 401 outside login.
func (s *authService) HandleUnauthorized() {
	s.Logout(context.Background())
}

// tokenExpired decodes the token's registered claims without verifying the
// signature (the client holds no signing secret) and reports whether exp is
// in the past. Tokens that do not parse as JWTs are left to the backend.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
