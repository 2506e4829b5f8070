package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/app/config"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func testClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(config.APIConfig{BaseURL: server.URL, Timeout: time.Second}, NewNoOpLogger())
}

func noBackend(t *testing.T) *api.Client {
	return testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
}

func TestAuthService_Guard_NoSessionLandsOnLanding(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(nil, repository.ErrNotFound).Once()

	svc := NewAuthService(mockSessions, noBackend(t), NewNoOpLogger())

	page := svc.Guard(context.Background(), entity.PageFarmerHome)

	assert.Equal(t, entity.PageLanding, page)
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Guard_RedirectsToRoleHome(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(&entity.Session{
		AccessToken: signedToken(t, time.Now().Add(time.Hour)),
		Role:        entity.RoleShopOwner,
	}, nil).Once()

	svc := NewAuthService(mockSessions, noBackend(t), NewNoOpLogger())

	page := svc.Guard(context.Background(), entity.PageFarmerHome)

	assert.Equal(t, entity.PageShopOwnerHome, page)
}

func TestAuthService_Guard_ExpiredTokenForcesLogout(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(&entity.Session{
		AccessToken: signedToken(t, time.Now().Add(-time.Hour)),
		Role:        entity.RoleFarmer,
	}, nil).Once()
	mockSessions.On("Delete", mock.Anything).Return(nil).Once()

	svc := NewAuthService(mockSessions, noBackend(t), NewNoOpLogger())

	page := svc.Guard(context.Background(), entity.PageFarmerHome)

	assert.Equal(t, entity.PageLanding, page)
	assert.Empty(t, svc.Token())
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Session_OpaqueTokenIsAccepted(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(&entity.Session{
		AccessToken: "opaque-not-a-jwt",
		Role:        entity.RoleFarmer,
	}, nil).Once()

	svc := NewAuthService(mockSessions, noBackend(t), NewNoOpLogger())

	session := svc.Session(context.Background())

	require.NotNil(t, session)
	assert.Equal(t, entity.RoleFarmer, session.Role)
}

func TestAuthService_HandleUnauthorized_ClearsSession(t *testing.T) {
	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(&entity.Session{
		AccessToken: signedToken(t, time.Now().Add(time.Hour)),
		Role:        entity.RoleFarmer,
	}, nil).Once()
	mockSessions.On("Delete", mock.Anything).Return(nil).Once()

	svc := NewAuthService(mockSessions, noBackend(t), NewNoOpLogger())
	require.NotEmpty(t, svc.Token())

	svc.HandleUnauthorized()

	assert.Empty(t, svc.Token())
	assert.Nil(t, svc.Session(context.Background()))
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Login_PersistsSession(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)
		json.NewEncoder(w).Encode(api.LoginResponse{AccessToken: token, TokenType: "bearer", Role: entity.RoleFarmer})
	}))

	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(nil, repository.ErrNotFound).Once()
	mockSessions.On("Save", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.AccessToken == token && s.Role == entity.RoleFarmer
	})).Return(nil).Once()

	svc := NewAuthService(mockSessions, client, NewNoOpLogger())

	role, err := svc.Login(context.Background(), "farmer@example.com", "secret")

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleFarmer, role)
	assert.Equal(t, token, svc.Token())
	mockSessions.AssertExpectations(t)
}

func TestAuthService_Login_RejectionKeepsExistingSession(t *testing.T) {
	existingToken := signedToken(t, time.Now().Add(time.Hour))
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))

	mockSessions := new(MockSessionRepository)
	mockSessions.On("Load", mock.Anything).Return(&entity.Session{
		AccessToken: existingToken,
		Role:        entity.RoleFarmer,
	}, nil).Once()

	svc := NewAuthService(mockSessions, client, NewNoOpLogger())

	_, err := svc.Login(context.Background(), "farmer@example.com", "wrong")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect email or password")
	// A failed login attempt must not destroy the session already held.
	assert.Equal(t, existingToken, svc.Token())
	mockSessions.AssertNotCalled(t, "Delete", mock.Anything)
	mockSessions.AssertExpectations(t)
}
