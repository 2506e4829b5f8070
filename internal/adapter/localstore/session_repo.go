package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

const sessionFile = "session.json"

type sessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var session entity.Session
	err := r.store.read(sessionFile, &session)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.ErrNotFound
	}
	if session.AccessToken == "" {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if session == nil || session.AccessToken == "" {
		return errors.New("cannot save nil session or session with empty token")
	}
	if err := r.store.write(sessionFile, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	if err := r.store.remove(sessionFile); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
