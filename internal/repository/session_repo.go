package repository

import (
	"context"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

// SessionRepository persists the bearer token and role tag together, so no
// reader can observe one without the other.
type SessionRepository interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context) error
}
