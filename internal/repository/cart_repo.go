package repository

import (
	"context"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

// CartRepository persists the whole cart on every mutation. Load returns
// ErrNotFound when no usable state exists; callers degrade to an empty cart.
type CartRepository interface {
	Load(ctx context.Context) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context) error
}
