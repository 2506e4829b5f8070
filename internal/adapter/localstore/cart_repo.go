package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

const cartFile = "cart.json"

type cartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.store.read(cartFile, &cart)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		// Corrupted state is indistinguishable from no state for the caller.
		return nil, repository.ErrNotFound
	}
	if cart.Items == nil {
		cart.Items = make([]entity.CartItem, 0)
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if cart == nil {
		return errors.New("cannot save nil cart")
	}
	if err := r.store.write(cartFile, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context) error {
	if err := r.store.remove(cartFile); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
