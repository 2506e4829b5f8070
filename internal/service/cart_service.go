package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

// CartService manages the client-local cart. Every mutation persists the
// whole cart; absent or unreadable state restores as an empty cart.
type CartService interface {
	Get(ctx context.Context) (*entity.Cart, error)
	Add(ctx context.Context, item entity.InventoryItem) (*entity.Cart, error)
	RemoveAt(ctx context.Context, index int) (*entity.Cart, error)
	Clear(ctx context.Context) error
	Total(ctx context.Context) (float64, error)
}

type cartService struct {
	carts repository.CartRepository
	log   logger.Logger
}

func NewCartService(carts repository.CartRepository, log logger.Logger) CartService {
	return &cartService{carts: carts, log: log}
}

func (s *cartService) load(ctx context.Context) (*entity.Cart, error) {
	cart, err := s.carts.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.NewCart(), nil
		}
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) Get(ctx context.Context) (*entity.Cart, error) {
	return s.load(ctx)
}

func (s *cartService) Add(ctx context.Context, item entity.InventoryItem) (*entity.Cart, error) {
	cart, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(item.InventoryID, item.FertilizerName, item.Price, item.ShopOwnerID, item.ShopOwnerName, item.ImageURL); err != nil {
		return nil, fmt.Errorf("could not add item to cart: %w", err)
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	s.log.Infof("Added inventory %d to cart", item.InventoryID)
	return cart, nil
}

func (s *cartService) RemoveAt(ctx context.Context, index int) (*entity.Cart, error) {
	cart, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	cart.RemoveAt(index)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) Clear(ctx context.Context) error {
	if err := s.carts.Delete(ctx); err != nil {
		return fmt.Errorf("could not clear cart: %w", err)
	}
	s.log.Info("Cart cleared")
	return nil
}

func (s *cartService) Total(ctx context.Context) (float64, error) {
	cart, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}
