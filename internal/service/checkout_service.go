package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

var (
	// ErrNotSignedIn means checkout was invoked without an active session;
	// the backend was never contacted.
	ErrNotSignedIn = errors.New("you must be signed in to place orders")

	// ErrCheckoutInFlight rejects a checkout started before a prior
	// invocation finished, which would risk duplicate orders.
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")
)

// OrderPlacer is the slice of the API client checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req entity.OrderRequest, attemptID string) (*entity.Order, error)
}

// SessionSource is the slice of AuthService checkout needs.
type SessionSource interface {
	Session(ctx context.Context) *entity.Session
}

// CheckoutResult reports what a checkout invocation placed.
type CheckoutResult struct {
	// Orders placed, in the order their seller group was processed. On a
	// partial failure this holds the orders that were placed before the
	// failing group; they remain placed (no rollback).
	Orders []entity.Order

	// PayOrderID is set when exactly one order was created and it still
	// awaits payment, so the caller can start the payment step for it.
	// With several orders none is auto-initiated; payment happens
	// per-order later.
	PayOrderID int64

	// Settled is true when every placed order was marked paid at creation
	// time (the instant-settlement path); no payment step applies.
	Settled bool
}

// CheckoutService converts the current cart into one backend order per
// seller. Checkout is not idempotent: re-invoking after a transport failure
// may duplicate already-placed orders. Each invocation tags its requests
// with a fresh attempt ID so the backend could deduplicate.
type CheckoutService interface {
	Checkout(ctx context.Context, paymentMethod string) (*CheckoutResult, error)
}

type checkoutService struct {
	carts    repository.CartRepository
	sessions SessionSource
	orders   OrderPlacer
	log      logger.Logger
	inFlight atomic.Bool
}

func NewCheckoutService(carts repository.CartRepository, sessions SessionSource, orders OrderPlacer, log logger.Logger) CheckoutService {
	return &checkoutService{
		carts:    carts,
		sessions: sessions,
		orders:   orders,
		log:      log,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, paymentMethod string) (*CheckoutResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckoutInFlight
	}
	defer s.inFlight.Store(false)

	if s.sessions.Session(ctx) == nil {
		return nil, ErrNotSignedIn
	}

	cart, err := s.carts.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("could not retrieve cart: %w", err)
		}
		cart = entity.NewCart()
	}
	if cart.IsEmpty() {
		// Nothing to do; not an error.
		return &CheckoutResult{}, nil
	}

	groups := cart.SellerGroups()
	attemptID := uuid.NewString()
	s.log.Infof("Checkout started: attempt=%s sellers=%d items=%d", attemptID, len(groups), len(cart.Items))

	result := &CheckoutResult{Settled: true}
	for _, group := range groups {
		order, err := s.orders.CreateOrder(ctx, entity.OrderRequest{
			ShopOwnerID:   group.ShopOwnerID,
			Items:         group.Items,
			PaymentMethod: paymentMethod,
		}, attemptID)
		if err != nil {
			// Already-placed orders stay placed; the cart stays intact so
			// the user can fix the problem (e.g. insufficient stock) and
			// try again.
			s.log.Warnf("Checkout stopped at seller %d after %d placed order(s): %v", group.ShopOwnerID, len(result.Orders), err)
			return result, fmt.Errorf("failed to place order for %s: %w", group.ShopOwnerName, err)
		}
		result.Orders = append(result.Orders, *order)
		if !order.Settled() {
			result.Settled = false
		}
		s.log.Infof("Order %d placed for seller %d (payment %s)", order.OrderID, group.ShopOwnerID, order.PaymentStatus)
	}

	// Every group succeeded: the cart is cleared unconditionally.
	if err := s.carts.Delete(ctx); err != nil {
		s.log.Errorf("Orders placed but cart could not be cleared: %v", err)
	}

	if len(result.Orders) == 1 && !result.Orders[0].Settled() {
		result.PayOrderID = result.Orders[0].OrderID
	}
	s.log.Infof("Checkout complete: attempt=%s orders=%d", attemptID, len(result.Orders))
	return result, nil
}
