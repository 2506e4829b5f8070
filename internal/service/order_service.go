package service

import (
	"context"
	"fmt"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// OrderService covers the order views of both roles and the payment step.
type OrderService interface {
	FarmerOrders(ctx context.Context) ([]entity.Order, error)
	ShopOrders(ctx context.Context) ([]entity.Order, error)
	PaymentInfo(ctx context.Context, orderID int64) (*entity.PaymentInfo, error)
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error
}

type orderService struct {
	client *api.Client
	log    logger.Logger
}

func NewOrderService(client *api.Client, log logger.Logger) OrderService {
	return &orderService{client: client, log: log}
}

func (s *orderService) FarmerOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.client.FarmerOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) ShopOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.client.ShopOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load shop orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) PaymentInfo(ctx context.Context, orderID int64) (*entity.PaymentInfo, error) {
	info, err := s.client.PaymentInfo(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment info for order %d: %w", orderID, err)
	}
	return info, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	if err := s.client.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("could not update order %d: %w", orderID, err)
	}
	s.log.Infof("Order %d status updated to %s", orderID, status)
	return nil
}
