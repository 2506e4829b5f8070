package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

// CreateOrder places one order for one shop owner. attemptID correlates the
// requests of a single checkout invocation; the client performs no retries
// and no deduplication of its own.
func (c *Client) CreateOrder(ctx context.Context, req entity.OrderRequest, attemptID string) (*entity.Order, error) {
	header := http.Header{}
	if attemptID != "" {
		header.Set("X-Request-ID", attemptID)
	}
	var order entity.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders/", req, &order, false, header); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) FarmerOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.get(ctx, "/orders/farmer", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ShopOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.get(ctx, "/orders/shop", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) PaymentInfo(ctx context.Context, orderID int64) (*entity.PaymentInfo, error) {
	var info entity.PaymentInfo
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/payment-info", orderID), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	path := fmt.Sprintf("/orders/%d/status?status_update=%s", orderID, url.QueryEscape(string(status)))
	return c.put(ctx, path, nil, nil)
}
