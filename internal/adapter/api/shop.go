package api

import (
	"context"
	"fmt"
	"io"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

func (c *Client) Marketplace(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := c.get(ctx, "/shop/marketplace", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Inventory(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := c.get(ctx, "/shop/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddProduct(ctx context.Context, product entity.ProductCreate) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := c.post(ctx, "/shop/inventory", product, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadProductImage uploads a product photo and returns the backend's
// (relative) URL for it.
func (c *Client) UploadProductImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var resp uploadResponse
	if err := c.doMultipart(ctx, "/shop/upload-image", filename, file, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) ShopQueries(ctx context.Context) ([]entity.ShopQuery, error) {
	var queries []entity.ShopQuery
	if err := c.get(ctx, "/shop/queries", &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

type replyRequest struct {
	Reply string `json:"reply"`
}

func (c *Client) ReplyQuery(ctx context.Context, queryID int64, reply string) error {
	path := fmt.Sprintf("/shop/queries/%d/reply", queryID)
	return c.put(ctx, path, replyRequest{Reply: reply}, nil)
}

func (c *Client) ShopAnalytics(ctx context.Context) (*entity.ShopAnalytics, error) {
	var analytics entity.ShopAnalytics
	if err := c.get(ctx, "/shop/analytics", &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
