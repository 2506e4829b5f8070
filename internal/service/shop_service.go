package service

import (
	"context"
	"fmt"
	"io"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// ShopService covers the marketplace view and the shop owner's inventory,
// queries and analytics.
type ShopService interface {
	Marketplace(ctx context.Context) ([]entity.InventoryItem, error)
	Inventory(ctx context.Context) ([]entity.InventoryItem, error)
	AddProduct(ctx context.Context, product entity.ProductCreate) (*entity.InventoryItem, error)
	UploadProductImage(ctx context.Context, filename string, file io.Reader) (string, error)
	Queries(ctx context.Context) ([]entity.ShopQuery, error)
	Reply(ctx context.Context, queryID int64, reply string) error
	Analytics(ctx context.Context) (*entity.ShopAnalytics, error)
}

type shopService struct {
	client *api.Client
	log    logger.Logger
}

func NewShopService(client *api.Client, log logger.Logger) ShopService {
	return &shopService{client: client, log: log}
}

func (s *shopService) Marketplace(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := s.client.Marketplace(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load marketplace: %w", err)
	}
	return items, nil
}

func (s *shopService) Inventory(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := s.client.Inventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load inventory: %w", err)
	}
	return items, nil
}

func (s *shopService) AddProduct(ctx context.Context, product entity.ProductCreate) (*entity.InventoryItem, error) {
	if product.Name == "" || product.Price <= 0 || product.StockQuantity <= 0 {
		return nil, fmt.Errorf("product needs a name, a positive price and positive stock")
	}
	item, err := s.client.AddProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("could not add product: %w", err)
	}
	s.log.Infof("Product %q added to inventory", product.Name)
	return item, nil
}

func (s *shopService) UploadProductImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	url, err := s.client.UploadProductImage(ctx, filename, file)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return url, nil
}

func (s *shopService) Queries(ctx context.Context) ([]entity.ShopQuery, error) {
	queries, err := s.client.ShopQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load queries: %w", err)
	}
	return queries, nil
}

func (s *shopService) Reply(ctx context.Context, queryID int64, reply string) error {
	if reply == "" {
		return fmt.Errorf("reply cannot be empty")
	}
	if err := s.client.ReplyQuery(ctx, queryID, reply); err != nil {
		return fmt.Errorf("could not send reply: %w", err)
	}
	s.log.Infof("Replied to query %d", queryID)
	return nil
}

func (s *shopService) Analytics(ctx context.Context) (*entity.ShopAnalytics, error) {
	analytics, err := s.client.ShopAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load analytics: %w", err)
	}
	return analytics, nil
}
