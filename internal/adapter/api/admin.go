package api

import (
	"context"
	"fmt"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

func (c *Client) AdminUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

type userStatusRequest struct {
	IsActive bool `json:"is_active"`
}

func (c *Client) SetUserStatus(ctx context.Context, userID int64, active bool) error {
	path := fmt.Sprintf("/admin/users/%d/status", userID)
	return c.put(ctx, path, userStatusRequest{IsActive: active}, nil)
}

func (c *Client) Diseases(ctx context.Context) ([]entity.DiseaseInfo, error) {
	var diseases []entity.DiseaseInfo
	if err := c.get(ctx, "/admin/diseases", &diseases); err != nil {
		return nil, err
	}
	return diseases, nil
}

func (c *Client) CreateDisease(ctx context.Context, disease entity.DiseaseInfo) (*entity.DiseaseInfo, error) {
	var created entity.DiseaseInfo
	if err := c.post(ctx, "/admin/diseases", disease, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDisease(ctx context.Context, diseaseID int64, disease entity.DiseaseInfo) (*entity.DiseaseInfo, error) {
	var updated entity.DiseaseInfo
	if err := c.put(ctx, fmt.Sprintf("/admin/diseases/%d", diseaseID), disease, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminAnalytics(ctx context.Context) (*entity.AdminStats, error) {
	var stats entity.AdminStats
	if err := c.get(ctx, "/admin/analytics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
