package service

import (
	"context"
	"fmt"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// AdminService covers user moderation, the disease knowledge base and
// platform analytics.
type AdminService interface {
	Users(ctx context.Context) ([]entity.User, error)
	SetUserStatus(ctx context.Context, userID int64, active bool) error
	Diseases(ctx context.Context) ([]entity.DiseaseInfo, error)
	SaveDisease(ctx context.Context, disease entity.DiseaseInfo) (*entity.DiseaseInfo, error)
	Analytics(ctx context.Context) (*entity.AdminStats, error)
}

type adminService struct {
	client *api.Client
	log    logger.Logger
}

func NewAdminService(client *api.Client, log logger.Logger) AdminService {
	return &adminService{client: client, log: log}
}

func (s *adminService) Users(ctx context.Context) ([]entity.User, error) {
	users, err := s.client.AdminUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load users: %w", err)
	}
	return users, nil
}

func (s *adminService) SetUserStatus(ctx context.Context, userID int64, active bool) error {
	if err := s.client.SetUserStatus(ctx, userID, active); err != nil {
		return fmt.Errorf("could not update user %d status: %w", userID, err)
	}
	s.log.Infof("User %d active=%t", userID, active)
	return nil
}

func (s *adminService) Diseases(ctx context.Context) ([]entity.DiseaseInfo, error) {
	diseases, err := s.client.Diseases(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load disease knowledge base: %w", err)
	}
	return diseases, nil
}

// SaveDisease creates the entry when it has no ID yet and updates it
// otherwise.
func (s *adminService) SaveDisease(ctx context.Context, disease entity.DiseaseInfo) (*entity.DiseaseInfo, error) {
	if disease.Name == "" {
		return nil, fmt.Errorf("disease name cannot be empty")
	}
	if disease.DiseaseID == 0 {
		created, err := s.client.CreateDisease(ctx, disease)
		if err != nil {
			return nil, fmt.Errorf("could not add disease: %w", err)
		}
		s.log.Infof("Disease %q added", disease.Name)
		return created, nil
	}
	updated, err := s.client.UpdateDisease(ctx, disease.DiseaseID, disease)
	if err != nil {
		return nil, fmt.Errorf("could not update disease %d: %w", disease.DiseaseID, err)
	}
	s.log.Infof("Disease %d updated", disease.DiseaseID)
	return updated, nil
}

func (s *adminService) Analytics(ctx context.Context) (*entity.AdminStats, error) {
	stats, err := s.client.AdminAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load analytics: %w", err)
	}
	return stats, nil
}
