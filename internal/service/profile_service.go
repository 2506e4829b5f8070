package service

import (
	"context"
	"fmt"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// ProfileService covers the signed-in user's own profile, notifications and
// the farmer-to-shop chatbot.
type ProfileService interface {
	Me(ctx context.Context) (*entity.User, error)
	Update(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error)
	Notifications(ctx context.Context) ([]entity.Notification, error)
	AskChatbot(ctx context.Context, message string) (string, error)
}

type profileService struct {
	client *api.Client
	log    logger.Logger
}

func NewProfileService(client *api.Client, log logger.Logger) ProfileService {
	return &profileService{client: client, log: log}
}

func (s *profileService) Me(ctx context.Context) (*entity.User, error) {
	user, err := s.client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error) {
	user, err := s.client.UpdateMe(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	s.log.Info("Profile updated")
	return user, nil
}

func (s *profileService) Notifications(ctx context.Context) ([]entity.Notification, error) {
	notifs, err := s.client.Notifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load notifications: %w", err)
	}
	return notifs, nil
}

func (s *profileService) AskChatbot(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message cannot be empty")
	}
	reply, err := s.client.ChatbotQuery(ctx, message)
	if err != nil {
		return "", fmt.Errorf("chatbot request failed: %w", err)
	}
	return reply, nil
}
