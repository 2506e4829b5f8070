package api

import (
	"context"
	"net/http"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        entity.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// Login is the one call exempt from 401 logout normalization: a wrong
// password must not destroy an unrelated persisted session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/login", loginRequest{Email: email, Password: password}, &resp, true, nil)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string, role entity.Role) error {
	req := registerRequest{Name: name, Email: email, Password: password, Role: role}
	return c.doJSON(ctx, http.MethodPost, "/users/register", req, nil, true, nil)
}

func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateMe(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error) {
	var user entity.User
	if err := c.put(ctx, "/users/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Notifications(ctx context.Context) ([]entity.Notification, error) {
	var notifs []entity.Notification
	if err := c.get(ctx, "/users/notifications", &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}
