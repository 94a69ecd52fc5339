package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {

	var users []models.User

	if err := c.doJSON(ctx, http.MethodGet, "/users/all", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error) {

	user := &models.User{ID: id, Status: status}
	req := &models.UpdateUserStatusRequest{Status: status}

	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/status", id), req, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
