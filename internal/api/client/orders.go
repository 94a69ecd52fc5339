package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

func (c *Client) ListAdminOrders(ctx context.Context) ([]models.Order, error) {

	var orders []models.Order

	if err := c.doJSON(ctx, http.MethodGet, "/orders/admin", nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {

	order := &models.Order{ID: id, Status: status}
	req := &models.UpdateOrderStatusRequest{Status: status}

	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), req, order); err != nil {
		return nil, err
	}

	return order, nil
}
