package client

import (
	"context"
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

func (c *Client) CurrentStock(ctx context.Context) ([]models.CurrentStock, error) {

	var stock []models.CurrentStock

	if err := c.doJSON(ctx, http.MethodGet, "/stock/current", nil, &stock); err != nil {
		return nil, err
	}

	return stock, nil
}

func (c *Client) StockHistory(ctx context.Context) ([]models.StockHistoryEntry, error) {

	var history []models.StockHistoryEntry

	if err := c.doJSON(ctx, http.MethodGet, "/stock/history", nil, &history); err != nil {
		return nil, err
	}

	return history, nil
}

func (c *Client) LowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error) {

	alerts := []models.LowStockAlert{}

	if err := c.doJSON(ctx, http.MethodGet, "/stock/alerts/low-stock", nil, &alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}

func (c *Client) RecordStockMovement(ctx context.Context, movement *models.StockMovement) (*models.StockMovementResult, error) {

	result := &models.StockMovementResult{}

	if err := c.doJSON(ctx, http.MethodPost, "/stock-movements", movement, result); err != nil {
		return nil, err
	}

	return result, nil
}
