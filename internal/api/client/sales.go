package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

const reportDateLayout = "2006-01-02"

func (c *Client) DetailedSalesReport(ctx context.Context, window models.ReportRange) (*models.SalesReport, error) {

	query := url.Values{}

	if !window.From.IsZero() {
		query.Set("startDate", window.From.Format(reportDateLayout))
	}

	if !window.To.IsZero() {
		query.Set("endDate", window.To.Format(reportDateLayout))
	}

	path := "/orders/detailed-sales-report"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	report := &models.SalesReport{}

	if err := c.doJSON(ctx, http.MethodGet, path, nil, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (c *Client) PublicSalesPerformance(ctx context.Context) ([]models.SalesPerformance, error) {

	var performance []models.SalesPerformance

	if err := c.doJSON(ctx, http.MethodGet, "/orders/sales-performance/public", nil, &performance); err != nil {
		return nil, err
	}

	return performance, nil
}

func (c *Client) ProductSalesReport(ctx context.Context) (*models.ProductSalesReport, error) {

	report := &models.ProductSalesReport{}

	if err := c.doJSON(ctx, http.MethodGet, "/orders/product-sales-report", nil, report); err != nil {
		return nil, err
	}

	return report, nil
}
