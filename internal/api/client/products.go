package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{}

	if err := c.doJSON(ctx, http.MethodPost, "/products", req, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct returns the canonical server record.
func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product := &models.Product{}

	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *Client) ListProductSizes(ctx context.Context, id int64) ([]models.ProductSize, error) {

	var sizes []models.ProductSize

	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d/sizes", id), nil, &sizes); err != nil {
		return nil, err
	}

	return sizes, nil
}

// UploadImage posts a multipart "image" field and returns the hosted URL.
func (c *Client) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return "", errors.InternalError("Failed to build upload").WithError(err)
	}

	if _, err := io.Copy(part, image); err != nil {
		return "", errors.InternalError("Failed to read image").WithError(err)
	}

	if err := writer.Close(); err != nil {
		return "", errors.InternalError("Failed to build upload").WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/products/upload-image"), &body)
	if err != nil {
		return "", errors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var uploaded models.ImageUploadResponse

	if err := c.send(req, &uploaded); err != nil {
		return "", err
	}

	if uploaded.URL == "" {
		return "", errors.NewAppError(errors.ErrCodeUpstream, "Upload did not return an image URL", http.StatusBadGateway)
	}

	return uploaded.URL, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {

	var categories []models.Category

	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}
