package catalog

import (
	"context"
	"io"
	"log/slog"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/state"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/go-playground/validator/v10"
)

//go:generate mockery --name API --output mocks --outpkg mocks
type API interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	ListProductSizes(ctx context.Context, id int64) ([]models.ProductSize, error)
	UploadImage(ctx context.Context, filename string, image io.Reader) (string, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// ProductDraft is the product form before submission.
type ProductDraft struct {
	CategoryID    int64     `json:"category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Stock         int       `json:"stock"`
	ReorderPoint  *int      `json:"reorder_point,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Sizes         []SizeRow `json:"sizes"`
}

type Service interface {
	CreateProduct(ctx context.Context, draft *ProductDraft) (*models.Product, error)
	UploadImage(ctx context.Context, filename string, image io.Reader) (string, error)
	ProductSizes(ctx context.Context, productID int64) ([]models.ProductSize, error)
	RefreshProducts(ctx context.Context) error
	RefreshCategories(ctx context.Context) error
	Products() ([]models.Product, bool)
	Categories() ([]models.Category, bool)
}

type catalogService struct {
	api        API
	policy     Policy
	validator  *validator.Validate
	products   state.Latest[[]models.Product]
	categories state.Latest[[]models.Category]
}

func NewCatalogService(api API, policy Policy) Service {
	return &catalogService{
		api:       api,
		policy:    policy,
		validator: validator.New(),
	}
}

// CreateProduct submits the draft only when its size split is acceptable.
// Nothing is sent otherwise.
func (s *catalogService) CreateProduct(ctx context.Context, draft *ProductDraft) (*models.Product, error) {

	logger := middleware.LoggerFromContext(ctx)

	if draft == nil {
		return nil, appErrors.BadRequestError("Product is required")
	}

	allocation := CheckAllocation(draft.Stock, draft.Sizes)
	if err := allocation.Err(s.policy); err != nil {
		logger.Warn("Product blocked by size allocation",
			slog.String("status", allocation.Status.String()),
			slog.Int("base_stock", allocation.Base),
			slog.Int("size_stock", allocation.Total))
		return nil, err
	}

	req := &models.CreateProductRequest{
		CategoryID:    draft.CategoryID,
		Name:          draft.Name,
		Description:   draft.Description,
		Price:         draft.Price,
		OriginalPrice: draft.OriginalPrice,
		Stock:         draft.Stock,
		ReorderPoint:  draft.ReorderPoint,
		ImageURL:      draft.ImageURL,
		Sizes:         BuildSizes(draft.Price, draft.Sizes),
	}

	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	product, err := s.api.CreateProduct(ctx, req)
	if err != nil {
		logger.Error("Failed to create product", slog.String("name", req.Name), slog.String("error", err.Error()))
		return nil, err
	}

	product.Name = utils.CleanText(product.Name)

	logger.Info("Product created",
		slog.Int64("product_id", product.ID),
		slog.Int("sizes", len(req.Sizes)),
		slog.String("allocation", allocation.Status.String()))

	// The list catches up on the next refresh if this one fails.
	_ = s.RefreshProducts(ctx)

	return product, nil
}

func (s *catalogService) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {

	url, err := s.api.UploadImage(ctx, filename, image)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Image upload failed", slog.String("filename", filename), slog.String("error", err.Error()))
		return "", err
	}

	return url, nil
}

func (s *catalogService) ProductSizes(ctx context.Context, productID int64) ([]models.ProductSize, error) {
	return s.api.ListProductSizes(ctx, productID)
}

func (s *catalogService) RefreshProducts(ctx context.Context) error {

	ticket := s.products.Begin()

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range products {
		products[i].Name = utils.CleanText(products[i].Name)
	}

	s.products.Apply(ticket, products)

	return nil
}

func (s *catalogService) RefreshCategories(ctx context.Context) error {

	ticket := s.categories.Begin()

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.categories.Apply(ticket, categories)

	return nil
}

func (s *catalogService) Products() ([]models.Product, bool) {
	return s.products.Get()
}

func (s *catalogService) Categories() ([]models.Category, bool) {
	return s.categories.Get()
}
