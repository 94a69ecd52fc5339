package catalog_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog/mocks"
	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func draft(stock int, sizes ...catalog.SizeRow) *catalog.ProductDraft {
	return &catalog.ProductDraft{
		CategoryID: 3,
		Name:       "Linen Shirt",
		Price:      49.5,
		Stock:      stock,
		Sizes:      sizes,
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Exact split", func(t *testing.T) {
		// Arrange
		mockAPI := mocks.NewAPI(t)
		svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

		mockAPI.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Stock == 10 && len(req.Sizes) == 2 && req.Sizes[0].Price == 49.5 && req.Sizes[1].Price == 52
		})).Return(&models.Product{ID: 11, Name: "Linen Shirt", Stock: 10}, nil).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]models.Product{{ID: 11, Name: "<i>Linen Shirt</i>"}}, nil).Once()

		// Act
		product, err := svc.CreateProduct(ctx, draft(10,
			catalog.SizeRow{Size: models.SizeS, Stock: "5"},
			catalog.SizeRow{Size: models.SizeM, Stock: "5", Price: "52"},
		))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(11), product.ID)

		products, ok := svc.Products()
		require.True(t, ok)
		assert.Equal(t, "Linen Shirt", products[0].Name)
	})

	t.Run("Success - Sizes left blank", func(t *testing.T) {
		mockAPI := mocks.NewAPI(t)
		svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

		mockAPI.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Sizes[0].Stock == 0 && req.Sizes[1].Stock == 0
		})).Return(&models.Product{ID: 12}, nil).Once()
		mockAPI.On("ListProducts", mock.Anything).Return(nil, errors.New("timeout")).Once()

		product, err := svc.CreateProduct(ctx, draft(10,
			catalog.SizeRow{Size: models.SizeS, Stock: "0"},
			catalog.SizeRow{Size: models.SizeM},
		))

		require.NoError(t, err, "a failed list refresh does not fail the creation")
		assert.Equal(t, int64(12), product.ID)
	})

	t.Run("Failure - Over allocation never reaches the API", func(t *testing.T) {
		// Arrange
		mockAPI := mocks.NewAPI(t)
		svc := catalog.NewCatalogService(mockAPI, catalog.AllowUnderAllocation)

		// Act
		product, err := svc.CreateProduct(ctx, draft(10,
			catalog.SizeRow{Size: models.SizeS, Stock: "5"},
			catalog.SizeRow{Size: models.SizeM, Stock: "8"},
		))

		// Assert
		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeSizeStockMismatch, appErr.Code)
		mockAPI.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Under allocation follows the policy", func(t *testing.T) {
		blocked := mocks.NewAPI(t)
		_, err := catalog.NewCatalogService(blocked, catalog.BlockUnderAllocation).
			CreateProduct(ctx, draft(10, catalog.SizeRow{Size: models.SizeS, Stock: "3"}))
		require.Error(t, err)
		blocked.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)

		allowed := mocks.NewAPI(t)
		allowed.On("CreateProduct", mock.Anything, mock.Anything).Return(&models.Product{ID: 13}, nil).Once()
		allowed.On("ListProducts", mock.Anything).Return([]models.Product{}, nil).Once()

		product, err := catalog.NewCatalogService(allowed, catalog.AllowUnderAllocation).
			CreateProduct(ctx, draft(10, catalog.SizeRow{Size: models.SizeS, Stock: "3"}))
		require.NoError(t, err)
		assert.Equal(t, int64(13), product.ID)
	})

	t.Run("Failure - Negative size stock", func(t *testing.T) {
		mockAPI := mocks.NewAPI(t)
		svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

		product, err := svc.CreateProduct(ctx, draft(2,
			catalog.SizeRow{Size: models.SizeS, Stock: "5"},
			catalog.SizeRow{Size: models.SizeM, Stock: "-3"},
		))

		assert.Nil(t, product)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Detail, "Field Stock must be at least 0")
		mockAPI.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Field validation", func(t *testing.T) {
		mockAPI := mocks.NewAPI(t)
		svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

		d := draft(0, catalog.SizeRow{Size: "XXXXL"})
		d.Name = "x"

		_, err := svc.CreateProduct(ctx, d)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.True(t, strings.Contains(appErr.Detail, "Name"))
	})

	t.Run("Failure - Server error is passed through", func(t *testing.T) {
		mockAPI := mocks.NewAPI(t)
		svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

		mockAPI.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, appErrors.FromResponse(409, "Product name already exists")).Once()

		_, err := svc.CreateProduct(ctx, draft(0))

		assert.Equal(t, "Product name already exists", appErrors.UserMessage(err))
		mockAPI.AssertNotCalled(t, "ListProducts", mock.Anything)
	})

	t.Run("Failure - Nil draft", func(t *testing.T) {
		svc := catalog.NewCatalogService(mocks.NewAPI(t), catalog.BlockUnderAllocation)

		_, err := svc.CreateProduct(ctx, nil)

		assert.Error(t, err)
	})
}

func TestUploadImage(t *testing.T) {
	mockAPI := mocks.NewAPI(t)
	svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

	mockAPI.On("UploadImage", mock.Anything, "shirt.png", mock.Anything).Return("https://cdn.example.com/shirt.png", nil).Once()
	mockAPI.On("UploadImage", mock.Anything, "broken.png", mock.Anything).Return("", appErrors.FromResponse(413, "")).Once()

	url, err := svc.UploadImage(context.Background(), "shirt.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/shirt.png", url)

	_, err = svc.UploadImage(context.Background(), "broken.png", strings.NewReader("png"))
	assert.Equal(t, appErrors.GenericFailureMessage, appErrors.UserMessage(err))
}

func TestRefreshCategories(t *testing.T) {
	mockAPI := mocks.NewAPI(t)
	svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

	mockAPI.On("ListCategories", mock.Anything).Return([]models.Category{{ID: 1, Name: "Shirts"}}, nil).Once()

	_, ok := svc.Categories()
	assert.False(t, ok)

	require.NoError(t, svc.RefreshCategories(context.Background()))

	categories, ok := svc.Categories()
	require.True(t, ok)
	assert.Len(t, categories, 1)
}

func TestProductSizes(t *testing.T) {
	mockAPI := mocks.NewAPI(t)
	svc := catalog.NewCatalogService(mockAPI, catalog.BlockUnderAllocation)

	mockAPI.On("ListProductSizes", mock.Anything, int64(4)).
		Return([]models.ProductSize{{Size: models.SizeM, Stock: 2, Price: 10}}, nil).Once()

	sizes, err := svc.ProductSizes(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, sizes, 1)
}
