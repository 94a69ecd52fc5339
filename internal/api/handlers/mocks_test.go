package handlers_test

import (
	"context"
	"io"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) RecordMovement(ctx context.Context, movement *models.StockMovement) (*models.StockMovementResult, error) {
	args := m.Called(ctx, movement)

	result, _ := args.Get(0).(*models.StockMovementResult)

	return result, args.Error(1)
}

func (m *mockInventoryService) RefreshAlerts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockInventoryService) RefreshCurrentStock(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockInventoryService) RefreshHistory(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockInventoryService) LowStockAlerts() []models.LowStockAlert {
	alerts, _ := m.Called().Get(0).([]models.LowStockAlert)

	return alerts
}

func (m *mockInventoryService) CurrentStock() ([]models.CurrentStock, bool) {
	args := m.Called()

	stock, _ := args.Get(0).([]models.CurrentStock)

	return stock, args.Bool(1)
}

func (m *mockInventoryService) History() ([]models.StockHistoryEntry, bool) {
	args := m.Called()

	history, _ := args.Get(0).([]models.StockHistoryEntry)

	return history, args.Bool(1)
}

func (m *mockInventoryService) WatchAlerts(context.Context, func([]models.LowStockAlert)) {}

func (m *mockInventoryService) Wait() {}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, draft *catalog.ProductDraft) (*models.Product, error) {
	args := m.Called(ctx, draft)

	product, _ := args.Get(0).(*models.Product)

	return product, args.Error(1)
}

func (m *mockCatalogService) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	args := m.Called(ctx, filename, image)

	return args.String(0), args.Error(1)
}

func (m *mockCatalogService) ProductSizes(ctx context.Context, productID int64) ([]models.ProductSize, error) {
	args := m.Called(ctx, productID)

	sizes, _ := args.Get(0).([]models.ProductSize)

	return sizes, args.Error(1)
}

func (m *mockCatalogService) RefreshProducts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCatalogService) RefreshCategories(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCatalogService) Products() ([]models.Product, bool) {
	args := m.Called()

	products, _ := args.Get(0).([]models.Product)

	return products, args.Bool(1)
}

func (m *mockCatalogService) Categories() ([]models.Category, bool) {
	args := m.Called()

	categories, _ := args.Get(0).([]models.Category)

	return categories, args.Bool(1)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) RefreshOrders(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, orderID int64, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	args := m.Called(ctx, orderID, req)

	order, _ := args.Get(0).(*models.Order)

	return order, args.Error(1)
}

func (m *mockOrderService) Orders() ([]models.Order, bool) {
	args := m.Called()

	orders, _ := args.Get(0).([]models.Order)

	return orders, args.Bool(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) RefreshUsers(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUserService) UpdateStatus(ctx context.Context, userID int64, req *models.UpdateUserStatusRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)

	user, _ := args.Get(0).(*models.User)

	return user, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockUserService) Users() ([]models.User, bool) {
	args := m.Called()

	users, _ := args.Get(0).([]models.User)

	return users, args.Bool(1)
}

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) RefreshSalesReport(ctx context.Context, window models.ReportRange) (bool, error) {
	args := m.Called(ctx, window)

	return args.Bool(0), args.Error(1)
}

func (m *mockReportService) RefreshPerformance(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockReportService) RefreshProductSales(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockReportService) SalesReport(window models.ReportRange) (*models.SalesReport, bool) {
	args := m.Called(window)

	report, _ := args.Get(0).(*models.SalesReport)

	return report, args.Bool(1)
}

func (m *mockReportService) Performance() ([]models.SalesPerformance, bool) {
	args := m.Called()

	performance, _ := args.Get(0).([]models.SalesPerformance)

	return performance, args.Bool(1)
}

func (m *mockReportService) ProductSales() (*models.ProductSalesReport, bool) {
	args := m.Called()

	report, _ := args.Get(0).(*models.ProductSalesReport)

	return report, args.Bool(1)
}
