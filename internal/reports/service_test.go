package reports_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) DetailedSalesReport(ctx context.Context, window models.ReportRange) (*models.SalesReport, error) {
	args := m.Called(ctx, window)

	report, _ := args.Get(0).(*models.SalesReport)

	return report, args.Error(1)
}

func (m *mockAPI) PublicSalesPerformance(ctx context.Context) ([]models.SalesPerformance, error) {
	args := m.Called(ctx)

	performance, _ := args.Get(0).([]models.SalesPerformance)

	return performance, args.Error(1)
}

func (m *mockAPI) ProductSalesReport(ctx context.Context) (*models.ProductSalesReport, error) {
	args := m.Called(ctx)

	report, _ := args.Get(0).(*models.ProductSalesReport)

	return report, args.Error(1)
}

func TestRefreshSalesReport(t *testing.T) {
	window := models.ReportRange{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		api := new(mockAPI)
		svc := reports.NewReportService(api)
		api.On("DetailedSalesReport", mock.Anything, window).
			Return(&models.SalesReport{Rows: []models.SalesReportRow{{Date: "2026-01-02", Orders: 4}}, Revenue: 120}, nil).Once()

		// Act
		ran, err := svc.RefreshSalesReport(context.Background(), window)

		// Assert
		require.NoError(t, err)
		assert.True(t, ran)

		report, ok := svc.SalesReport(window)
		require.True(t, ok)
		assert.InDelta(t, 120.0, report.Revenue, 0.001)
		api.AssertExpectations(t)
	})

	t.Run("Cached report is scoped to its range", func(t *testing.T) {
		// Arrange
		api := new(mockAPI)
		svc := reports.NewReportService(api)
		api.On("DetailedSalesReport", mock.Anything, window).Return(&models.SalesReport{Revenue: 50}, nil).Once()

		other := models.ReportRange{From: window.From, To: window.To.AddDate(0, 1, 0)}

		// Act
		_, err := svc.RefreshSalesReport(context.Background(), window)
		require.NoError(t, err)

		// Assert
		report, ok := svc.SalesReport(other)
		assert.False(t, ok)
		assert.Nil(t, report)

		report, ok = svc.SalesReport(models.ReportRange{From: window.From.In(time.FixedZone("CET", 3600)), To: window.To})
		require.True(t, ok)
		assert.InDelta(t, 50.0, report.Revenue, 0.001)
	})

	t.Run("Concurrent call is skipped while one is in flight", func(t *testing.T) {
		// Arrange
		api := new(mockAPI)
		svc := reports.NewReportService(api)

		started := make(chan struct{})
		release := make(chan struct{})

		api.On("DetailedSalesReport", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return(&models.SalesReport{}, nil).Once()

		var wg sync.WaitGroup
		wg.Add(1)

		go func() {
			defer wg.Done()

			ran, err := svc.RefreshSalesReport(context.Background(), window)
			assert.True(t, ran)
			assert.NoError(t, err)
		}()

		<-started

		// Act
		ran, err := svc.RefreshSalesReport(context.Background(), window)

		// Assert
		assert.False(t, ran)
		assert.NoError(t, err)

		close(release)
		wg.Wait()
		api.AssertNumberOfCalls(t, "DetailedSalesReport", 1)
	})

	t.Run("Guard is released after a failure", func(t *testing.T) {
		api := new(mockAPI)
		svc := reports.NewReportService(api)

		api.On("DetailedSalesReport", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
		api.On("DetailedSalesReport", mock.Anything, mock.Anything).Return(&models.SalesReport{}, nil).Once()

		_, err := svc.RefreshSalesReport(context.Background(), window)
		require.Error(t, err)

		ran, err := svc.RefreshSalesReport(context.Background(), window)
		require.NoError(t, err)
		assert.True(t, ran)
	})

	t.Run("Inverted range is rejected", func(t *testing.T) {
		api := new(mockAPI)
		svc := reports.NewReportService(api)

		_, err := svc.RefreshSalesReport(context.Background(), models.ReportRange{From: window.To, To: window.From})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		api.AssertNotCalled(t, "DetailedSalesReport", mock.Anything, mock.Anything)
	})
}

func TestRefreshPerformanceAndProductSales(t *testing.T) {
	api := new(mockAPI)
	svc := reports.NewReportService(api)

	api.On("PublicSalesPerformance", mock.Anything).Return([]models.SalesPerformance{{Period: "2026-01", Orders: 10}}, nil).Once()
	api.On("ProductSalesReport", mock.Anything).
		Return(&models.ProductSalesReport{Products: []models.ProductSalesRow{{ProductID: 1, Name: "<script>x</script>Shirt"}}}, nil).Once()

	require.NoError(t, svc.RefreshPerformance(context.Background()))
	require.NoError(t, svc.RefreshProductSales(context.Background()))

	performance, ok := svc.Performance()
	require.True(t, ok)
	assert.Len(t, performance, 1)

	productSales, ok := svc.ProductSales()
	require.True(t, ok)
	assert.Equal(t, "Shirt", productSales.Products[0].Name)
	api.AssertExpectations(t)
}
