package reports

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/state"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
)

type API interface {
	DetailedSalesReport(ctx context.Context, window models.ReportRange) (*models.SalesReport, error)
	PublicSalesPerformance(ctx context.Context) ([]models.SalesPerformance, error)
	ProductSalesReport(ctx context.Context) (*models.ProductSalesReport, error)
}

type Service interface {
	RefreshSalesReport(ctx context.Context, window models.ReportRange) (bool, error)
	RefreshPerformance(ctx context.Context) error
	RefreshProductSales(ctx context.Context) error
	SalesReport(window models.ReportRange) (*models.SalesReport, bool)
	Performance() ([]models.SalesPerformance, bool)
	ProductSales() (*models.ProductSalesReport, bool)
}

// windowedReport keeps the range a sales report was fetched for.
type windowedReport struct {
	window models.ReportRange
	report *models.SalesReport
}

type reportService struct {
	api          API
	salesLoading atomic.Bool
	sales        state.Latest[windowedReport]
	performance  state.Latest[[]models.SalesPerformance]
	productSales state.Latest[*models.ProductSalesReport]
}

func NewReportService(api API) Service {
	return &reportService{api: api}
}

// RefreshSalesReport fetches the detailed report unless one is already being
// fetched, in which case the call is skipped and reports false.
func (s *reportService) RefreshSalesReport(ctx context.Context, window models.ReportRange) (bool, error) {

	logger := middleware.LoggerFromContext(ctx)

	if !window.From.IsZero() && !window.To.IsZero() && window.To.Before(window.From) {
		return false, appErrors.ValidationError("End date must not be before start date")
	}

	if !s.salesLoading.CompareAndSwap(false, true) {
		logger.Debug("Sales report fetch already in flight, skipping")
		return false, nil
	}
	defer s.salesLoading.Store(false)

	ticket := s.sales.Begin()

	report, err := s.api.DetailedSalesReport(ctx, window)
	if err != nil {
		logger.Warn("Sales report refresh failed", slog.String("error", err.Error()))
		return true, err
	}

	if err := ctx.Err(); err != nil {
		return true, err
	}

	s.sales.Apply(ticket, windowedReport{window: window, report: report})

	logger.Debug("Sales report refreshed", slog.Int("rows", len(report.Rows)))

	return true, nil
}

func (s *reportService) RefreshPerformance(ctx context.Context) error {

	ticket := s.performance.Begin()

	performance, err := s.api.PublicSalesPerformance(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Sales performance refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.performance.Apply(ticket, performance)

	return nil
}

func (s *reportService) RefreshProductSales(ctx context.Context) error {

	ticket := s.productSales.Begin()

	report, err := s.api.ProductSalesReport(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product sales refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range report.Products {
		report.Products[i].Name = utils.CleanText(report.Products[i].Name)
	}

	s.productSales.Apply(ticket, report)

	return nil
}

// SalesReport returns the cached report only when it was fetched for window.
func (s *reportService) SalesReport(window models.ReportRange) (*models.SalesReport, bool) {

	cached, ok := s.sales.Get()
	if !ok || !cached.window.Equal(window) {
		return nil, false
	}

	return cached.report, true
}

func (s *reportService) Performance() ([]models.SalesPerformance, bool) {
	return s.performance.Get()
}

func (s *reportService) ProductSales() (*models.ProductSalesReport, bool) {
	return s.productSales.Get()
}
