package inventory

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/state"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/go-playground/validator/v10"
)

type API interface {
	AlertSource
	ProductSource
	RecordStockMovement(ctx context.Context, movement *models.StockMovement) (*models.StockMovementResult, error)
	CurrentStock(ctx context.Context) ([]models.CurrentStock, error)
	StockHistory(ctx context.Context) ([]models.StockHistoryEntry, error)
}

type Service interface {
	RecordMovement(ctx context.Context, movement *models.StockMovement) (*models.StockMovementResult, error)
	RefreshAlerts(ctx context.Context) error
	RefreshCurrentStock(ctx context.Context) error
	RefreshHistory(ctx context.Context) error
	LowStockAlerts() []models.LowStockAlert
	CurrentStock() ([]models.CurrentStock, bool)
	History() ([]models.StockHistoryEntry, bool)
	WatchAlerts(ctx context.Context, fn func([]models.LowStockAlert))
	Wait()
}

type inventoryService struct {
	api        API
	alerts     *AlertStore
	refresher  *Refresher
	reconciler *Reconciler
	current    state.Latest[[]models.CurrentStock]
	history    state.Latest[[]models.StockHistoryEntry]
	validator  *validator.Validate
}

func NewInventoryService(api API, alerts *AlertStore, cfg ReconcilerConfig) Service {

	refresher := NewRefresher(api, alerts)

	return &inventoryService{
		api:        api,
		alerts:     alerts,
		refresher:  refresher,
		reconciler: NewReconciler(api, refresher, alerts, cfg),
		validator:  validator.New(),
	}
}

// RecordMovement submits one stock movement. ctx also scopes the follow-up
// reconciliation, so pass the view lifetime rather than a per-call timeout.
// Failed mutations are not retried.
func (s *inventoryService) RecordMovement(ctx context.Context, movement *models.StockMovement) (*models.StockMovementResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := utils.ValidateStruct(s.validator, movement); err != nil {
		return nil, err
	}

	result, err := s.api.RecordStockMovement(ctx, movement)
	if err != nil {
		logger.Error("Stock movement failed",
			slog.Int64("product_id", movement.ProductID),
			slog.String("movement_type", string(movement.MovementType)),
			slog.String("error", err.Error()))
		return nil, err
	}

	// The server echo may omit what was sent.
	if result.ProductID == 0 {
		result.ProductID = movement.ProductID
	}

	if result.Quantity == 0 {
		result.Quantity = movement.Quantity
	}

	if result.MovementType == "" {
		result.MovementType = movement.MovementType
	}

	logger.Info("Stock movement recorded",
		slog.Int64("product_id", result.ProductID),
		slog.String("movement_type", string(result.MovementType)),
		slog.Int("quantity", result.Quantity))

	if result.MovementType == models.MovementStockIn {
		s.reconciler.StockIn(ctx, StockIn{ProductID: result.ProductID, Quantity: result.Quantity})
	} else {
		s.reconciler.Invalidate(ctx)
	}

	return result, nil
}

func (s *inventoryService) RefreshAlerts(ctx context.Context) error {
	return s.refresher.RefreshAlerts(ctx)
}

func (s *inventoryService) RefreshCurrentStock(ctx context.Context) error {

	ticket := s.current.Begin()

	stock, err := s.api.CurrentStock(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Current stock refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range stock {
		stock[i].Name = utils.CleanText(stock[i].Name)
	}

	s.current.Apply(ticket, stock)

	return nil
}

func (s *inventoryService) RefreshHistory(ctx context.Context) error {

	ticket := s.history.Begin()

	history, err := s.api.StockHistory(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Stock history refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.history.Apply(ticket, history)

	return nil
}

func (s *inventoryService) LowStockAlerts() []models.LowStockAlert {
	return s.alerts.Snapshot()
}

func (s *inventoryService) CurrentStock() ([]models.CurrentStock, bool) {
	return s.current.Get()
}

func (s *inventoryService) History() ([]models.StockHistoryEntry, bool) {
	return s.history.Get()
}

// WatchAlerts calls fn with a snapshot after each change to the alert list
// until ctx is done. Changes that land while fn runs are delivered once.
func (s *inventoryService) WatchAlerts(ctx context.Context, fn func([]models.LowStockAlert)) {

	changes, unsubscribe := s.alerts.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			fn(s.alerts.Snapshot())
		}
	}
}

func (s *inventoryService) Wait() {
	s.reconciler.Wait()
}
