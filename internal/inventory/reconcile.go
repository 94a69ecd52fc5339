package inventory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/metrics"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

const (
	DefaultVerifyDelay = 500 * time.Millisecond

	StageOptimistic = "optimistic"
	StageVerified   = "verified"
)

// DefaultRefreshSchedule gives the server time for trigger-driven recalculation.
var DefaultRefreshSchedule = []time.Duration{
	500 * time.Millisecond,
	1000 * time.Millisecond,
	1500 * time.Millisecond,
	2000 * time.Millisecond,
}

type AlertSource interface {
	LowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error)
}

type ProductSource interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

type Refresher struct {
	api   AlertSource
	store *AlertStore
}

func NewRefresher(api AlertSource, store *AlertStore) *Refresher {
	return &Refresher{api: api, store: store}
}

// RefreshAlerts fetches the full list and replaces the cache. Nothing is
// applied once ctx is done.
func (r *Refresher) RefreshAlerts(ctx context.Context) error {

	logger := middleware.LoggerFromContext(ctx)

	ticket := r.store.Begin()

	alerts, err := r.api.LowStockAlerts(ctx)
	if err != nil {
		metrics.ObserveAlertRefresh("error")
		logger.Warn("Low-stock alert refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if r.store.Replace(ticket, alerts) {
		metrics.ObserveAlertRefresh("applied")
		logger.Debug("Low-stock alerts refreshed", slog.Int("count", len(alerts)))
	} else {
		metrics.ObserveAlertRefresh("stale")
		logger.Debug("Discarded out-of-order low-stock response", slog.Uint64("ticket", uint64(ticket)))
	}

	return nil
}

type StockIn struct {
	ProductID int64
	Quantity  int
}

type ReconcilerConfig struct {
	VerifyDelay     time.Duration
	RefreshSchedule []time.Duration
}

// Reconciler keeps the low-stock list honest after a restock: it drops the
// product right away when the predicted stock clears the threshold, re-checks
// against the canonical product, and then re-fetches the full list on a
// staggered schedule.
type Reconciler struct {
	products    ProductSource
	refresher   *Refresher
	store       *AlertStore
	verifyDelay time.Duration
	schedule    []time.Duration
	wg          sync.WaitGroup
}

func NewReconciler(products ProductSource, refresher *Refresher, store *AlertStore, cfg ReconcilerConfig) *Reconciler {

	if cfg.VerifyDelay <= 0 {
		cfg.VerifyDelay = DefaultVerifyDelay
	}

	if cfg.RefreshSchedule == nil {
		cfg.RefreshSchedule = DefaultRefreshSchedule
	}

	schedule := make([]time.Duration, len(cfg.RefreshSchedule))
	copy(schedule, cfg.RefreshSchedule)

	return &Reconciler{
		products:    products,
		refresher:   refresher,
		store:       store,
		verifyDelay: cfg.VerifyDelay,
		schedule:    schedule,
	}
}

// StockIn applies the optimistic removal synchronously and schedules the
// follow-up work. ctx is the lifetime of the view that owns the alert list:
// cancelling it stops every pending step before it writes anything.
// It reports whether the product was removed optimistically.
func (r *Reconciler) StockIn(ctx context.Context, in StockIn) bool {

	logger := middleware.LoggerFromContext(ctx).With(
		slog.Int64("product_id", in.ProductID),
		slog.Int("quantity_added", in.Quantity),
	)

	removed := r.optimisticRemove(logger, in)

	start := time.Now()

	r.goAfter(ctx, r.verifyDelay, func() {
		r.verify(ctx, logger, in.ProductID)
	})

	r.goAfter(ctx, 0, func() {
		_ = r.refresher.RefreshAlerts(ctx)
	})

	for _, offset := range r.schedule {
		r.goAfter(ctx, offset-time.Since(start), func() {
			_ = r.refresher.RefreshAlerts(ctx)
		})
	}

	return removed
}

// Invalidate schedules one full refresh under the same lifetime rules.
func (r *Reconciler) Invalidate(ctx context.Context) {
	r.goAfter(ctx, 0, func() {
		_ = r.refresher.RefreshAlerts(ctx)
	})
}

// Wait blocks until every scheduled step has run or been cancelled.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}

func (r *Reconciler) optimisticRemove(logger *slog.Logger, in StockIn) bool {

	cached, ok := r.store.Find(in.ProductID)
	if !ok {
		return false
	}

	predicted := cached.CurrentStock + in.Quantity

	if !ShouldClear(predicted, cached.Threshold()) {
		logger.Debug("Restock keeps product under its reorder point",
			slog.Int("predicted_stock", predicted), slog.Int("reorder_point", cached.Threshold()))
		return false
	}

	if _, removed := r.store.Remove(in.ProductID); !removed {
		return false
	}

	metrics.ObserveAlertRemoval(StageOptimistic)
	logger.Info("Removed product from low-stock list ahead of confirmation",
		slog.Int("predicted_stock", predicted), slog.Int("reorder_point", cached.Threshold()))

	return true
}

func (r *Reconciler) verify(ctx context.Context, logger *slog.Logger, productID int64) {

	product, err := r.products.GetProduct(ctx, productID)
	if err != nil {
		// The scheduled full refreshes still run.
		logger.Warn("Could not verify restocked product", slog.String("error", err.Error()))
		return
	}

	if ctx.Err() != nil {
		return
	}

	if !ShouldClear(product.Stock, product.Threshold()) {
		return
	}

	if _, removed := r.store.Remove(productID); removed {
		metrics.ObserveAlertRemoval(StageVerified)
		logger.Info("Removed product from low-stock list after verification",
			slog.Int("stock", product.Stock), slog.Int("reorder_point", product.Threshold()))
	}
}

func (r *Reconciler) goAfter(ctx context.Context, delay time.Duration, fn func()) {

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}

		if ctx.Err() != nil {
			return
		}

		fn()
	}()
}
