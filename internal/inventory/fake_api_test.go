package inventory_test

import (
	"context"
	"sync"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

// fakeAPI plays the server: its alert list and product records are what
// the client should converge to.
type fakeAPI struct {
	mu sync.Mutex

	alerts     []models.LowStockAlert
	alertsErr  error
	alertCalls int
	onAlerts   func(call int)

	products     map[int64]*models.Product
	productErr   error
	productCalls int

	movements      []models.StockMovement
	movementResult *models.StockMovementResult
	movementErr    error

	current []models.CurrentStock
	history []models.StockHistoryEntry
}

func newFakeAPI(alerts ...models.LowStockAlert) *fakeAPI {
	return &fakeAPI{alerts: alerts, products: make(map[int64]*models.Product)}
}

func (f *fakeAPI) setAlerts(alerts ...models.LowStockAlert) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alerts = alerts
}

func (f *fakeAPI) setProduct(product *models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.products[product.ID] = product
}

func (f *fakeAPI) calls() (alerts, products int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.alertCalls, f.productCalls
}

func (f *fakeAPI) LowStockAlerts(context.Context) ([]models.LowStockAlert, error) {
	f.mu.Lock()
	f.alertCalls++
	call := f.alertCalls
	hook := f.onAlerts
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.alertsErr != nil {
		return nil, f.alertsErr
	}

	out := make([]models.LowStockAlert, len(f.alerts))
	copy(out, f.alerts)

	return out, nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.productCalls++

	if f.productErr != nil {
		return nil, f.productErr
	}

	product, ok := f.products[id]
	if !ok {
		return nil, context.DeadlineExceeded
	}

	copied := *product

	return &copied, nil
}

func (f *fakeAPI) RecordStockMovement(_ context.Context, movement *models.StockMovement) (*models.StockMovementResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.movementErr != nil {
		return nil, f.movementErr
	}

	f.movements = append(f.movements, *movement)

	if f.movementResult != nil {
		copied := *f.movementResult
		return &copied, nil
	}

	return &models.StockMovementResult{ID: int64(len(f.movements))}, nil
}

func (f *fakeAPI) CurrentStock(context.Context) ([]models.CurrentStock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.current, nil
}

func (f *fakeAPI) StockHistory(context.Context) ([]models.StockHistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.history, nil
}

func intPtr(v int) *int {
	return &v
}

func alert(id int64, stock int, reorderPoint *int) models.LowStockAlert {
	return models.LowStockAlert{ID: id, Name: "product", CurrentStock: stock, ReorderPoint: reorderPoint}
}
