package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/inventory"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastSchedule = inventory.ReconcilerConfig{
	VerifyDelay:     20 * time.Millisecond,
	RefreshSchedule: []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond, 40 * time.Millisecond},
}

func newReconciler(api *fakeAPI, cfg inventory.ReconcilerConfig, cached ...models.LowStockAlert) (*inventory.Reconciler, *inventory.AlertStore) {
	store := inventory.NewAlertStore()
	store.Replace(store.Begin(), cached)

	refresher := inventory.NewRefresher(api, store)

	return inventory.NewReconciler(api, refresher, store, cfg), store
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	return ctx
}

func TestReconcilerOptimisticRemoval(t *testing.T) {
	// Only the synchronous step runs under a cancelled context.
	t.Run("Removed iff predicted stock exceeds the reorder point", func(t *testing.T) {
		for stock := 0; stock <= 8; stock++ {
			for point := 0; point <= 8; point++ {
				for quantity := 1; quantity <= 8; quantity++ {
					api := newFakeAPI()
					reconciler, store := newReconciler(api, fastSchedule, alert(1, stock, intPtr(point)))

					removed := reconciler.StockIn(cancelledContext(), inventory.StockIn{ProductID: 1, Quantity: quantity})
					reconciler.Wait()

					_, stillListed := store.Find(1)
					want := stock+quantity > point

					assert.Equal(t, want, removed, "stock=%d point=%d qty=%d", stock, point, quantity)
					assert.Equal(t, !want, stillListed, "stock=%d point=%d qty=%d", stock, point, quantity)
				}
			}
		}
	})

	t.Run("Falls back to reorder level", func(t *testing.T) {
		api := newFakeAPI()
		cached := models.LowStockAlert{ID: 1, CurrentStock: 2, ReorderLevel: intPtr(10)}
		reconciler, store := newReconciler(api, fastSchedule, cached)

		removed := reconciler.StockIn(cancelledContext(), inventory.StockIn{ProductID: 1, Quantity: 5})
		reconciler.Wait()

		assert.False(t, removed)
		_, found := store.Find(1)
		assert.True(t, found)
	})

	t.Run("Falls back to the default of five", func(t *testing.T) {
		api := newFakeAPI()

		reconciler, store := newReconciler(api, fastSchedule, alert(1, 2, nil), alert(2, 2, nil))

		assert.False(t, reconciler.StockIn(cancelledContext(), inventory.StockIn{ProductID: 1, Quantity: 3}))
		assert.True(t, reconciler.StockIn(cancelledContext(), inventory.StockIn{ProductID: 2, Quantity: 4}))
		reconciler.Wait()

		_, found := store.Find(1)
		assert.True(t, found)
		_, found = store.Find(2)
		assert.False(t, found)
	})

	t.Run("Product not in the cache", func(t *testing.T) {
		api := newFakeAPI()
		reconciler, store := newReconciler(api, fastSchedule, alert(1, 0, nil))

		removed := reconciler.StockIn(cancelledContext(), inventory.StockIn{ProductID: 7, Quantity: 100})
		reconciler.Wait()

		assert.False(t, removed)
		assert.Len(t, store.Snapshot(), 1)
	})
}

func TestReconcilerFollowUp(t *testing.T) {
	t.Run("Verification removes a product the prediction kept", func(t *testing.T) {
		// Arrange: a concurrent restock pushed the real stock above the point.
		api := newFakeAPI()
		api.alertsErr = errors.New("server busy")
		api.setProduct(&models.Product{ID: 1, Stock: 10, ReorderPoint: intPtr(5)})

		cfg := inventory.ReconcilerConfig{VerifyDelay: 10 * time.Millisecond, RefreshSchedule: []time.Duration{}}
		reconciler, store := newReconciler(api, cfg, alert(1, 2, intPtr(5)))

		// Act
		removed := reconciler.StockIn(context.Background(), inventory.StockIn{ProductID: 1, Quantity: 2})
		reconciler.Wait()

		// Assert
		assert.False(t, removed)
		_, found := store.Find(1)
		assert.False(t, found)
		_, productCalls := api.calls()
		assert.Equal(t, 1, productCalls)
	})

	t.Run("Verification keeps a product still at its reorder point", func(t *testing.T) {
		api := newFakeAPI()
		api.alertsErr = errors.New("server busy")
		api.setProduct(&models.Product{ID: 1, Stock: 5, ReorderLevel: intPtr(5)})

		cfg := inventory.ReconcilerConfig{VerifyDelay: 10 * time.Millisecond, RefreshSchedule: []time.Duration{}}
		reconciler, store := newReconciler(api, cfg, alert(1, 2, intPtr(5)))

		reconciler.StockIn(context.Background(), inventory.StockIn{ProductID: 1, Quantity: 2})
		reconciler.Wait()

		_, found := store.Find(1)
		assert.True(t, found)
	})

	t.Run("Verification failure still runs the refreshes", func(t *testing.T) {
		// Arrange
		api := newFakeAPI(alert(2, 1, nil))
		api.productErr = errors.New("connection reset")

		reconciler, store := newReconciler(api, fastSchedule, alert(1, 2, intPtr(5)))

		// Act
		reconciler.StockIn(context.Background(), inventory.StockIn{ProductID: 1, Quantity: 1})
		reconciler.Wait()

		// Assert
		alertCalls, productCalls := api.calls()
		assert.Equal(t, 1, productCalls)
		assert.Equal(t, 1+len(fastSchedule.RefreshSchedule), alertCalls)

		snapshot := store.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, int64(2), snapshot[0].ID)
	})

	t.Run("Converges to a lagging server list", func(t *testing.T) {
		// Arrange: the server keeps listing the product for its first two answers.
		api := newFakeAPI(alert(1, 2, intPtr(5)), alert(3, 0, nil))
		api.setProduct(&models.Product{ID: 1, Stock: 4, ReorderPoint: intPtr(5)})
		api.onAlerts = func(call int) {
			if call == 2 {
				api.setAlerts(alert(3, 0, nil))
			}
		}

		reconciler, store := newReconciler(api, fastSchedule, alert(1, 2, intPtr(5)), alert(3, 0, nil))

		// Act
		reconciler.StockIn(context.Background(), inventory.StockIn{ProductID: 1, Quantity: 2})
		reconciler.Wait()

		// Assert
		snapshot := store.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, int64(3), snapshot[0].ID)
	})

	t.Run("Cancelled lifetime writes nothing", func(t *testing.T) {
		// Arrange
		api := newFakeAPI(alert(1, 1, nil), alert(9, 0, nil))
		api.setProduct(&models.Product{ID: 1, Stock: 100})
		reconciler, store := newReconciler(api, fastSchedule, alert(1, 1, nil))

		// Act
		reconciler.StockIn(cancelledContext(), inventory.StockIn{ProductID: 1, Quantity: 1})
		reconciler.Wait()

		// Assert
		alertCalls, productCalls := api.calls()
		assert.Zero(t, alertCalls)
		assert.Zero(t, productCalls)

		_, found := store.Find(9)
		assert.False(t, found)
	})

	t.Run("Cancelling mid-way stops pending steps", func(t *testing.T) {
		api := newFakeAPI(alert(1, 1, nil))
		api.setProduct(&models.Product{ID: 1, Stock: 100})

		cfg := inventory.ReconcilerConfig{
			VerifyDelay:     time.Hour,
			RefreshSchedule: []time.Duration{time.Hour},
		}
		reconciler, _ := newReconciler(api, cfg, alert(1, 1, nil))

		ctx, cancel := context.WithCancel(context.Background())
		reconciler.StockIn(ctx, inventory.StockIn{ProductID: 1, Quantity: 1})
		cancel()

		done := make(chan struct{})
		go func() {
			reconciler.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("pending steps were not cancelled")
		}

		alertCalls, productCalls := api.calls()
		assert.LessOrEqual(t, alertCalls, 1)
		assert.Zero(t, productCalls)
	})

	t.Run("Invalidate refreshes once", func(t *testing.T) {
		api := newFakeAPI(alert(4, 0, nil))
		reconciler, store := newReconciler(api, fastSchedule)

		reconciler.Invalidate(context.Background())
		reconciler.Wait()

		alertCalls, _ := api.calls()
		assert.Equal(t, 1, alertCalls)
		assert.Len(t, store.Snapshot(), 1)
	})
}

func TestRefresherDiscardsStaleResponse(t *testing.T) {
	// Arrange
	api := newFakeAPI(alert(1, 1, nil))

	started := make(chan struct{})
	release := make(chan struct{})
	api.onAlerts = func(call int) {
		if call == 1 {
			close(started)
			<-release
		}
	}

	store := inventory.NewAlertStore()
	refresher := inventory.NewRefresher(api, store)

	slow := make(chan error, 1)
	go func() { slow <- refresher.RefreshAlerts(context.Background()) }()
	<-started

	// Act: a newer request lands first.
	api.setAlerts(alert(2, 1, nil))
	require.NoError(t, refresher.RefreshAlerts(context.Background()))

	api.setAlerts(alert(1, 1, nil))
	close(release)
	require.NoError(t, <-slow)

	// Assert
	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(2), snapshot[0].ID)
}

func TestRefresherError(t *testing.T) {
	api := newFakeAPI()
	api.alertsErr = errors.New("boom")

	store := inventory.NewAlertStore()
	store.Replace(store.Begin(), []models.LowStockAlert{alert(1, 1, nil)})

	err := inventory.NewRefresher(api, store).RefreshAlerts(context.Background())

	require.Error(t, err)
	assert.Len(t, store.Snapshot(), 1, "failed refresh keeps the cached list")
}
