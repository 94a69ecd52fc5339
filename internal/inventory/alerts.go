package inventory

import (
	"log/slog"
	"sync"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/metrics"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/state"
)

// ShouldClear reports whether a product with the given stock leaves the
// low-stock list. Equal to the threshold still counts as low.
func ShouldClear(stock, threshold int) bool {
	return stock > threshold
}

// AlertStore is the single source of truth for the cached low-stock list.
//
// Full lists are applied last-write-wins by request ticket. A local removal
// counts as a write at the moment it happens, so a list fetched before the
// removal cannot bring the product back; any list fetched afterwards replaces
// everything.
type AlertStore struct {
	mu        sync.RWMutex
	issued    state.Ticket
	applied   state.Ticket
	alerts    []models.LowStockAlert
	removedAt map[int64]state.Ticket
	notify    state.Notifier
}

func NewAlertStore() *AlertStore {
	return &AlertStore{removedAt: make(map[int64]state.Ticket)}
}

func (s *AlertStore) Begin() state.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++

	return s.issued
}

// Replace swaps in a full server list. No merging.
func (s *AlertStore) Replace(ticket state.Ticket, alerts []models.LowStockAlert) bool {
	s.mu.Lock()

	if ticket <= s.applied {
		s.mu.Unlock()
		return false
	}

	s.applied = ticket

	fresh := make([]models.LowStockAlert, 0, len(alerts))

	for _, alert := range alerts {
		if removed, ok := s.removedAt[alert.ID]; ok && ticket <= removed {
			continue
		}

		fresh = append(fresh, alert)
	}

	for id, removed := range s.removedAt {
		if removed < ticket {
			delete(s.removedAt, id)
		}
	}

	s.alerts = fresh
	count := len(fresh)
	s.mu.Unlock()

	metrics.SetLowStockAlerts(count)
	s.notify.Broadcast()

	return true
}

func (s *AlertStore) Remove(productID int64) (models.LowStockAlert, bool) {
	s.mu.Lock()

	for i, alert := range s.alerts {
		if alert.ID != productID {
			continue
		}

		s.alerts = append(s.alerts[:i:i], s.alerts[i+1:]...)
		s.removedAt[productID] = s.issued
		count := len(s.alerts)
		s.mu.Unlock()

		metrics.SetLowStockAlerts(count)
		s.notify.Broadcast()

		return alert, true
	}

	s.mu.Unlock()

	return models.LowStockAlert{}, false
}

func (s *AlertStore) Find(productID int64) (models.LowStockAlert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, alert := range s.alerts {
		if alert.ID == productID {
			return alert, true
		}
	}

	return models.LowStockAlert{}, false
}

// Snapshot returns a copy safe to hand to renderers.
func (s *AlertStore) Snapshot() []models.LowStockAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LowStockAlert, len(s.alerts))
	copy(out, s.alerts)

	return out
}

func (s *AlertStore) Subscribe() (<-chan struct{}, func()) {
	return s.notify.Subscribe()
}

// AlertLogger returns a WatchAlerts callback that logs products entering and
// leaving the low-stock list.
func AlertLogger(logger *slog.Logger) func([]models.LowStockAlert) {

	known := make(map[int64]bool)

	return func(alerts []models.LowStockAlert) {

		current := make(map[int64]bool, len(alerts))

		for _, alert := range alerts {
			current[alert.ID] = true

			if !known[alert.ID] {
				logger.Warn("Product is low on stock",
					slog.Int64("product_id", alert.ID),
					slog.String("name", alert.Name),
					slog.Int("current_stock", alert.CurrentStock))
			}
		}

		for id := range known {
			if !current[id] {
				logger.Info("Product left the low-stock list", slog.Int64("product_id", id))
			}
		}

		known = current
	}
}
