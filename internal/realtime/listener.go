package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/metrics"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Events pushed by the retail server. Payloads are never relied upon: every
// event just means the matching view should be fetched again.
const (
	EventInventoryUpdated      = "inventory-updated"
	EventLowStockAlertsRefresh = "low-stock-alerts-refresh"
	EventProductUpdated        = "product-updated"
	EventNewProduct            = "new-product"
	EventProductDeleted        = "product-deleted"
	EventAdminNotification     = "admin-notification"
	EventOrderUpdated          = "order-updated"
	EventNewOrder              = "new-order"
)

// Events lists every server event the listener subscribes to.
var Events = []string{
	EventInventoryUpdated,
	EventLowStockAlertsRefresh,
	EventProductUpdated,
	EventNewProduct,
	EventProductDeleted,
	EventAdminNotification,
	EventOrderUpdated,
	EventNewOrder,
}

var errConnectTimeout = errors.New("namespace connect timed out")

type Event struct {
	Name    string
	Payload []byte
}

type Handler func(ctx context.Context, event Event)

type Option func(*Listener)

func WithTokenSource(tokens middleware.TokenSource) Option {
	return func(l *Listener) { l.tokens = tokens }
}

func WithReconnectDelay(initial, maximum time.Duration) Option {
	return func(l *Listener) {
		if initial > 0 {
			l.reconnectDelay = initial
		}

		if maximum >= l.reconnectDelay {
			l.maxReconnectDelay = maximum
		}
	}
}

func WithConnectTimeout(timeout time.Duration) Option {
	return func(l *Listener) {
		if timeout > 0 {
			l.connectTimeout = timeout
		}
	}
}

// Listener holds a Socket.IO connection open and turns server events into
// handler calls. It reconnects with exponential backoff until stopped.
type Listener struct {
	url               string
	tokens            middleware.TokenSource
	connectTimeout    time.Duration
	reconnectDelay    time.Duration
	maxReconnectDelay time.Duration

	mu       sync.RWMutex
	handlers map[string][]Handler
	inFlight sync.WaitGroup
}

func NewListener(url string, opts ...Option) *Listener {
	l := &Listener{
		url:               url,
		connectTimeout:    10 * time.Second,
		reconnectDelay:    time.Second,
		maxReconnectDelay: 30 * time.Second,
		handlers:          make(map[string][]Handler),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// On registers h for the named event. Handlers run on their own goroutine.
func (l *Listener) On(event string, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handlers[event] = append(l.handlers[event], h)
}

// Run blocks until ctx is done. Handlers still running are waited for.
func (l *Listener) Run(ctx context.Context) error {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("component", "realtime"))
	ctx = middleware.WithLogger(ctx, logger)

	defer l.inFlight.Wait()
	defer metrics.SetRealtimeConnected(false)

	delay := l.reconnectDelay

	for {
		connected, err := l.session(ctx)

		if ctx.Err() != nil {
			logger.Info("Realtime listener stopped")
			return nil
		}

		metrics.SetRealtimeConnected(false)

		if connected {
			delay = l.reconnectDelay
		}

		logger.Warn("Realtime connection lost, reconnecting",
			slog.String("error", errString(err)),
			slog.Duration("retry_in", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("Realtime listener stopped")
			return nil
		case <-timer.C:
		}

		delay = min(delay*2, l.maxReconnectDelay)
	}
}

// session runs one connection. The client's own reconnection is off so the
// backoff above stays the single retry policy. connected reports whether the
// namespace connect was acknowledged.
func (l *Listener) session(ctx context.Context) (bool, error) {

	logger := middleware.LoggerFromContext(ctx)

	opts := socket.DefaultOptions()
	opts.SetTransports(types.NewSet(socket.WebSocket))
	opts.SetReconnection(false)
	opts.SetAutoConnect(false)
	opts.SetForceNew(true)
	opts.SetTimeout(l.connectTimeout)

	if l.tokens != nil {
		if token, err := l.tokens.Token(ctx); err == nil && token != "" {
			opts.SetAuth(map[string]any{"token": token})
		}
	}

	client, err := socket.Connect(l.url, opts)
	if err != nil {
		return false, fmt.Errorf("connecting to %s: %w", l.url, err)
	}
	defer client.Disconnect()

	var connected atomic.Bool
	ended := make(chan error, 1)
	end := func(err error) {
		select {
		case ended <- err:
		default:
		}
	}

	_ = client.On("connect", func(...any) {
		connected.Store(true)
		metrics.SetRealtimeConnected(true)
		logger.Info("Realtime channel connected", slog.String("sid", client.Id()))
	})

	_ = client.On("connect_error", func(args ...any) {
		end(fmt.Errorf("namespace connect refused: %s", argString(args)))
	})

	_ = client.On("disconnect", func(args ...any) {
		end(fmt.Errorf("disconnected: %s", argString(args)))
	})

	for _, name := range Events {
		_ = client.On(types.EventName(name), func(args ...any) {
			l.dispatch(ctx, newEvent(ctx, name, args))
		})
	}

	client.Connect()

	timeout := time.NewTimer(l.connectTimeout)
	defer timeout.Stop()

	for {
		select {
		case <-ctx.Done():
			return connected.Load(), nil
		case err := <-ended:
			return connected.Load(), err
		case <-timeout.C:
			if !connected.Load() {
				return false, errConnectTimeout
			}
		}
	}
}

func newEvent(ctx context.Context, name string, args []any) Event {

	event := Event{Name: name}
	if len(args) == 0 {
		return event
	}

	payload, err := json.Marshal(args[0])
	if err != nil {
		middleware.LoggerFromContext(ctx).Debug("Realtime payload not encodable",
			slog.String("event", name),
			slog.String("error", err.Error()))
		return event
	}

	event.Payload = payload

	return event
}

func (l *Listener) dispatch(ctx context.Context, event Event) {

	metrics.ObserveRealtimeEvent(event.Name)

	l.mu.RLock()
	handlers := l.handlers[event.Name]
	l.mu.RUnlock()

	if len(handlers) == 0 {
		middleware.LoggerFromContext(ctx).Debug("No handler for realtime event", slog.String("event", event.Name))
		return
	}

	for _, h := range handlers {
		l.inFlight.Add(1)

		go func() {
			defer l.inFlight.Done()

			h(ctx, event)
		}()
	}
}

func argString(args []any) string {
	if len(args) == 0 {
		return "unknown"
	}

	if err, ok := args[0].(error); ok {
		return err.Error()
	}

	return fmt.Sprint(args[0])
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
