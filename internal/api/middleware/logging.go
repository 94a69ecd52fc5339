package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type logContextKey string

const LoggerKey = logContextKey("logger")

const RequestIDHeader = "X-Request-ID"

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Logging tags every outgoing API call with a correlation id and logs its outcome.
func Logging(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {

		start := time.Now()

		// Correlation ID
		correlationID := r.Header.Get(RequestIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		requestLogger := LoggerFromContext(r.Context()).With(
			slog.String("correlation_id", correlationID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
		)

		ctx := context.WithValue(r.Context(), LoggerKey, requestLogger)

		outgoing := r.Clone(ctx)
		outgoing.Header.Set(RequestIDHeader, correlationID)

		requestLogger.Debug("Outgoing request")

		resp, err := next.RoundTrip(outgoing)
		if err != nil {
			requestLogger.Warn("Request failed", slog.String("error", err.Error()), slog.Duration("duration", time.Since(start)))
			return nil, err
		}

		requestLogger.Info("Request completed", slog.Int("http_status", resp.StatusCode), slog.Duration("duration", time.Since(start)))

		return resp, nil
	})
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}
