package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	t.Run("Generates correlation id", func(t *testing.T) {
		// Arrange
		var seen *http.Request

		next := middleware.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			seen = r
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
		})

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://api.test/api/stock/current", nil)
		require.NoError(t, err)

		// Act
		resp, err := middleware.Logging(next).RoundTrip(req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, seen)
		assert.NotEmpty(t, seen.Header.Get(middleware.RequestIDHeader))
		assert.Empty(t, req.Header.Get(middleware.RequestIDHeader), "original request must not be mutated")
		assert.NotSame(t, slog.Default(), middleware.LoggerFromContext(seen.Context()))
	})

	t.Run("Keeps caller correlation id", func(t *testing.T) {
		var seen *http.Request

		next := middleware.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			seen = r
			return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: r}, nil
		})

		req, err := http.NewRequestWithContext(t.Context(), http.MethodDelete, "http://api.test/api/users/3", nil)
		require.NoError(t, err)
		req.Header.Set(middleware.RequestIDHeader, "req-123")

		_, err = middleware.Logging(next).RoundTrip(req)

		require.NoError(t, err)
		assert.Equal(t, "req-123", seen.Header.Get(middleware.RequestIDHeader))
	})

	t.Run("Propagates transport errors", func(t *testing.T) {
		next := middleware.RoundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, io.ErrUnexpectedEOF
		})

		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://api.test/api/products", nil)
		require.NoError(t, err)

		resp, err := middleware.Logging(next).RoundTrip(req)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestLoggerFromContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := middleware.WithLogger(t.Context(), logger)

	assert.Same(t, logger, middleware.LoggerFromContext(ctx))
	assert.Same(t, slog.Default(), middleware.LoggerFromContext(t.Context()))
}
