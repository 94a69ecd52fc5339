package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogging(t *testing.T) {
	t.Run("Generates correlation id", func(t *testing.T) {
		var seen bool

		handler := middleware.RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.LoggerFromContext(r.Context()) != nil
			w.WriteHeader(http.StatusNoContent)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/alerts", nil))

		assert.True(t, seen)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Keeps incoming correlation id", func(t *testing.T) {
		handler := middleware.RequestLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/admin/alerts", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRequireToken(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name   string
		token  string
		header string
		status int
	}{
		{"Disabled", "", "", http.StatusOK},
		{"Missing header", "secret", "", http.StatusUnauthorized},
		{"Wrong scheme", "secret", "Basic secret", http.StatusUnauthorized},
		{"Wrong token", "secret", "Bearer nope", http.StatusUnauthorized},
		{"Valid", "secret", "Bearer secret", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/alerts", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			middleware.RequireToken(tc.token, ok).ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
	clients    []string
}

func (s *stubLimiter) Allow(_ context.Context, client string) (bool, time.Duration, error) {
	s.clients = append(s.clients, client)

	return s.allowed, s.retryAfter, s.err
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })

	t.Run("Rejects over the limit", func(t *testing.T) {
		// Arrange
		limiter := &stubLimiter{retryAfter: 1500 * time.Millisecond}
		req := httptest.NewRequest(http.MethodPost, "/admin/stock-movements", nil)
		req.RemoteAddr = "10.0.0.1:52100"
		rr := httptest.NewRecorder()

		// Act
		middleware.RateLimit(limiter, ok).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "2", rr.Header().Get("Retry-After"))
		assert.Equal(t, []string{"10.0.0.1"}, limiter.clients)
	})

	t.Run("Reads are not counted", func(t *testing.T) {
		limiter := &stubLimiter{}
		rr := httptest.NewRecorder()

		middleware.RateLimit(limiter, ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/alerts", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Empty(t, limiter.clients)
	})

	t.Run("Limiter failure lets the request through", func(t *testing.T) {
		limiter := &stubLimiter{err: errors.New("redis down")}
		rr := httptest.NewRecorder()

		middleware.RateLimit(limiter, ok).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/products", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Allowed", func(t *testing.T) {
		limiter := &stubLimiter{allowed: true}
		rr := httptest.NewRecorder()

		middleware.RateLimit(limiter, ok).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/admin/users/3", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}
