package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/google/uuid"
)

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestLogging is the admin endpoint's counterpart of Logging: a
// request-scoped logger carrying the correlation id.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		// Correlation ID
		correlationID := r.Header.Get(RequestIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, correlationID)

		// Request-scoped logger, every log line would contain these fields
		requestLogger := slog.Default().With(
			slog.String("correlation_id", correlationID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
		)

		requestLogger.Info("Incoming request")

		ctx := WithLogger(r.Context(), requestLogger)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r.WithContext(ctx))

		requestLogger.Info("Request Completed", slog.Int("http_status", rw.statusCode), slog.Duration("duration", time.Since(start)))

	})
}

// RequireToken guards the admin endpoint with a static bearer token. An empty
// token disables the check.
func RequireToken(token string, next http.Handler) http.Handler {
	if token == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Token is of format : "Bearer <token>"
		presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			LoggerFromContext(r.Context()).Warn("Rejected admin request without a valid token")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type Limiter interface {
	Allow(ctx context.Context, client string) (bool, time.Duration, error)
}

// RateLimit throttles mutating requests per client address. Reads pass
// through, and a failing limiter lets the request through.
func RateLimit(limiter Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())

		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		allowed, retryAfter, err := limiter.Allow(r.Context(), client)
		if err != nil {
			logger.Error("Rate limiter unavailable", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			logger.Warn("Rate limit exceeded", slog.String("client", client), slog.Int("retry_after", seconds))
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			response.Error(w, errors.TooManyRequestsError("Too many requests. Please try again later."))
			return
		}

		next.ServeHTTP(w, r)
	})
}
