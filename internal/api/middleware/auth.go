package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type AuthTransport struct {
	tokens TokenSource
	next   http.RoundTripper
	now    func() time.Time
}

// Auth attaches the stored bearer token to every API call. Calls go out
// unauthenticated when no token is stored, so public endpoints keep working.
func Auth(tokens TokenSource, next http.RoundTripper) *AuthTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	return &AuthTransport{tokens: tokens, next: next, now: time.Now}
}

func (a *AuthTransport) RoundTrip(r *http.Request) (*http.Response, error) {

	logger := LoggerFromContext(r.Context())

	token, err := a.tokens.Token(r.Context())
	if err != nil {
		logger.Error("Failed to load auth token", slog.String("error", err.Error()))
		return nil, err
	}

	if token == "" {
		return a.next.RoundTrip(r)
	}

	// The signature is the server's business; only the expiry is checked here.
	claims := &models.Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Debug("Stored token is not a JWT, sending as-is", slog.String("error", err.Error()))
	} else if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(a.now()) {
		logger.Warn("Stored token expired", slog.Time("expired_at", claims.ExpiresAt.Time))
		return nil, errors.TokenExpiredError("Session expired, please log in again")
	}

	authed := r.Clone(r.Context())
	authed.Header.Set("Authorization", "Bearer "+token)

	return a.next.RoundTrip(authed)
}
