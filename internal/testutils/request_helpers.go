package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// CreateTestRequest builds a request carrying a discarding logger and the
// given route parameters.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	routeCtx := chi.NewRouteContext()
	for key, value := range pathParams {
		routeCtx.URLParams.Add(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)

	return req.WithContext(ctx)
}

// DecodeResponse unwraps the response envelope, decoding its data into data
// when data is not nil.
func DecodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) response.APIResponse {
	t.Helper()

	var envelope struct {
		Success bool                    `json:"success"`
		Data    json.RawMessage         `json:"data"`
		Error   *response.ErrorResponse `json:"error"`
	}

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), rr.Body.String())

	if data != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	return response.APIResponse{Success: envelope.Success, Data: data, Error: envelope.Error}
}
