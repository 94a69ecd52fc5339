package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/metrics"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const apiPrefix = "/api"

// Client is the one authenticated entry point to the REST API. Every endpoint,
// stock movements included, goes through the same transport chain.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*options)

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithTransport replaces the innermost transport (tests point it at httptest servers).
func WithTransport(transport http.RoundTripper) Option {
	return func(o *options) { o.transport = transport }
}

func New(baseURL string, tokens middleware.TokenSource, opts ...Option) *Client {

	o := &options{timeout: utils.DefaultAPITimeout, transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(o)
	}

	var transport http.RoundTripper = middleware.Auth(tokens, o.transport)
	transport = middleware.Logging(transport)
	transport = metrics.InstrumentTransport(transport)
	transport = otelhttp.NewTransport(transport,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + metrics.EndpointPattern(r.URL.Path)
		}),
	)

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: o.timeout, Transport: transport},
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + apiPrefix + path
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode request").WithError(err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return errors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {

	logger := middleware.LoggerFromContext(req.Context())

	resp, err := c.httpClient.Do(req)
	if err != nil {

		if appErr, ok := errors.IsAppError(err); ok {
			return appErr
		}

		logger.Warn("API call failed", slog.String("path", req.URL.Path), slog.String("error", err.Error()))

		return errors.NetworkError("Unable to reach the server").WithDetail(req.Method + " " + req.URL.Path).WithError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(req, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, utils.MaxBodyBytes))
		return nil
	}

	if err := utils.DecodeJSONBody(resp.Body, out); err != nil {
		return errors.NewAppError(errors.ErrCodeUpstream, "Unexpected response from server", http.StatusBadGateway).
			WithDetail(req.Method + " " + req.URL.Path).
			WithError(err)
	}

	return nil
}

func decodeAPIError(req *http.Request, resp *http.Response) error {

	var apiErr models.APIError

	// A body that is not JSON simply yields the generic message.
	_ = utils.DecodeJSONBody(resp.Body, &apiErr)

	message := apiErr.Error
	if message == "" {
		message = apiErr.Message
	}

	return errors.FromResponse(resp.StatusCode, utils.CleanText(message)).
		WithDetail(fmt.Sprintf("%s %s", req.Method, req.URL.Path))
}
