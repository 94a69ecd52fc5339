package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Endpoints carries the dependencies the checks call. A nil HTTPClient
// falls back to a short-timeout default.
type Endpoints struct {
	HTTPClient *http.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	httpClient := endpoints.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	checks := []health.Config{
		{
			Name:      "api",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check:     upstreamCheck(httpClient, cfg.API.BaseURL),
		},
	}

	if cfg.Storage.Backend == "redis" {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "inventory-admin",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// upstreamCheck only needs the API to answer. Any status below 500 means the
// server is up, even if it rejects the anonymous request.
func upstreamCheck(client *http.Client, baseURL string) func(ctx context.Context) error {
	return func(ctx context.Context) error {

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build api health request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach api: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("api returned status %d", resp.StatusCode)
		}

		return nil
	}
}
