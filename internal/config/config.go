package config

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AdminHTTP struct {
	Addr  string `yaml:"address" env:"ADMIN_ADDR" env-default:":9090"`
	Token string `yaml:"token" env:"ADMIN_TOKEN"`
}

type API struct {
	BaseURL string        `yaml:"BASE_URL" env:"API_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"API_TIMEOUT" env-default:"10s"`
	// Token seeds the stored session on startup when set.
	Token string `yaml:"TOKEN" env:"API_TOKEN"`
}

type Realtime struct {
	URL               string        `yaml:"URL" env:"REALTIME_URL"`
	ReconnectDelay    time.Duration `yaml:"RECONNECT_DELAY" env:"REALTIME_RECONNECT_DELAY" env-default:"1s"`
	MaxReconnectDelay time.Duration `yaml:"MAX_RECONNECT_DELAY" env:"REALTIME_MAX_RECONNECT_DELAY" env-default:"30s"`
}

// MinVerifyDelay leaves the server time to recompute its low-stock list
// before an optimistic removal is checked.
const MinVerifyDelay = 500 * time.Millisecond

type Reconcile struct {
	VerifyDelay     time.Duration   `yaml:"VERIFY_DELAY" env:"RECONCILE_VERIFY_DELAY" env-default:"500ms"`
	RefreshSchedule []time.Duration `yaml:"REFRESH_SCHEDULE" env:"RECONCILE_REFRESH_SCHEDULE" env-default:"500ms,1s,1500ms,2s"`
}

type Polling struct {
	Interval time.Duration `yaml:"INTERVAL" env:"POLL_INTERVAL" env-default:"30s"`
}

type Catalog struct {
	AllowUnderAllocation bool `yaml:"ALLOW_UNDER_ALLOCATION" env:"CATALOG_ALLOW_UNDER_ALLOCATION" env-default:"false"`
}

type RateLimit struct {
	MaxRequests int64         `yaml:"MAX_REQUESTS" env:"RATE_LIMIT_MAX_REQUESTS" env-default:"30"`
	Window      time.Duration `yaml:"WINDOW" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

type Storage struct {
	Backend string `yaml:"BACKEND" env:"STORAGE_BACKEND" env-default:"memory"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type OTel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"inventory-admin"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-required:"true"`
	AdminHTTP    AdminHTTP    `yaml:"admin_http"`
	API          API          `yaml:"api"`
	Realtime     Realtime     `yaml:"realtime"`
	Reconcile    Reconcile    `yaml:"reconcile"`
	Polling      Polling      `yaml:"polling"`
	Catalog      Catalog      `yaml:"catalog"`
	Storage      Storage      `yaml:"storage"`
	RateLimit    RateLimit    `yaml:"rate_limit"`
	RedisConnect RedisConnect `yaml:"redis"`
	OTel         OTel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "config/local.yaml"
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

// LoadConfigFromPath reads the YAML file and applies environment overrides.
func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	if cfg.Reconcile.VerifyDelay < MinVerifyDelay {
		return nil, fmt.Errorf("reconcile VERIFY_DELAY %s is below the %s minimum", cfg.Reconcile.VerifyDelay, MinVerifyDelay)
	}

	if len(cfg.Reconcile.RefreshSchedule) == 0 {
		return nil, fmt.Errorf("reconcile REFRESH_SCHEDULE must list at least one delay")
	}

	if cfg.Realtime.URL == "" {
		cfg.Realtime.URL = DefaultRealtimeURL(cfg.API.BaseURL)
	}

	return &cfg, nil
}

// DefaultRealtimeURL derives the Socket.io origin from the API base URL. The
// client appends the /socket.io path itself and treats any URL path as the
// namespace, so only scheme and host are kept.
func DefaultRealtimeURL(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return strings.TrimRight(baseURL, "/")
	}

	return u.Scheme + "://" + u.Host
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
