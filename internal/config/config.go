package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the storefront's configuration values. The identity service
// and login UI URLs are mandatory; the catalog, basket and order service URLs
// are optional and an absent one disables only the features that depend on
// it, never the whole client.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	HttpServer ServerConfig
	Services   ServiceConfig
}

// ServerConfig holds HTTP server-specific configuration.
type ServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"3000"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

// ServiceConfig holds the base URLs of the external services the storefront
// talks to.
type ServiceConfig struct {
	IdentityServiceBaseURL string `envconfig:"IDENTITY_SERVICE_BASE_URL" required:"true"`
	LoginUIBaseURL         string `envconfig:"LOGIN_UI_BASE_URL" required:"true"`
	CatalogServiceBaseURL  string `envconfig:"CATALOG_SERVICE_BASE_URL"`
	BasketServiceBaseURL   string `envconfig:"BASKET_SERVICE_BASE_URL"`
	OrderServiceBaseURL    string `envconfig:"ORDER_SERVICE_BASE_URL"`
}

// Load initializes the configuration from environment variables. It fails
// fast when a required URL is missing or any provided URL is malformed.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	required := map[string]string{
		"IDENTITY_SERVICE_BASE_URL": cfg.Services.IdentityServiceBaseURL,
		"LOGIN_UI_BASE_URL":         cfg.Services.LoginUIBaseURL,
	}
	for name, value := range required {
		if err := validateBaseURL(name, value); err != nil {
			return nil, err
		}
	}

	optional := map[string]string{
		"CATALOG_SERVICE_BASE_URL": cfg.Services.CatalogServiceBaseURL,
		"BASKET_SERVICE_BASE_URL":  cfg.Services.BasketServiceBaseURL,
		"ORDER_SERVICE_BASE_URL":   cfg.Services.OrderServiceBaseURL,
	}
	for name, value := range optional {
		if value == "" {
			continue
		}
		if err := validateBaseURL(name, value); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func validateBaseURL(name, value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, value)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host, got %q", name, value)
	}
	return nil
}
