package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Catalog   CatalogConfig
	OrderForm OrderFormConfig
	Metrics   MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"STOREFRONT_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	AllowedOrigins  []string      `envconfig:"STOREFRONT_HTTP_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ReadTimeout     time.Duration `envconfig:"STOREFRONT_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"STOREFRONT_HTTP_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"STOREFRONT_HTTP_SHUTDOWN_TIMEOUT" default:"5s"`
}

// CatalogConfig points at an optional YAML seed; empty means the built-in product list.
type CatalogConfig struct {
	SeedFile string `envconfig:"STOREFRONT_CATALOG_SEED_FILE"`
}

type OrderFormConfig struct {
	// TimeZone decides what "today" means for the default subscription start date.
	TimeZone string `envconfig:"STOREFRONT_ORDER_FORM_TIME_ZONE" default:"UTC"`
}

// Location resolves TimeZone, falling back to UTC.
func (o OrderFormConfig) Location() *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(o.TimeZone))
	if err != nil || o.TimeZone == "" {
		return time.UTC
	}
	return loc
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"STOREFRONT_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"STOREFRONT_METRICS_PATH" default:"/metrics"`
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.OrderForm.TimeZone); err != nil {
		return fmt.Errorf("%s: %w", EnvOrderFormTimeZone, err)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%s must start with /", EnvMetricsPath)
	}
	return nil
}
