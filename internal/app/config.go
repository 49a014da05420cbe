package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the export service.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"60s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"45s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// POS backend the fetchers call.
	POSAPIURL     string        `envconfig:"POS_API_URL" default:"http://127.0.0.1:9000"`
	POSAPIToken   string        `envconfig:"POS_API_TOKEN"`
	POSAPITimeout time.Duration `envconfig:"POS_API_TIMEOUT" default:"30s"`

	// Empty DSN disables the export audit trail.
	PGDSN string `envconfig:"PG_DSN"`

	RedisAddr        string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	SettingsCacheTTL time.Duration `envconfig:"SETTINGS_CACHE_TTL" default:"5m"`

	ReportCurrency  string `envconfig:"REPORT_CURRENCY" default:"TZS"`
	ReportOutputDir string `envconfig:"REPORT_OUTPUT_DIR" default:"./exports"`

	// Cron spec for the scheduled nightly digest, empty disables it.
	DigestCronSpec string `envconfig:"DIGEST_CRON_SPEC" default:"0 1 * * *"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.POSAPIURL == "" {
		return nil, errors.New("pos api url must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
