package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "PSYCHAPP"
	DefaultConfig = "config.yaml"
)

// ReadConfig loads the YAML file at path and applies PSYCHAPP_* environment
// overrides, e.g. PSYCHAPP_DATABASE_HOST overrides database.host.
func ReadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = DefaultConfig
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional in container deployments that configure through env only.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if os.Getenv(EnvPrefix+"_DATABASE_HOST") == "" {
			return nil, fmt.Errorf("config file %q not found and %s_DATABASE_HOST is not set", path, EnvPrefix)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.pool.max_open_conns", 25)
	v.SetDefault("database.pool.max_idle_conns", 5)
	v.SetDefault("database.pool.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.migrations.auto_migrate", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.rate_limit.max", 20)
	v.SetDefault("server.rate_limit.window_seconds", 30)

	v.SetDefault("authentication.paseto.mode", "local")
	v.SetDefault("authentication.paseto.local_key_hex", "")
	v.SetDefault("authentication.paseto.issuer", "psychapp")
	v.SetDefault("authentication.paseto.audience", "psychapp-api")
	v.SetDefault("authentication.paseto.access_ttl_minutes", 15)
	v.SetDefault("authentication.encryption_key", "")
	v.SetDefault("authorization.enable_audit", false)

	v.SetDefault("booking.cancellation_window_hours", 24)
	v.SetDefault("booking.reminder_lead_minutes", 24*60)
	v.SetDefault("booking.completion_schedule", "@every 5m")
	v.SetDefault("booking.availability_cache_ttl_seconds", 60)
	v.SetDefault("booking.side_effect_timeout_seconds", 30)
	v.SetDefault("booking.default_currency", "usd")

	v.SetDefault("integrations.payment_timeout_seconds", 10)
	v.SetDefault("integrations.video_timeout_seconds", 10)
	v.SetDefault("integrations.notification_timeout_seconds", 15)

	v.SetDefault("stripe.enabled", false)
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.success_url", "")
	v.SetDefault("stripe.cancel_url", "")
	v.SetDefault("stripe.product_name", "Therapy session")

	v.SetDefault("zoom.enabled", false)
	v.SetDefault("zoom.account_id", "")
	v.SetDefault("zoom.client_id", "")
	v.SetDefault("zoom.client_secret", "")
	v.SetDefault("zoom.user_id", "me")
	v.SetDefault("zoom.api_base_url", "https://api.zoom.us/v2")
	v.SetDefault("zoom.oauth_url", "https://zoom.us/oauth/token")
	v.SetDefault("zoom.requests_per_second", 10)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from", "")
	v.SetDefault("email.smtp.host", "")
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.app_name", "Psychapp")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.use_tls", true)
	v.SetDefault("email.smtp.timeout_seconds", 30)

	v.SetDefault("sms.enabled", false)
	v.SetDefault("sms.default_region", "US")
	v.SetDefault("sms.smsir.api_key", "")
	v.SetDefault("sms.smsir.secret_key", "")
	v.SetDefault("sms.smsir.cancellation_template_id", "")
	v.SetDefault("sms.smsir.reminder_template_id", "")

	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.subject_prefix", "psychapp")

	v.SetDefault("tasks.enabled", false)
	v.SetDefault("tasks.redis_db", 1)
	v.SetDefault("tasks.concurrency", 10)

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", "psychapp")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output.stdout", true)
}
