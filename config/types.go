package config

import (
	"errors"
	"fmt"
	"time"
)

type Config struct {
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Server         ServerConfig         `mapstructure:"server"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	Authorization  AuthorizationConfig  `mapstructure:"authorization"`
	Booking        BookingConfig        `mapstructure:"booking"`
	Integrations   IntegrationsConfig   `mapstructure:"integrations"`
	Stripe         StripeConfig         `mapstructure:"stripe"`
	Zoom           ZoomConfig           `mapstructure:"zoom"`
	Email          EmailConfig          `mapstructure:"email"`
	SMS            SMSConfig            `mapstructure:"sms"`
	Nats           NatsConfig           `mapstructure:"nats"`
	Tasks          TasksConfig          `mapstructure:"tasks"`
	Observability  ObservabilityConfig  `mapstructure:"observability"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

type NatsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type DatabaseConfig struct {
	Host       string                  `mapstructure:"host"`
	Port       int                     `mapstructure:"port"`
	User       string                  `mapstructure:"user"`
	Password   string                  `mapstructure:"password"`
	DBName     string                  `mapstructure:"dbname"`
	SSLMode    string                  `mapstructure:"sslmode"`
	Pool       DatabasePoolConfig      `mapstructure:"pool"`
	Migrations DatabaseMigrationConfig `mapstructure:"migrations"`
}

type DatabasePoolConfig struct {
	MaxOpenConns       int `mapstructure:"max_open_conns"`
	MaxIdleConns       int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int `mapstructure:"conn_max_lifetime_minutes"`
}

type DatabaseMigrationConfig struct {
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type ServerConfig struct {
	Port           int             `mapstructure:"port"`
	TimeoutSeconds int             `mapstructure:"timeout_seconds"`
	Environment    string          `mapstructure:"environment"`
	Domain         string          `mapstructure:"domain"`
	Databases      []string        `mapstructure:"databases"`
	CORS           CORSConfig      `mapstructure:"cors"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Max           int `mapstructure:"max"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type AuthenticationConfig struct {
	Paseto PasetoConfig `mapstructure:"paseto"`
	// EncryptionKey is a 32-byte hex string used for AES-256-GCM encryption
	// of meeting passwords at rest. Empty disables encryption.
	EncryptionKey string `mapstructure:"encryption_key"`
}

type AuthorizationConfig struct {
	// EnableAudit logs every RBAC decision.
	EnableAudit bool `mapstructure:"enable_audit"`
}

type PasetoConfig struct {
	Mode             string `mapstructure:"mode"`
	LocalKeyHex      string `mapstructure:"local_key_hex"`
	SecretKeyHex     string `mapstructure:"secret_key_hex"`
	PublicKeyHex     string `mapstructure:"public_key_hex"`
	Issuer           string `mapstructure:"issuer"`
	Audience         string `mapstructure:"audience"`
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
}

type BookingConfig struct {
	CancellationWindowHours     int    `mapstructure:"cancellation_window_hours"`
	ReminderLeadMinutes         int    `mapstructure:"reminder_lead_minutes"`
	CompletionSchedule          string `mapstructure:"completion_schedule"`
	AvailabilityCacheTTLSeconds int    `mapstructure:"availability_cache_ttl_seconds"`
	SideEffectTimeoutSeconds    int    `mapstructure:"side_effect_timeout_seconds"`
	DefaultCurrency             string `mapstructure:"default_currency"`
}

func (c BookingConfig) CancellationWindow() time.Duration {
	return time.Duration(c.CancellationWindowHours) * time.Hour
}

func (c BookingConfig) ReminderLead() time.Duration {
	return time.Duration(c.ReminderLeadMinutes) * time.Minute
}

func (c BookingConfig) AvailabilityCacheTTL() time.Duration {
	return time.Duration(c.AvailabilityCacheTTLSeconds) * time.Second
}

func (c BookingConfig) SideEffectTimeout() time.Duration {
	return time.Duration(c.SideEffectTimeoutSeconds) * time.Second
}

type IntegrationsConfig struct {
	PaymentTimeoutSeconds      int `mapstructure:"payment_timeout_seconds"`
	VideoTimeoutSeconds        int `mapstructure:"video_timeout_seconds"`
	NotificationTimeoutSeconds int `mapstructure:"notification_timeout_seconds"`
}

type StripeConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	SuccessURL    string `mapstructure:"success_url"`
	CancelURL     string `mapstructure:"cancel_url"`
	ProductName   string `mapstructure:"product_name"`
}

type ZoomConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	AccountID         string  `mapstructure:"account_id"`
	ClientID          string  `mapstructure:"client_id"`
	ClientSecret      string  `mapstructure:"client_secret"`
	UserID            string  `mapstructure:"user_id"`
	APIBaseURL        string  `mapstructure:"api_base_url"`
	OAuthURL          string  `mapstructure:"oauth_url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	From    string     `mapstructure:"from"`
	AppName string     `mapstructure:"app_name"`
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SMSConfig struct {
	Enabled       bool        `mapstructure:"enabled"`
	DefaultRegion string      `mapstructure:"default_region"`
	SMSIR         SMSIRConfig `mapstructure:"smsir"`
}

type SMSIRConfig struct {
	APIKey                 string `mapstructure:"api_key"`
	SecretKey              string `mapstructure:"secret_key"`
	CancellationTemplateID string `mapstructure:"cancellation_template_id"`
	ReminderTemplateID     string `mapstructure:"reminder_template_id"`
}

type TasksConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	RedisDB     int  `mapstructure:"redis_db"`
	Concurrency int  `mapstructure:"concurrency"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (c *Config) Validate() error {
	var errs []error

	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Booking.CancellationWindowHours <= 0 {
		errs = append(errs, fmt.Errorf("booking.cancellation_window_hours must be positive, got %d", c.Booking.CancellationWindowHours))
	}
	if c.Booking.SideEffectTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("booking.side_effect_timeout_seconds must be positive"))
	}
	switch c.Authentication.Paseto.Mode {
	case "local":
		if c.Authentication.Paseto.LocalKeyHex == "" {
			errs = append(errs, errors.New("authentication.paseto.local_key_hex is required in local mode"))
		}
	case "public":
		if c.Authentication.Paseto.PublicKeyHex == "" && c.Authentication.Paseto.SecretKeyHex == "" {
			errs = append(errs, errors.New("authentication.paseto public mode needs a public or secret key"))
		}
	default:
		errs = append(errs, fmt.Errorf("authentication.paseto.mode must be local or public, got %q", c.Authentication.Paseto.Mode))
	}
	if c.Stripe.Enabled && (c.Stripe.SecretKey == "" || c.Stripe.WebhookSecret == "") {
		errs = append(errs, errors.New("stripe.secret_key and stripe.webhook_secret are required when stripe is enabled"))
	}
	if c.Zoom.Enabled && (c.Zoom.AccountID == "" || c.Zoom.ClientID == "" || c.Zoom.ClientSecret == "") {
		errs = append(errs, errors.New("zoom.account_id, zoom.client_id and zoom.client_secret are required when zoom is enabled"))
	}

	return errors.Join(errs...)
}
