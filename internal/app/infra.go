package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/repo"
	"github.com/jasimarif/psychology-app/pkg/authorize"
	"github.com/jasimarif/psychology-app/pkg/crypto"
	"github.com/jasimarif/psychology-app/pkg/database"
	"github.com/jasimarif/psychology-app/pkg/email"
	"github.com/jasimarif/psychology-app/pkg/observability"
	redispkg "github.com/jasimarif/psychology-app/pkg/redis"
	"github.com/jasimarif/psychology-app/pkg/sms"
	"github.com/jasimarif/psychology-app/pkg/zoom"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideDatabase),
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideSMSClient),
	fx.Provide(ProvideZoomClient),
	fx.Provide(ProvideSealer),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideBookingMetrics),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideTaskClient),
)

// ProvideDatabase exposes the raw pool for readiness checks. The ent client
// below shares it and owns closing it.
func ProvideDatabase(cfg *config.Config) (*sql.DB, error) {
	return database.OpenFromCentral(cfg.Database)
}

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config, db *sql.DB) (*repo.Client, error) {
	client := database.NewEntClientFromDB(db)

	if cfg.Database.Migrations.AutoMigrate {
		if err := database.MigrateEnt(context.Background(), client); err != nil {
			client.Close()
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		slog.Info("database schema migrated")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideAuthorization(cfg *config.Config) (authorize.IAuthorization, error) {
	auth, err := authorize.NewAuthorization()
	if err != nil {
		return nil, err
	}
	if cfg.Authorization.EnableAudit {
		auth = authorize.NewAuditedAuthorization(auth, slog.Default())
	}
	if err := authorize.SeedDefaultPolicies(context.Background(), auth); err != nil {
		return nil, fmt.Errorf("seed policies: %w", err)
	}
	return auth, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideSMSClient(cfg *config.Config) (*sms.Client, error) {
	return sms.NewFromConfig(cfg.SMS)
}

func ProvideZoomClient(cfg *config.Config) *zoom.Client {
	return zoom.New(cfg.Zoom)
}

func ProvideSealer(cfg *config.Config) (*crypto.Sealer, error) {
	s, err := crypto.NewSealer(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("load encryption key: %w", err)
	}
	if !s.Enabled() {
		slog.Warn("authentication.encryption_key is empty; meeting passwords are stored in plaintext")
	}
	return s, nil
}

// ProvideNatsClient returns a nil connection when NATS is disabled; consumers
// treat that as "no events".
func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if !cfg.Nats.Enabled {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.Nats.URL, nats.Name(cfg.Observability.ServiceName))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func taskRedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return redispkg.FromCentralConfig(cfg.Redis).WithDB(cfg.Tasks.RedisDB).TaskOpt()
}

// ProvideTaskClient returns a nil client when background tasks are disabled.
func ProvideTaskClient(lc fx.Lifecycle, cfg *config.Config) *asynq.Client {
	if !cfg.Tasks.Enabled {
		return nil
	}
	client := asynq.NewClient(taskRedisOpt(cfg))
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing task client")
			return client.Close()
		},
	})
	return client
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.Init(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

// ProvideBookingMetrics depends on the OTel provider so the counters bind to
// the installed meter provider. Without observability the counters are nil
// and every method is a no-op.
func ProvideBookingMetrics(cfg *config.Config, _ *observability.Provider) (*observability.BookingMetrics, error) {
	if !cfg.Observability.Enabled || !cfg.Observability.Metrics.Enabled {
		return nil, nil
	}
	return observability.NewBookingMetrics()
}
