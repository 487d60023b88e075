package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/repo"
	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
	"github.com/jasimarif/psychology-app/internal/tasks"
	"github.com/jasimarif/psychology-app/pkg/crypto"
	"github.com/jasimarif/psychology-app/pkg/email"
	"github.com/jasimarif/psychology-app/pkg/observability"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
	"github.com/jasimarif/psychology-app/pkg/sms"
	"github.com/jasimarif/psychology-app/pkg/zoom"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAvailabilityService,
		ProvideStripePayments,
		ProvideGateway,
		ProvideBookingService,
		ProvidePasetoManager,
	),
)

func ProvideAvailabilityService(db *repo.Client, rdb *redis.Client, cfg *config.Config) availability.Service {
	var cache redis.Cmdable
	if rdb != nil {
		cache = rdb
	}
	return availability.New(availability.NewEntStore(db), cache, cfg.Booking.AvailabilityCacheTTL())
}

func ProvideStripePayments(cfg *config.Config) *gateway.StripePayments {
	return gateway.NewStripePayments(cfg.Stripe, nil)
}

type GatewayParams struct {
	fx.In

	Cfg     *config.Config
	Stripe  *gateway.StripePayments
	Zoom    *zoom.Client
	Email   *email.Client
	SMS     *sms.Client
	Metrics *observability.BookingMetrics `optional:"true"`
}

func ProvideGateway(p GatewayParams) *gateway.Gateway {
	notifier := gateway.NewMailNotifier(p.Email, p.SMS, gateway.TextTemplates{
		Cancellation: p.Cfg.SMS.SMSIR.CancellationTemplateID,
		Reminder:     p.Cfg.SMS.SMSIR.ReminderTemplateID,
	})

	it := p.Cfg.Integrations
	return gateway.New(
		p.Stripe,
		gateway.NewZoomMeetings(p.Zoom, p.Cfg.Zoom.Enabled),
		notifier,
		gateway.Timeouts{
			Payment:      time.Duration(it.PaymentTimeoutSeconds) * time.Second,
			Video:        time.Duration(it.VideoTimeoutSeconds) * time.Second,
			Notification: time.Duration(it.NotificationTimeoutSeconds) * time.Second,
		},
		gateway.WithMetrics(p.Metrics),
		gateway.WithProductName(p.Cfg.Email.AppName),
	)
}

type BookingParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	DB           *repo.Client
	Sealer       *crypto.Sealer
	Availability availability.Service
	Gateway      *gateway.Gateway
	NC           *nats.Conn                    `optional:"true"`
	Tasks        *asynq.Client                 `optional:"true"`
	Metrics      *observability.BookingMetrics `optional:"true"`
}

func ProvideBookingService(p BookingParams) booking.Service {
	opts := []booking.Option{booking.WithMetrics(p.Metrics)}
	if p.NC != nil {
		opts = append(opts, booking.WithEvents(booking.NewNatsPublisher(p.NC, p.Cfg.Nats.SubjectPrefix)))
	}
	if p.Tasks != nil {
		opts = append(opts, booking.WithReminders(tasks.NewScheduler(p.Tasks)))
	}

	svc := booking.New(
		booking.NewEntStore(p.DB, p.Sealer),
		booking.NewEntDirectory(p.DB),
		p.Availability,
		p.Gateway,
		booking.Config{
			CancellationWindow: p.Cfg.Booking.CancellationWindow(),
			ReminderLead:       p.Cfg.Booking.ReminderLead(),
			SideEffectTimeout:  p.Cfg.Booking.SideEffectTimeout(),
			DefaultCurrency:    p.Cfg.Booking.DefaultCurrency,
		},
		opts...,
	)

	p.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("waiting for booking side effects")
			return svc.Drain(ctx)
		},
	})
	return svc
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
