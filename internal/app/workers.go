package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/tasks"
)

// WorkerModule registers the NATS payment worker and the asynq task server.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
	fx.Invoke(RegisterTaskServer),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	NC         *nats.Conn `optional:"true"`
	BookingSvc booking.Service
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startPaymentWorker(p.NC, p.Cfg.Nats.SubjectPrefix, p.BookingSvc, p.Cfg.Booking.SideEffectTimeout())
			return err
		},
		OnStop: func(ctx context.Context) error {
			// Drain of the connection is handled by ProvideNatsClient
			if sub != nil {
				return sub.Unsubscribe()
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// payment_worker
// ---------------------------------------------------------------------------

type paymentConfirmer interface {
	ConfirmBooking(ctx context.Context, ev booking.PaymentCompleted) (*booking.Booking, error)
}

func paymentSubject(prefix string) string {
	return prefix + ".payment.completed.*"
}

// decodePaymentCompleted reads the event body, falling back to the booking
// id carried as the last subject token.
func decodePaymentCompleted(subject string, data []byte) (booking.PaymentCompleted, error) {
	var ev booking.PaymentCompleted
	if len(data) > 0 {
		if err := json.Unmarshal(data, &ev); err != nil {
			return ev, fmt.Errorf("decode payment event: %w", err)
		}
	}
	if ev.BookingID == uuid.Nil {
		parts := strings.Split(subject, ".")
		id, err := uuid.Parse(parts[len(parts)-1])
		if err != nil {
			return ev, fmt.Errorf("payment event has no booking id: %w", err)
		}
		ev.BookingID = id
	}
	return ev, nil
}

func handlePaymentCompleted(ctx context.Context, svc paymentConfirmer, msg *nats.Msg) error {
	ev, err := decodePaymentCompleted(msg.Subject, msg.Data)
	if err != nil {
		return err
	}
	b, err := svc.ConfirmBooking(ctx, ev)
	if err != nil {
		return fmt.Errorf("confirm booking %s: %w", ev.BookingID, err)
	}
	slog.InfoContext(ctx, "payment_worker: booking confirmed", "booking_id", b.ID, "payment_ref", ev.PaymentRef)
	return nil
}

func startPaymentWorker(nc *nats.Conn, prefix string, svc paymentConfirmer, timeout time.Duration) (*nats.Subscription, error) {
	sub, err := nc.Subscribe(paymentSubject(prefix), func(msg *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := handlePaymentCompleted(ctx, svc, msg); err != nil {
			if errors.Is(err, booking.ErrInvalidTransition) || errors.Is(err, booking.ErrNotFound) {
				slog.Warn("payment_worker: event rejected", "subject", msg.Subject, "err", err)
				return
			}
			slog.Error("payment_worker: confirm failed", "subject", msg.Subject, "err", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe payment.completed: %w", err)
	}

	slog.Info("payment_worker: started", "subject", paymentSubject(prefix))
	return sub, nil
}

// ---------------------------------------------------------------------------
// reminder task server
// ---------------------------------------------------------------------------

func RegisterTaskServer(lc fx.Lifecycle, cfg *config.Config, svc booking.Service) {
	if !cfg.Tasks.Enabled {
		return
	}

	concurrency := cfg.Tasks.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	srv := asynq.NewServer(taskRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			"default": 1,
		},
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			slog.Info("starting task server", "concurrency", concurrency)
			return srv.Start(tasks.NewServeMux(svc))
		},
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down task server")
			srv.Shutdown()
			return nil
		},
	})
}
