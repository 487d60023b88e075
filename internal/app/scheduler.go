package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/tasks"
)

// SchedulerModule runs the periodic completion sweep.
var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(RegisterCompletionSweep),
)

func RegisterCompletionSweep(lc fx.Lifecycle, cfg *config.Config, svc booking.Service) error {
	spec := cfg.Booking.CompletionSchedule
	if spec == "" {
		return nil
	}
	sweeper, err := tasks.NewSweeper(svc, spec, cfg.Booking.SideEffectTimeout())
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
	return nil
}
