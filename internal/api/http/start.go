package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/api/http/router"
	"github.com/jasimarif/psychology-app/internal/app"
)

// NewApp assembles the API process: infrastructure, services, background
// workers, the completion sweep and the HTTP server.
func NewApp(cfg *config.Config, timeout time.Duration) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		app.SchedulerModule,
		router.Module,
		Module, // This is the http.Module from server.go

		// Invoke *fiber.App because that's what NewServer returns.
		// This forces the creation of fiber.App, triggering the OnStart hook
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	)
}
