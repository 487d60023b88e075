package router

import (
	"database/sql"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/api/http/handler"
	"github.com/jasimarif/psychology-app/internal/api/http/middleware"
	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
	"github.com/jasimarif/psychology-app/pkg/authorize"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	DB              *sql.DB       `optional:"true"`
	Redis           *redis.Client `optional:"true"`
	Auth            authorize.IAuthorization
	PasetoMgr       *pasetotoken.Manager
	BookingSvc      booking.Service
	AvailabilitySvc availability.Service
	Payments        *gateway.StripePayments `optional:"true"`
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	var sessions redis.Cmdable
	if r.p.Redis != nil {
		sessions = r.p.Redis
	}
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, sessions)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	bookingH := handler.NewBookingHandler(r.p.BookingSvc)
	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc, r.p.BookingSvc)

	var verifier handler.PaymentWebhookVerifier
	if r.p.Payments != nil {
		verifier = r.p.Payments
	}
	webhookH := handler.NewWebhookHandler(verifier, r.p.BookingSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAvailabilityRoutes(api, availabilityH, authRequired, requirePerm)
	r.registerBookingRoutes(api, bookingH, authRequired, requirePerm)
	r.registerWebhookRoutes(api, webhookH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			if r.p.DB != nil && r.p.DB.PingContext(c.Context()) != nil {
				return false
			}
			if r.p.Redis != nil && r.p.Redis.Ping(c.Context()).Err() != nil {
				return false
			}
			return true
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
