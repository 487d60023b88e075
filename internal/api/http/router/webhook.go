package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/api/http/handler"
)

// Webhooks authenticate by signature, not by bearer token.
func (r *Router) registerWebhookRoutes(api fiber.Router, wh *handler.WebhookHandler) {
	api.Post("/webhooks/stripe", wh.Stripe)
}
