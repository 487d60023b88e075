package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/booking"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
)

func actorFromFiber(c fiber.Ctx) (booking.Actor, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.UserID == uuid.Nil {
		return booking.Actor{}, false
	}
	return booking.Actor{ID: claims.UserID, Role: booking.Role(claims.Role)}, true
}

func uuidParam(c fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}
