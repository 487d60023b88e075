package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
	"github.com/jasimarif/psychology-app/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token and, when the token
// carries a session, checks the session in Redis.
// On success, stores *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims)
// and on the request context.
func AuthRequired(mgr *pasetotoken.Manager, rdb redis.Cmdable) fiber.Handler {
	return func(c fiber.Ctx) error {
		tok, ok := pasetotoken.BearerToken(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(tok)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		if claims.SessionID != nil && rdb != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}
