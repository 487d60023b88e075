// Package reqctx provides centralized request context management.
//
// Request-scoped data (request metadata and authentication claims) is stored
// under private context keys and read back through typed accessors, so the
// HTTP layer, services and the logging handler agree on one representation.
//
// # Usage
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
//	ctx = reqctx.WithClaims(ctx, claims)
//
// Getting values (in handlers, services, log handlers):
//
//	requestID := reqctx.RequestIDFromContext(ctx)
//	if userID, ok := reqctx.UserIDFromContext(ctx); ok {
//	    log = log.With("user_id", userID)
//	}
//
// # Contracts
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - Claims is set only for authenticated requests (token present and valid)
package reqctx
