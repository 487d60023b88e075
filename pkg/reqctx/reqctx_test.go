package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeClaims struct {
	userID  uuid.UUID
	role    string
	expired bool
}

func (f fakeClaims) GetUserID() uuid.UUID     { return f.userID }
func (f fakeClaims) GetSessionID() *uuid.UUID { return nil }
func (f fakeClaims) GetRole() string          { return f.role }
func (f fakeClaims) IsExpired() bool          { return f.expired }

func TestClaims(t *testing.T) {
	ctx := context.Background()
	if ClaimsFromContext(ctx) != nil {
		t.Fatal("empty context has claims")
	}
	if _, ok := UserIDFromContext(ctx); ok {
		t.Fatal("empty context has a user id")
	}

	id := uuid.New()
	ctx = WithClaims(ctx, fakeClaims{userID: id, role: "provider"})
	if got, _ := UserIDFromContext(ctx); got != id {
		t.Errorf("user id = %s, want %s", got, id)
	}
	if got := ClaimsFromContext(ctx).GetRole(); got != "provider" {
		t.Errorf("role = %q", got)
	}
}

func TestRequestMeta(t *testing.T) {
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("empty context has a request id")
	}
	ctx := WithRequestMeta(context.Background(), &RequestMeta{RequestID: "req-1", RequestedAt: time.Now()})
	if RequestIDFromContext(ctx) != "req-1" {
		t.Errorf("request id = %q", RequestIDFromContext(ctx))
	}
	if meta, ok := RequestMetaFromContext(ctx); !ok || meta.RequestedAt.IsZero() {
		t.Errorf("meta = %+v, ok = %v", meta, ok)
	}
}
