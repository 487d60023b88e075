package authorize

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/pkg/reqctx"
)

type stubClaims struct {
	role string
}

func (s stubClaims) GetUserID() uuid.UUID     { return uuid.Nil }
func (s stubClaims) GetSessionID() *uuid.UUID { return nil }
func (s stubClaims) GetRole() string          { return s.role }
func (s stubClaims) IsExpired() bool          { return false }

func TestRoleFromContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		want    Role
		wantErr bool
	}{
		{"client", reqctx.WithClaims(context.Background(), stubClaims{role: "client"}), RoleClient, false},
		{"no claims", context.Background(), "", true},
		{"empty role", reqctx.WithClaims(context.Background(), stubClaims{}), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoleFromContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("role = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnforceContext(t *testing.T) {
	auth := newSeeded(t)

	ctx := reqctx.WithClaims(context.Background(), stubClaims{role: "provider"})
	if err := EnforceContext(ctx, auth, ResourceAvailability, ActionUpdate); err != nil {
		t.Errorf("provider: %v", err)
	}
	if err := EnforceContext(ctx, auth, ResourceBooking, ActionRefund); !errors.Is(err, ErrForbidden) {
		t.Errorf("provider refund err = %v, want ErrForbidden", err)
	}
	if err := EnforceContext(context.Background(), auth, ResourceBooking, ActionRead); !errors.Is(err, ErrNoSubjectInContext) {
		t.Errorf("anonymous err = %v, want ErrNoSubjectInContext", err)
	}
}
