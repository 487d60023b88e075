package authorize

import (
	"context"
	"errors"
	"testing"
)

func newSeeded(t *testing.T) IAuthorization {
	t.Helper()

	auth, err := NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatalf("SeedDefaultPolicies: %v", err)
	}
	return auth
}

func TestEnforce_DefaultPolicies(t *testing.T) {
	auth := newSeeded(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		role   Role
		object Resource
		action Action
		want   bool
	}{
		{"client creates booking", RoleClient, ResourceBooking, ActionCreate, true},
		{"client cancels booking", RoleClient, ResourceBooking, ActionCancel, true},
		{"client pays", RoleClient, ResourceBooking, ActionPay, true},
		{"client cannot complete", RoleClient, ResourceBooking, ActionComplete, false},
		{"client cannot edit availability", RoleClient, ResourceAvailability, ActionUpdate, false},
		{"provider completes", RoleProvider, ResourceBooking, ActionComplete, true},
		{"provider edits availability", RoleProvider, ResourceAvailability, ActionUpdate, true},
		{"provider cannot create booking", RoleProvider, ResourceBooking, ActionCreate, false},
		{"provider cannot refund", RoleProvider, ResourceBooking, ActionRefund, false},
		{"admin wildcard", RoleAdmin, ResourceBooking, ActionRefund, true},
		{"admin availability", RoleAdmin, ResourceAvailability, ActionUpdate, true},
		{"empty role", "", ResourceBooking, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.role, tt.object, tt.action)
			if err != nil {
				t.Fatalf("Enforce: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce(%s, %s, %s) = %v, want %v", tt.role, tt.object, tt.action, got, tt.want)
			}
		})
	}
}

func TestEnforce_InvalidArguments(t *testing.T) {
	auth := newSeeded(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		role   Role
		object Resource
		action Action
	}{
		{"unknown role", Role("guest"), ResourceBooking, ActionRead},
		{"unknown resource", RoleClient, Resource("invoice"), ActionRead},
		{"unknown action", RoleClient, ResourceBooking, Action("delete")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Enforce(ctx, tt.role, tt.object, tt.action)
			if !errors.Is(err, ErrInvalidArgs) {
				t.Errorf("err = %v, want ErrInvalidArgs", err)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newSeeded(t)
	ctx := context.Background()

	if err := auth.MustEnforce(ctx, RoleClient, ResourceBooking, ActionCreate); err != nil {
		t.Errorf("allowed: %v", err)
	}
	if err := auth.MustEnforce(ctx, RoleClient, ResourceBooking, ActionComplete); !errors.Is(err, ErrForbidden) {
		t.Errorf("denied err = %v, want ErrForbidden", err)
	}
}

func TestDenyOverridesAllow(t *testing.T) {
	auth := newSeeded(t)
	ctx := context.Background()

	deny := PermissionPolicy{RoleAdmin, ResourceBooking, ActionRefund, EffectDeny}
	if _, err := auth.AddPermission(ctx, deny); err != nil {
		t.Fatalf("AddPermission: %v", err)
	}
	if ok, _ := auth.Enforce(ctx, RoleAdmin, ResourceBooking, ActionRefund); ok {
		t.Error("deny rule should override admin wildcard")
	}
	if ok, _ := auth.Enforce(ctx, RoleAdmin, ResourceBooking, ActionCancel); !ok {
		t.Error("deny rule leaked onto another action")
	}
}

func TestAddPermission_RejectsBadEffect(t *testing.T) {
	auth, err := NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	_, err = auth.AddPermission(context.Background(), PermissionPolicy{RoleClient, ResourceBooking, ActionRead, "maybe"})
	if !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("err = %v, want ErrInvalidArgs", err)
	}
}

func TestAuditedAuthorization_Delegates(t *testing.T) {
	audited := NewAuditedAuthorization(newSeeded(t), nil)
	ctx := context.Background()

	ok, err := audited.Enforce(ctx, RoleProvider, ResourceBooking, ActionComplete)
	if err != nil || !ok {
		t.Errorf("Enforce = %v, %v; want true", ok, err)
	}
	if err := audited.MustEnforce(ctx, RoleProvider, ResourceBooking, ActionCreate); !errors.Is(err, ErrForbidden) {
		t.Errorf("MustEnforce err = %v, want ErrForbidden", err)
	}
	if audited.Raw() == nil {
		t.Error("Raw returned nil")
	}
}
