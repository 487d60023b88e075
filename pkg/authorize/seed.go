package authorize

import (
	"context"
	"log/slog"
)

// DefaultPolicies is the coarse role gate in front of the booking API.
// Ownership of individual bookings is checked by the booking engine.
func DefaultPolicies() []PermissionPolicy {
	return []PermissionPolicy{
		{RoleAdmin, WildcardResource, WildcardAction, EffectAllow},

		{RoleClient, ResourceBooking, ActionCreate, EffectAllow},
		{RoleClient, ResourceBooking, ActionRead, EffectAllow},
		{RoleClient, ResourceBooking, ActionList, EffectAllow},
		{RoleClient, ResourceBooking, ActionCancel, EffectAllow},
		{RoleClient, ResourceBooking, ActionReschedule, EffectAllow},
		{RoleClient, ResourceBooking, ActionPay, EffectAllow},
		{RoleClient, ResourceBooking, ActionRefund, EffectAllow},
		{RoleClient, ResourceAvailability, ActionUpdate, EffectDeny},

		{RoleProvider, ResourceBooking, ActionRead, EffectAllow},
		{RoleProvider, ResourceBooking, ActionList, EffectAllow},
		{RoleProvider, ResourceBooking, ActionCancel, EffectAllow},
		{RoleProvider, ResourceBooking, ActionReschedule, EffectAllow},
		{RoleProvider, ResourceBooking, ActionComplete, EffectAllow},
		{RoleProvider, ResourceAvailability, ActionUpdate, EffectAllow},
	}
}

// SeedDefaultPolicies installs DefaultPolicies into auth.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	policies := DefaultPolicies()
	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p)
		if err != nil {
			slog.ErrorContext(ctx, "failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			slog.DebugContext(ctx, "added policy", "role", p.Subject, "resource", p.Object, "action", p.Action, "effect", p.Effect)
		}
	}

	slog.InfoContext(ctx, "seeded default RBAC policies", "count", len(policies))
	return nil
}
