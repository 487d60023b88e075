package authorize

type Action string
type Resource string
type Role string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate     Action = "create"
	ActionRead       Action = "read"
	ActionList       Action = "list"
	ActionUpdate     Action = "update"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionComplete   Action = "complete"
	ActionPay        Action = "pay"
	ActionRefund     Action = "refund"

	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionList: {}, ActionUpdate: {},
	ActionCancel: {}, ActionReschedule: {}, ActionComplete: {},
	ActionPay: {}, ActionRefund: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	ResourceBooking      Resource = "booking"
	ResourceAvailability Resource = "availability"

	WildcardResource Resource = "*"
)

var KnownResources = map[Resource]struct{}{
	ResourceBooking:      {},
	ResourceAvailability: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// Roles are carried in the access token's "rol" claim.

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

var KnownRoles = map[Role]struct{}{
	RoleClient:   {},
	RoleProvider: {},
	RoleAdmin:    {},
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// Permission rows: p, role, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
