// Code generated by ent, DO NOT EDIT.

package provideravailability

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLTE(FieldID, id))
}

// SessionDurationMinutes applies equality check predicate on the "session_duration_minutes" field. It's identical to SessionDurationMinutesEQ.
func SessionDurationMinutes(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldSessionDurationMinutes, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldTimezone, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionDurationMinutesEQ applies the EQ predicate on the "session_duration_minutes" field.
func SessionDurationMinutesEQ(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesNEQ applies the NEQ predicate on the "session_duration_minutes" field.
func SessionDurationMinutesNEQ(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNEQ(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesIn applies the In predicate on the "session_duration_minutes" field.
func SessionDurationMinutesIn(vs ...int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldIn(FieldSessionDurationMinutes, vs...))
}

// SessionDurationMinutesNotIn applies the NotIn predicate on the "session_duration_minutes" field.
func SessionDurationMinutesNotIn(vs ...int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNotIn(FieldSessionDurationMinutes, vs...))
}

// SessionDurationMinutesGT applies the GT predicate on the "session_duration_minutes" field.
func SessionDurationMinutesGT(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGT(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesGTE applies the GTE predicate on the "session_duration_minutes" field.
func SessionDurationMinutesGTE(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGTE(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesLT applies the LT predicate on the "session_duration_minutes" field.
func SessionDurationMinutesLT(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLT(FieldSessionDurationMinutes, v))
}

// SessionDurationMinutesLTE applies the LTE predicate on the "session_duration_minutes" field.
func SessionDurationMinutesLTE(v int) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLTE(FieldSessionDurationMinutes, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldContainsFold(FieldTimezone, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderAvailability) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderAvailability) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderAvailability) predicate.ProviderAvailability {
	return predicate.ProviderAvailability(sql.NotPredicates(p))
}
