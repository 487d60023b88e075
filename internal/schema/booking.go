package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ActiveSlotIndex is the partial unique index that gives a provider slot to
// at most one pending or confirmed booking.
const ActiveSlotIndex = "bookings_active_slot_key"

// Booking reserves one slot of one provider for one client.
type Booking struct {
	ent.Schema
}

func (Booking) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
	}
}

func (Booking) Fields() []ent.Field {
	clock := map[string]string{dialect.Postgres: "varchar(5)"}

	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Immutable(),

		field.UUID("user_id", uuid.UUID{}).
			Immutable().
			Comment("FK → users.id"),

		field.UUID("provider_id", uuid.UUID{}).
			Immutable().
			Comment("FK → providers.id"),

		field.Time("appointment_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),

		field.String("start_time").
			SchemaType(clock).
			Comment("HH:MM in the booking timezone"),

		field.String("end_time").
			SchemaType(clock).
			Comment("HH:MM in the booking timezone; 24:00 ends at midnight"),

		field.String("timezone").
			NotEmpty(),

		field.Int64("price").
			NonNegative().
			Default(0),

		field.String("currency").
			Default("usd"),

		field.Enum("status").
			Values("pending", "confirmed", "cancelled", "completed").
			Default("pending"),

		field.Enum("payment_status").
			Values("unpaid", "paid", "refunded").
			Default("unpaid"),

		field.String("payment_reference").
			Default("").
			Comment("Stripe payment intent id"),

		field.String("refund_id").
			Default(""),

		field.Text("notes").
			Default(""),

		field.String("meeting_id").
			Default(""),

		field.String("meeting_join_url").
			Default(""),

		field.String("meeting_password").
			Default("").
			Sensitive().
			Comment("Sealed with the service encryption key"),

		field.Enum("meeting_provision_status").
			Values("pending", "provisioned", "failed", "skipped").
			Default("pending"),

		field.String("cancellation_reason").
			Default(""),

		field.UUID("cancelled_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("cancelled_by_role").
			Default(""),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Int("version").
			Positive().
			Default(1).
			Comment("Optimistic concurrency token, bumped by every lifecycle write"),
	}
}

func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "appointment_date", "start_time").
			Unique().
			StorageKey(ActiveSlotIndex).
			Annotations(entsql.IndexWhere("status IN ('pending', 'confirmed')")),
		index.Fields("user_id", "appointment_date"),
		index.Fields("provider_id", "appointment_date"),
		index.Fields("status", "appointment_date"),
	}
}
