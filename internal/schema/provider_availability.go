package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// ProviderAvailability is a provider's weekly template. There is at most one
// per provider, so the provider id is the primary key.
type ProviderAvailability struct {
	ent.Schema
}

func (ProviderAvailability) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "provider_availability"},
	}
}

func (ProviderAvailability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			StorageKey("provider_id").
			Immutable().
			Comment("FK → providers.id"),

		field.Int("session_duration_minutes").
			Range(1, 1440),

		field.String("timezone").
			NotEmpty(),

		field.JSON("schedule", json.RawMessage{}).
			Comment("Ordered list of day schedules with their time ranges"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
