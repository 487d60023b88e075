package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Provider is the read-only projection of a therapist profile.
type Provider struct {
	ent.Schema
}

func (Provider) Mixin() []ent.Mixin {
	return []ent.Mixin{
		ContactMixin{},
	}
}

func (Provider) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Immutable().
			Comment("Owned by the account service"),

		field.Int64("session_price").
			NonNegative().
			Default(0).
			Comment("Minor units of currency"),

		field.String("currency").
			Default("usd"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
