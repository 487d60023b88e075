package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// TimeStampedMixin adds created_at and updated_at. The booking engine sets
// both explicitly from its clock; the defaults cover rows written elsewhere.
type TimeStampedMixin struct {
	mixin.Schema
}

func (TimeStampedMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// ContactMixin carries the profile fields the booking core reads from the
// account service's projections.
type ContactMixin struct {
	mixin.Schema
}

func (ContactMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			Default(""),
		field.String("email").
			Default(""),
		field.String("phone").
			Default(""),
	}
}
