// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/provideravailability"
)

// ProviderAvailability is the model entity for the ProviderAvailability schema.
type ProviderAvailability struct {
	config `json:"-"`
	// ID of the ent.
	// FK → providers.id
	ID uuid.UUID `json:"id,omitempty"`
	// SessionDurationMinutes holds the value of the "session_duration_minutes" field.
	SessionDurationMinutes int `json:"session_duration_minutes,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// Ordered list of day schedules with their time ranges
	Schedule json.RawMessage `json:"schedule,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderAvailability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case provideravailability.FieldSchedule:
			values[i] = new([]byte)
		case provideravailability.FieldSessionDurationMinutes:
			values[i] = new(sql.NullInt64)
		case provideravailability.FieldTimezone:
			values[i] = new(sql.NullString)
		case provideravailability.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case provideravailability.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderAvailability fields.
func (_m *ProviderAvailability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case provideravailability.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case provideravailability.FieldSessionDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_duration_minutes", values[i])
			} else if value.Valid {
				_m.SessionDurationMinutes = int(value.Int64)
			}
		case provideravailability.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case provideravailability.FieldSchedule:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schedule", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Schedule); err != nil {
					return fmt.Errorf("unmarshal field schedule: %w", err)
				}
			}
		case provideravailability.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderAvailability.
// This includes values selected through modifiers, order, etc.
func (_m *ProviderAvailability) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProviderAvailability.
// Note that you need to call ProviderAvailability.Unwrap() before calling this method if this ProviderAvailability
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProviderAvailability) Update() *ProviderAvailabilityUpdateOne {
	return NewProviderAvailabilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProviderAvailability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProviderAvailability) Unwrap() *ProviderAvailability {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ProviderAvailability is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProviderAvailability) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderAvailability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("schedule=")
	builder.WriteString(fmt.Sprintf("%v", _m.Schedule))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProviderAvailabilities is a parsable slice of ProviderAvailability.
type ProviderAvailabilities []*ProviderAvailability
