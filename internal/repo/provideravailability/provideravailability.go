// Code generated by ent, DO NOT EDIT.

package provideravailability

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the provideravailability type in the database.
	Label = "provider_availability"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "provider_id"
	// FieldSessionDurationMinutes holds the string denoting the session_duration_minutes field in the database.
	FieldSessionDurationMinutes = "session_duration_minutes"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldSchedule holds the string denoting the schedule field in the database.
	FieldSchedule = "schedule"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the provideravailability in the database.
	Table = "provider_availability"
)

// Columns holds all SQL columns for provideravailability fields.
var Columns = []string{
	FieldID,
	FieldSessionDurationMinutes,
	FieldTimezone,
	FieldSchedule,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionDurationMinutesValidator is a validator for the "session_duration_minutes" field. It is called by the builders before save.
	SessionDurationMinutesValidator func(int) error
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProviderAvailability queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionDurationMinutes orders the results by the session_duration_minutes field.
func BySessionDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDurationMinutes, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
