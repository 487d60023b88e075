// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "appointment_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "start_time", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(5)"}},
		{Name: "end_time", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(5)"}},
		{Name: "timezone", Type: field.TypeString},
		{Name: "price", Type: field.TypeInt64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "usd"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "cancelled", "completed"}, Default: "pending"},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"unpaid", "paid", "refunded"}, Default: "unpaid"},
		{Name: "payment_reference", Type: field.TypeString, Default: ""},
		{Name: "refund_id", Type: field.TypeString, Default: ""},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "meeting_id", Type: field.TypeString, Default: ""},
		{Name: "meeting_join_url", Type: field.TypeString, Default: ""},
		{Name: "meeting_password", Type: field.TypeString, Default: ""},
		{Name: "meeting_provision_status", Type: field.TypeEnum, Enums: []string{"pending", "provisioned", "failed", "skipped"}, Default: "pending"},
		{Name: "cancellation_reason", Type: field.TypeString, Default: ""},
		{Name: "cancelled_by", Type: field.TypeUUID, Nullable: true},
		{Name: "cancelled_by_role", Type: field.TypeString, Default: ""},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bookings_active_slot_key",
				Unique:  true,
				Columns: []*schema.Column{BookingsColumns[4], BookingsColumns[5], BookingsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'confirmed')",
				},
			},
			{
				Name:    "booking_user_id_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[5]},
			},
			{
				Name:    "booking_provider_id_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[4], BookingsColumns[5]},
			},
			{
				Name:    "booking_status_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[11], BookingsColumns[5]},
			},
		},
	}
	// ProvidersColumns holds the columns for the "providers" table.
	ProvidersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "session_price", Type: field.TypeInt64, Default: 0},
		{Name: "currency", Type: field.TypeString, Default: "usd"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProvidersTable holds the schema information for the "providers" table.
	ProvidersTable = &schema.Table{
		Name:       "providers",
		Columns:    ProvidersColumns,
		PrimaryKey: []*schema.Column{ProvidersColumns[0]},
	}
	// ProviderAvailabilityColumns holds the columns for the "provider_availability" table.
	ProviderAvailabilityColumns = []*schema.Column{
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "session_duration_minutes", Type: field.TypeInt},
		{Name: "timezone", Type: field.TypeString},
		{Name: "schedule", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProviderAvailabilityTable holds the schema information for the "provider_availability" table.
	ProviderAvailabilityTable = &schema.Table{
		Name:       "provider_availability",
		Columns:    ProviderAvailabilityColumns,
		PrimaryKey: []*schema.Column{ProviderAvailabilityColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BookingsTable,
		ProvidersTable,
		ProviderAvailabilityTable,
		UsersTable,
	}
)

func init() {
	ProviderAvailabilityTable.Annotation = &entsql.Annotation{
		Table: "provider_availability",
	}
}
