// Code generated by ent, DO NOT EDIT.

package booking

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the booking type in the database.
	Label = "booking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProviderID holds the string denoting the provider_id field in the database.
	FieldProviderID = "provider_id"
	// FieldAppointmentDate holds the string denoting the appointment_date field in the database.
	FieldAppointmentDate = "appointment_date"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPaymentStatus holds the string denoting the payment_status field in the database.
	FieldPaymentStatus = "payment_status"
	// FieldPaymentReference holds the string denoting the payment_reference field in the database.
	FieldPaymentReference = "payment_reference"
	// FieldRefundID holds the string denoting the refund_id field in the database.
	FieldRefundID = "refund_id"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldMeetingJoinURL holds the string denoting the meeting_join_url field in the database.
	FieldMeetingJoinURL = "meeting_join_url"
	// FieldMeetingPassword holds the string denoting the meeting_password field in the database.
	FieldMeetingPassword = "meeting_password"
	// FieldMeetingProvisionStatus holds the string denoting the meeting_provision_status field in the database.
	FieldMeetingProvisionStatus = "meeting_provision_status"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// FieldCancelledBy holds the string denoting the cancelled_by field in the database.
	FieldCancelledBy = "cancelled_by"
	// FieldCancelledByRole holds the string denoting the cancelled_by_role field in the database.
	FieldCancelledByRole = "cancelled_by_role"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the booking in the database.
	Table = "bookings"
)

// Columns holds all SQL columns for booking fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldProviderID,
	FieldAppointmentDate,
	FieldStartTime,
	FieldEndTime,
	FieldTimezone,
	FieldPrice,
	FieldCurrency,
	FieldStatus,
	FieldPaymentStatus,
	FieldPaymentReference,
	FieldRefundID,
	FieldNotes,
	FieldMeetingID,
	FieldMeetingJoinURL,
	FieldMeetingPassword,
	FieldMeetingProvisionStatus,
	FieldCancellationReason,
	FieldCancelledBy,
	FieldCancelledByRole,
	FieldCancelledAt,
	FieldCompletedAt,
	FieldVersion,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice int64
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(int64) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// DefaultPaymentReference holds the default value on creation for the "payment_reference" field.
	DefaultPaymentReference string
	// DefaultRefundID holds the default value on creation for the "refund_id" field.
	DefaultRefundID string
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultMeetingID holds the default value on creation for the "meeting_id" field.
	DefaultMeetingID string
	// DefaultMeetingJoinURL holds the default value on creation for the "meeting_join_url" field.
	DefaultMeetingJoinURL string
	// DefaultMeetingPassword holds the default value on creation for the "meeting_password" field.
	DefaultMeetingPassword string
	// DefaultCancellationReason holds the default value on creation for the "cancellation_reason" field.
	DefaultCancellationReason string
	// DefaultCancelledByRole holds the default value on creation for the "cancelled_by_role" field.
	DefaultCancelledByRole string
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("booking: invalid enum value for status field: %q", s)
	}
}

// PaymentStatus defines the type for the "payment_status" enum field.
type PaymentStatus string

// PaymentStatusUnpaid is the default value of the PaymentStatus enum.
const DefaultPaymentStatus = PaymentStatusUnpaid

// PaymentStatus values.
const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

// PaymentStatusValidator is a validator for the "payment_status" field enum values. It is called by the builders before save.
func PaymentStatusValidator(ps PaymentStatus) error {
	switch ps {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return nil
	default:
		return fmt.Errorf("booking: invalid enum value for payment_status field: %q", ps)
	}
}

// MeetingProvisionStatus defines the type for the "meeting_provision_status" enum field.
type MeetingProvisionStatus string

// MeetingProvisionStatusPending is the default value of the MeetingProvisionStatus enum.
const DefaultMeetingProvisionStatus = MeetingProvisionStatusPending

// MeetingProvisionStatus values.
const (
	MeetingProvisionStatusPending     MeetingProvisionStatus = "pending"
	MeetingProvisionStatusProvisioned MeetingProvisionStatus = "provisioned"
	MeetingProvisionStatusFailed      MeetingProvisionStatus = "failed"
	MeetingProvisionStatusSkipped     MeetingProvisionStatus = "skipped"
)

func (mps MeetingProvisionStatus) String() string {
	return string(mps)
}

// MeetingProvisionStatusValidator is a validator for the "meeting_provision_status" field enum values. It is called by the builders before save.
func MeetingProvisionStatusValidator(mps MeetingProvisionStatus) error {
	switch mps {
	case MeetingProvisionStatusPending, MeetingProvisionStatusProvisioned, MeetingProvisionStatusFailed, MeetingProvisionStatusSkipped:
		return nil
	default:
		return fmt.Errorf("booking: invalid enum value for meeting_provision_status field: %q", mps)
	}
}

// OrderOption defines the ordering options for the Booking queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProviderID orders the results by the provider_id field.
func ByProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderID, opts...).ToFunc()
}

// ByAppointmentDate orders the results by the appointment_date field.
func ByAppointmentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentDate, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPaymentStatus orders the results by the payment_status field.
func ByPaymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentStatus, opts...).ToFunc()
}

// ByPaymentReference orders the results by the payment_reference field.
func ByPaymentReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentReference, opts...).ToFunc()
}

// ByRefundID orders the results by the refund_id field.
func ByRefundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefundID, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByMeetingJoinURL orders the results by the meeting_join_url field.
func ByMeetingJoinURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingJoinURL, opts...).ToFunc()
}

// ByMeetingPassword orders the results by the meeting_password field.
func ByMeetingPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingPassword, opts...).ToFunc()
}

// ByMeetingProvisionStatus orders the results by the meeting_provision_status field.
func ByMeetingProvisionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingProvisionStatus, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}

// ByCancelledBy orders the results by the cancelled_by field.
func ByCancelledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledBy, opts...).ToFunc()
}

// ByCancelledByRole orders the results by the cancelled_by_role field.
func ByCancelledByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledByRole, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
