// Code generated by ent, DO NOT EDIT.

package booking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUserID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldProviderID, v))
}

// AppointmentDate applies equality check predicate on the "appointment_date" field. It's identical to AppointmentDateEQ.
func AppointmentDate(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldAppointmentDate, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldEndTime, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTimezone, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPrice, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCurrency, v))
}

// PaymentReference applies equality check predicate on the "payment_reference" field. It's identical to PaymentReferenceEQ.
func PaymentReference(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPaymentReference, v))
}

// RefundID applies equality check predicate on the "refund_id" field. It's identical to RefundIDEQ.
func RefundID(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldRefundID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldNotes, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingJoinURL applies equality check predicate on the "meeting_join_url" field. It's identical to MeetingJoinURLEQ.
func MeetingJoinURL(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingJoinURL, v))
}

// MeetingPassword applies equality check predicate on the "meeting_password" field. It's identical to MeetingPasswordEQ.
func MeetingPassword(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingPassword, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancellationReason, v))
}

// CancelledBy applies equality check predicate on the "cancelled_by" field. It's identical to CancelledByEQ.
func CancelledBy(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledByRole applies equality check predicate on the "cancelled_by_role" field. It's identical to CancelledByRoleEQ.
func CancelledByRole(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledByRole, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCompletedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldUserID, v))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldProviderID, v))
}

// AppointmentDateEQ applies the EQ predicate on the "appointment_date" field.
func AppointmentDateEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldAppointmentDate, v))
}

// AppointmentDateNEQ applies the NEQ predicate on the "appointment_date" field.
func AppointmentDateNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldAppointmentDate, v))
}

// AppointmentDateIn applies the In predicate on the "appointment_date" field.
func AppointmentDateIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldAppointmentDate, vs...))
}

// AppointmentDateNotIn applies the NotIn predicate on the "appointment_date" field.
func AppointmentDateNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldAppointmentDate, vs...))
}

// AppointmentDateGT applies the GT predicate on the "appointment_date" field.
func AppointmentDateGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldAppointmentDate, v))
}

// AppointmentDateGTE applies the GTE predicate on the "appointment_date" field.
func AppointmentDateGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldAppointmentDate, v))
}

// AppointmentDateLT applies the LT predicate on the "appointment_date" field.
func AppointmentDateLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldAppointmentDate, v))
}

// AppointmentDateLTE applies the LTE predicate on the "appointment_date" field.
func AppointmentDateLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldAppointmentDate, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldEndTime, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldTimezone, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int64) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int64) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int64) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPrice, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldCurrency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentStatusEQ applies the EQ predicate on the "payment_status" field.
func PaymentStatusEQ(v PaymentStatus) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPaymentStatus, v))
}

// PaymentStatusNEQ applies the NEQ predicate on the "payment_status" field.
func PaymentStatusNEQ(v PaymentStatus) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPaymentStatus, v))
}

// PaymentStatusIn applies the In predicate on the "payment_status" field.
func PaymentStatusIn(vs ...PaymentStatus) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPaymentStatus, vs...))
}

// PaymentStatusNotIn applies the NotIn predicate on the "payment_status" field.
func PaymentStatusNotIn(vs ...PaymentStatus) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPaymentStatus, vs...))
}

// PaymentReferenceEQ applies the EQ predicate on the "payment_reference" field.
func PaymentReferenceEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldPaymentReference, v))
}

// PaymentReferenceNEQ applies the NEQ predicate on the "payment_reference" field.
func PaymentReferenceNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldPaymentReference, v))
}

// PaymentReferenceIn applies the In predicate on the "payment_reference" field.
func PaymentReferenceIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldPaymentReference, vs...))
}

// PaymentReferenceNotIn applies the NotIn predicate on the "payment_reference" field.
func PaymentReferenceNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldPaymentReference, vs...))
}

// PaymentReferenceGT applies the GT predicate on the "payment_reference" field.
func PaymentReferenceGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldPaymentReference, v))
}

// PaymentReferenceGTE applies the GTE predicate on the "payment_reference" field.
func PaymentReferenceGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldPaymentReference, v))
}

// PaymentReferenceLT applies the LT predicate on the "payment_reference" field.
func PaymentReferenceLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldPaymentReference, v))
}

// PaymentReferenceLTE applies the LTE predicate on the "payment_reference" field.
func PaymentReferenceLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldPaymentReference, v))
}

// PaymentReferenceContains applies the Contains predicate on the "payment_reference" field.
func PaymentReferenceContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldPaymentReference, v))
}

// PaymentReferenceHasPrefix applies the HasPrefix predicate on the "payment_reference" field.
func PaymentReferenceHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldPaymentReference, v))
}

// PaymentReferenceHasSuffix applies the HasSuffix predicate on the "payment_reference" field.
func PaymentReferenceHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldPaymentReference, v))
}

// PaymentReferenceEqualFold applies the EqualFold predicate on the "payment_reference" field.
func PaymentReferenceEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldPaymentReference, v))
}

// PaymentReferenceContainsFold applies the ContainsFold predicate on the "payment_reference" field.
func PaymentReferenceContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldPaymentReference, v))
}

// RefundIDEQ applies the EQ predicate on the "refund_id" field.
func RefundIDEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldRefundID, v))
}

// RefundIDNEQ applies the NEQ predicate on the "refund_id" field.
func RefundIDNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldRefundID, v))
}

// RefundIDIn applies the In predicate on the "refund_id" field.
func RefundIDIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldRefundID, vs...))
}

// RefundIDNotIn applies the NotIn predicate on the "refund_id" field.
func RefundIDNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldRefundID, vs...))
}

// RefundIDGT applies the GT predicate on the "refund_id" field.
func RefundIDGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldRefundID, v))
}

// RefundIDGTE applies the GTE predicate on the "refund_id" field.
func RefundIDGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldRefundID, v))
}

// RefundIDLT applies the LT predicate on the "refund_id" field.
func RefundIDLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldRefundID, v))
}

// RefundIDLTE applies the LTE predicate on the "refund_id" field.
func RefundIDLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldRefundID, v))
}

// RefundIDContains applies the Contains predicate on the "refund_id" field.
func RefundIDContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldRefundID, v))
}

// RefundIDHasPrefix applies the HasPrefix predicate on the "refund_id" field.
func RefundIDHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldRefundID, v))
}

// RefundIDHasSuffix applies the HasSuffix predicate on the "refund_id" field.
func RefundIDHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldRefundID, v))
}

// RefundIDEqualFold applies the EqualFold predicate on the "refund_id" field.
func RefundIDEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldRefundID, v))
}

// RefundIDContainsFold applies the ContainsFold predicate on the "refund_id" field.
func RefundIDContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldRefundID, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldNotes, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldMeetingID, v))
}

// MeetingJoinURLEQ applies the EQ predicate on the "meeting_join_url" field.
func MeetingJoinURLEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingJoinURL, v))
}

// MeetingJoinURLNEQ applies the NEQ predicate on the "meeting_join_url" field.
func MeetingJoinURLNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldMeetingJoinURL, v))
}

// MeetingJoinURLIn applies the In predicate on the "meeting_join_url" field.
func MeetingJoinURLIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldMeetingJoinURL, vs...))
}

// MeetingJoinURLNotIn applies the NotIn predicate on the "meeting_join_url" field.
func MeetingJoinURLNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldMeetingJoinURL, vs...))
}

// MeetingJoinURLGT applies the GT predicate on the "meeting_join_url" field.
func MeetingJoinURLGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldMeetingJoinURL, v))
}

// MeetingJoinURLGTE applies the GTE predicate on the "meeting_join_url" field.
func MeetingJoinURLGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldMeetingJoinURL, v))
}

// MeetingJoinURLLT applies the LT predicate on the "meeting_join_url" field.
func MeetingJoinURLLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldMeetingJoinURL, v))
}

// MeetingJoinURLLTE applies the LTE predicate on the "meeting_join_url" field.
func MeetingJoinURLLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldMeetingJoinURL, v))
}

// MeetingJoinURLContains applies the Contains predicate on the "meeting_join_url" field.
func MeetingJoinURLContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldMeetingJoinURL, v))
}

// MeetingJoinURLHasPrefix applies the HasPrefix predicate on the "meeting_join_url" field.
func MeetingJoinURLHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldMeetingJoinURL, v))
}

// MeetingJoinURLHasSuffix applies the HasSuffix predicate on the "meeting_join_url" field.
func MeetingJoinURLHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldMeetingJoinURL, v))
}

// MeetingJoinURLEqualFold applies the EqualFold predicate on the "meeting_join_url" field.
func MeetingJoinURLEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldMeetingJoinURL, v))
}

// MeetingJoinURLContainsFold applies the ContainsFold predicate on the "meeting_join_url" field.
func MeetingJoinURLContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldMeetingJoinURL, v))
}

// MeetingPasswordEQ applies the EQ predicate on the "meeting_password" field.
func MeetingPasswordEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingPassword, v))
}

// MeetingPasswordNEQ applies the NEQ predicate on the "meeting_password" field.
func MeetingPasswordNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldMeetingPassword, v))
}

// MeetingPasswordIn applies the In predicate on the "meeting_password" field.
func MeetingPasswordIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldMeetingPassword, vs...))
}

// MeetingPasswordNotIn applies the NotIn predicate on the "meeting_password" field.
func MeetingPasswordNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldMeetingPassword, vs...))
}

// MeetingPasswordGT applies the GT predicate on the "meeting_password" field.
func MeetingPasswordGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldMeetingPassword, v))
}

// MeetingPasswordGTE applies the GTE predicate on the "meeting_password" field.
func MeetingPasswordGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldMeetingPassword, v))
}

// MeetingPasswordLT applies the LT predicate on the "meeting_password" field.
func MeetingPasswordLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldMeetingPassword, v))
}

// MeetingPasswordLTE applies the LTE predicate on the "meeting_password" field.
func MeetingPasswordLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldMeetingPassword, v))
}

// MeetingPasswordContains applies the Contains predicate on the "meeting_password" field.
func MeetingPasswordContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldMeetingPassword, v))
}

// MeetingPasswordHasPrefix applies the HasPrefix predicate on the "meeting_password" field.
func MeetingPasswordHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldMeetingPassword, v))
}

// MeetingPasswordHasSuffix applies the HasSuffix predicate on the "meeting_password" field.
func MeetingPasswordHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldMeetingPassword, v))
}

// MeetingPasswordEqualFold applies the EqualFold predicate on the "meeting_password" field.
func MeetingPasswordEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldMeetingPassword, v))
}

// MeetingPasswordContainsFold applies the ContainsFold predicate on the "meeting_password" field.
func MeetingPasswordContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldMeetingPassword, v))
}

// MeetingProvisionStatusEQ applies the EQ predicate on the "meeting_provision_status" field.
func MeetingProvisionStatusEQ(v MeetingProvisionStatus) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldMeetingProvisionStatus, v))
}

// MeetingProvisionStatusNEQ applies the NEQ predicate on the "meeting_provision_status" field.
func MeetingProvisionStatusNEQ(v MeetingProvisionStatus) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldMeetingProvisionStatus, v))
}

// MeetingProvisionStatusIn applies the In predicate on the "meeting_provision_status" field.
func MeetingProvisionStatusIn(vs ...MeetingProvisionStatus) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldMeetingProvisionStatus, vs...))
}

// MeetingProvisionStatusNotIn applies the NotIn predicate on the "meeting_provision_status" field.
func MeetingProvisionStatusNotIn(vs ...MeetingProvisionStatus) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldMeetingProvisionStatus, vs...))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldCancellationReason, v))
}

// CancelledByEQ applies the EQ predicate on the "cancelled_by" field.
func CancelledByEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledByNEQ applies the NEQ predicate on the "cancelled_by" field.
func CancelledByNEQ(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCancelledBy, v))
}

// CancelledByIn applies the In predicate on the "cancelled_by" field.
func CancelledByIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCancelledBy, vs...))
}

// CancelledByNotIn applies the NotIn predicate on the "cancelled_by" field.
func CancelledByNotIn(vs ...uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCancelledBy, vs...))
}

// CancelledByGT applies the GT predicate on the "cancelled_by" field.
func CancelledByGT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCancelledBy, v))
}

// CancelledByGTE applies the GTE predicate on the "cancelled_by" field.
func CancelledByGTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCancelledBy, v))
}

// CancelledByLT applies the LT predicate on the "cancelled_by" field.
func CancelledByLT(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCancelledBy, v))
}

// CancelledByLTE applies the LTE predicate on the "cancelled_by" field.
func CancelledByLTE(v uuid.UUID) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCancelledBy, v))
}

// CancelledByIsNil applies the IsNil predicate on the "cancelled_by" field.
func CancelledByIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCancelledBy))
}

// CancelledByNotNil applies the NotNil predicate on the "cancelled_by" field.
func CancelledByNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCancelledBy))
}

// CancelledByRoleEQ applies the EQ predicate on the "cancelled_by_role" field.
func CancelledByRoleEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledByRole, v))
}

// CancelledByRoleNEQ applies the NEQ predicate on the "cancelled_by_role" field.
func CancelledByRoleNEQ(v string) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCancelledByRole, v))
}

// CancelledByRoleIn applies the In predicate on the "cancelled_by_role" field.
func CancelledByRoleIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCancelledByRole, vs...))
}

// CancelledByRoleNotIn applies the NotIn predicate on the "cancelled_by_role" field.
func CancelledByRoleNotIn(vs ...string) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCancelledByRole, vs...))
}

// CancelledByRoleGT applies the GT predicate on the "cancelled_by_role" field.
func CancelledByRoleGT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCancelledByRole, v))
}

// CancelledByRoleGTE applies the GTE predicate on the "cancelled_by_role" field.
func CancelledByRoleGTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCancelledByRole, v))
}

// CancelledByRoleLT applies the LT predicate on the "cancelled_by_role" field.
func CancelledByRoleLT(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCancelledByRole, v))
}

// CancelledByRoleLTE applies the LTE predicate on the "cancelled_by_role" field.
func CancelledByRoleLTE(v string) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCancelledByRole, v))
}

// CancelledByRoleContains applies the Contains predicate on the "cancelled_by_role" field.
func CancelledByRoleContains(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContains(FieldCancelledByRole, v))
}

// CancelledByRoleHasPrefix applies the HasPrefix predicate on the "cancelled_by_role" field.
func CancelledByRoleHasPrefix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasPrefix(FieldCancelledByRole, v))
}

// CancelledByRoleHasSuffix applies the HasSuffix predicate on the "cancelled_by_role" field.
func CancelledByRoleHasSuffix(v string) predicate.Booking {
	return predicate.Booking(sql.FieldHasSuffix(FieldCancelledByRole, v))
}

// CancelledByRoleEqualFold applies the EqualFold predicate on the "cancelled_by_role" field.
func CancelledByRoleEqualFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldEqualFold(FieldCancelledByRole, v))
}

// CancelledByRoleContainsFold applies the ContainsFold predicate on the "cancelled_by_role" field.
func CancelledByRoleContainsFold(v string) predicate.Booking {
	return predicate.Booking(sql.FieldContainsFold(FieldCancelledByRole, v))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCancelledAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Booking {
	return predicate.Booking(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Booking {
	return predicate.Booking(sql.FieldNotNull(FieldCompletedAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Booking {
	return predicate.Booking(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Booking {
	return predicate.Booking(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Booking {
	return predicate.Booking(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Booking {
	return predicate.Booking(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Booking {
	return predicate.Booking(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Booking {
	return predicate.Booking(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Booking {
	return predicate.Booking(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Booking {
	return predicate.Booking(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Booking) predicate.Booking {
	return predicate.Booking(sql.NotPredicates(p))
}
