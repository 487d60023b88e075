// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/booking"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdate) SetUpdatedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *BookingUpdate) SetAppointmentDate(v time.Time) *BookingUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableAppointmentDate(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *BookingUpdate) SetStartTime(v string) *BookingUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStartTime(v *string) *BookingUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *BookingUpdate) SetEndTime(v string) *BookingUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableEndTime(v *string) *BookingUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *BookingUpdate) SetTimezone(v string) *BookingUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableTimezone(v *string) *BookingUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *BookingUpdate) SetPrice(v int64) *BookingUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePrice(v *int64) *BookingUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BookingUpdate) AddPrice(v int64) *BookingUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BookingUpdate) SetCurrency(v string) *BookingUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCurrency(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *BookingUpdate) SetPaymentStatus(v booking.PaymentStatus) *BookingUpdate {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePaymentStatus(v *booking.PaymentStatus) *BookingUpdate {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetPaymentReference sets the "payment_reference" field.
func (_u *BookingUpdate) SetPaymentReference(v string) *BookingUpdate {
	_u.mutation.SetPaymentReference(v)
	return _u
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (_u *BookingUpdate) SetNillablePaymentReference(v *string) *BookingUpdate {
	if v != nil {
		_u.SetPaymentReference(*v)
	}
	return _u
}

// SetRefundID sets the "refund_id" field.
func (_u *BookingUpdate) SetRefundID(v string) *BookingUpdate {
	_u.mutation.SetRefundID(v)
	return _u
}

// SetNillableRefundID sets the "refund_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableRefundID(v *string) *BookingUpdate {
	if v != nil {
		_u.SetRefundID(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdate) SetNotes(v string) *BookingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableNotes(v *string) *BookingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *BookingUpdate) SetMeetingID(v string) *BookingUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableMeetingID(v *string) *BookingUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetMeetingJoinURL sets the "meeting_join_url" field.
func (_u *BookingUpdate) SetMeetingJoinURL(v string) *BookingUpdate {
	_u.mutation.SetMeetingJoinURL(v)
	return _u
}

// SetNillableMeetingJoinURL sets the "meeting_join_url" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableMeetingJoinURL(v *string) *BookingUpdate {
	if v != nil {
		_u.SetMeetingJoinURL(*v)
	}
	return _u
}

// SetMeetingPassword sets the "meeting_password" field.
func (_u *BookingUpdate) SetMeetingPassword(v string) *BookingUpdate {
	_u.mutation.SetMeetingPassword(v)
	return _u
}

// SetNillableMeetingPassword sets the "meeting_password" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableMeetingPassword(v *string) *BookingUpdate {
	if v != nil {
		_u.SetMeetingPassword(*v)
	}
	return _u
}

// SetMeetingProvisionStatus sets the "meeting_provision_status" field.
func (_u *BookingUpdate) SetMeetingProvisionStatus(v booking.MeetingProvisionStatus) *BookingUpdate {
	_u.mutation.SetMeetingProvisionStatus(v)
	return _u
}

// SetNillableMeetingProvisionStatus sets the "meeting_provision_status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableMeetingProvisionStatus(v *booking.MeetingProvisionStatus) *BookingUpdate {
	if v != nil {
		_u.SetMeetingProvisionStatus(*v)
	}
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *BookingUpdate) SetCancellationReason(v string) *BookingUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancellationReason(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *BookingUpdate) SetCancelledBy(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelledBy(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *BookingUpdate) ClearCancelledBy() *BookingUpdate {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancelledByRole sets the "cancelled_by_role" field.
func (_u *BookingUpdate) SetCancelledByRole(v string) *BookingUpdate {
	_u.mutation.SetCancelledByRole(v)
	return _u
}

// SetNillableCancelledByRole sets the "cancelled_by_role" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelledByRole(v *string) *BookingUpdate {
	if v != nil {
		_u.SetCancelledByRole(*v)
	}
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdate) SetCancelledAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelledAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdate) ClearCancelledAt() *BookingUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdate) SetCompletedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCompletedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdate) ClearCompletedAt() *BookingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BookingUpdate) SetVersion(v int) *BookingUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableVersion(v *int) *BookingUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BookingUpdate) AddVersion(v int) *BookingUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.Timezone(); ok {
		if err := booking.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Booking.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := booking.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Booking.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := booking.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Booking.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingProvisionStatus(); ok {
		if err := booking.MeetingProvisionStatusValidator(v); err != nil {
			return &ValidationError{Name: "meeting_provision_status", err: fmt.Errorf(`repo: validator failed for field "Booking.meeting_provision_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := booking.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Booking.version": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(booking.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(booking.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(booking.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(booking.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentReference(); ok {
		_spec.SetField(booking.FieldPaymentReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefundID(); ok {
		_spec.SetField(booking.FieldRefundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(booking.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingJoinURL(); ok {
		_spec.SetField(booking.FieldMeetingJoinURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingPassword(); ok {
		_spec.SetField(booking.FieldMeetingPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingProvisionStatus(); ok {
		_spec.SetField(booking.FieldMeetingProvisionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(booking.FieldCancelledBy, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(booking.FieldCancelledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancelledByRole(); ok {
		_spec.SetField(booking.FieldCancelledByRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(booking.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(booking.FieldVersion, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdateOne) SetUpdatedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *BookingUpdateOne) SetAppointmentDate(v time.Time) *BookingUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableAppointmentDate(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *BookingUpdateOne) SetStartTime(v string) *BookingUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStartTime(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *BookingUpdateOne) SetEndTime(v string) *BookingUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableEndTime(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *BookingUpdateOne) SetTimezone(v string) *BookingUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableTimezone(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *BookingUpdateOne) SetPrice(v int64) *BookingUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePrice(v *int64) *BookingUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BookingUpdateOne) AddPrice(v int64) *BookingUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *BookingUpdateOne) SetCurrency(v string) *BookingUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCurrency(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentStatus sets the "payment_status" field.
func (_u *BookingUpdateOne) SetPaymentStatus(v booking.PaymentStatus) *BookingUpdateOne {
	_u.mutation.SetPaymentStatus(v)
	return _u
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePaymentStatus(v *booking.PaymentStatus) *BookingUpdateOne {
	if v != nil {
		_u.SetPaymentStatus(*v)
	}
	return _u
}

// SetPaymentReference sets the "payment_reference" field.
func (_u *BookingUpdateOne) SetPaymentReference(v string) *BookingUpdateOne {
	_u.mutation.SetPaymentReference(v)
	return _u
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillablePaymentReference(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetPaymentReference(*v)
	}
	return _u
}

// SetRefundID sets the "refund_id" field.
func (_u *BookingUpdateOne) SetRefundID(v string) *BookingUpdateOne {
	_u.mutation.SetRefundID(v)
	return _u
}

// SetNillableRefundID sets the "refund_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableRefundID(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetRefundID(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingUpdateOne) SetNotes(v string) *BookingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableNotes(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *BookingUpdateOne) SetMeetingID(v string) *BookingUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableMeetingID(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// SetMeetingJoinURL sets the "meeting_join_url" field.
func (_u *BookingUpdateOne) SetMeetingJoinURL(v string) *BookingUpdateOne {
	_u.mutation.SetMeetingJoinURL(v)
	return _u
}

// SetNillableMeetingJoinURL sets the "meeting_join_url" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableMeetingJoinURL(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetMeetingJoinURL(*v)
	}
	return _u
}

// SetMeetingPassword sets the "meeting_password" field.
func (_u *BookingUpdateOne) SetMeetingPassword(v string) *BookingUpdateOne {
	_u.mutation.SetMeetingPassword(v)
	return _u
}

// SetNillableMeetingPassword sets the "meeting_password" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableMeetingPassword(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetMeetingPassword(*v)
	}
	return _u
}

// SetMeetingProvisionStatus sets the "meeting_provision_status" field.
func (_u *BookingUpdateOne) SetMeetingProvisionStatus(v booking.MeetingProvisionStatus) *BookingUpdateOne {
	_u.mutation.SetMeetingProvisionStatus(v)
	return _u
}

// SetNillableMeetingProvisionStatus sets the "meeting_provision_status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableMeetingProvisionStatus(v *booking.MeetingProvisionStatus) *BookingUpdateOne {
	if v != nil {
		_u.SetMeetingProvisionStatus(*v)
	}
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *BookingUpdateOne) SetCancellationReason(v string) *BookingUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancellationReason(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *BookingUpdateOne) SetCancelledBy(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelledBy(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *BookingUpdateOne) ClearCancelledBy() *BookingUpdateOne {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancelledByRole sets the "cancelled_by_role" field.
func (_u *BookingUpdateOne) SetCancelledByRole(v string) *BookingUpdateOne {
	_u.mutation.SetCancelledByRole(v)
	return _u
}

// SetNillableCancelledByRole sets the "cancelled_by_role" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelledByRole(v *string) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelledByRole(*v)
	}
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdateOne) SetCancelledAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelledAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdateOne) ClearCancelledAt() *BookingUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdateOne) SetCompletedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCompletedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdateOne) ClearCompletedAt() *BookingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BookingUpdateOne) SetVersion(v int) *BookingUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableVersion(v *int) *BookingUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BookingUpdateOne) AddVersion(v int) *BookingUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.Timezone(); ok {
		if err := booking.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Booking.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := booking.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Booking.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentStatus(); ok {
		if err := booking.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Booking.payment_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingProvisionStatus(); ok {
		if err := booking.MeetingProvisionStatusValidator(v); err != nil {
			return &ValidationError{Name: "meeting_provision_status", err: fmt.Errorf(`repo: validator failed for field "Booking.meeting_provision_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := booking.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Booking.version": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(booking.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(booking.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(booking.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(booking.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentStatus(); ok {
		_spec.SetField(booking.FieldPaymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentReference(); ok {
		_spec.SetField(booking.FieldPaymentReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefundID(); ok {
		_spec.SetField(booking.FieldRefundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(booking.FieldMeetingID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingJoinURL(); ok {
		_spec.SetField(booking.FieldMeetingJoinURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingPassword(); ok {
		_spec.SetField(booking.FieldMeetingPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingProvisionStatus(); ok {
		_spec.SetField(booking.FieldMeetingProvisionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(booking.FieldCancelledBy, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(booking.FieldCancelledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancelledByRole(); ok {
		_spec.SetField(booking.FieldCancelledByRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(booking.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(booking.FieldVersion, field.TypeInt, value)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
