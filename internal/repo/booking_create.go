// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/booking"
)

// BookingCreate is the builder for creating a Booking entity.
type BookingCreate struct {
	config
	mutation *BookingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookingCreate) SetCreatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCreatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BookingCreate) SetUpdatedAt(v time.Time) *BookingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableUpdatedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BookingCreate) SetUserID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *BookingCreate) SetProviderID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetAppointmentDate sets the "appointment_date" field.
func (_c *BookingCreate) SetAppointmentDate(v time.Time) *BookingCreate {
	_c.mutation.SetAppointmentDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *BookingCreate) SetStartTime(v string) *BookingCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *BookingCreate) SetEndTime(v string) *BookingCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *BookingCreate) SetTimezone(v string) *BookingCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *BookingCreate) SetPrice(v int64) *BookingCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePrice(v *int64) *BookingCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *BookingCreate) SetCurrency(v string) *BookingCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCurrency(v *string) *BookingCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BookingCreate) SetStatus(v booking.Status) *BookingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BookingCreate) SetNillableStatus(v *booking.Status) *BookingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPaymentStatus sets the "payment_status" field.
func (_c *BookingCreate) SetPaymentStatus(v booking.PaymentStatus) *BookingCreate {
	_c.mutation.SetPaymentStatus(v)
	return _c
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePaymentStatus(v *booking.PaymentStatus) *BookingCreate {
	if v != nil {
		_c.SetPaymentStatus(*v)
	}
	return _c
}

// SetPaymentReference sets the "payment_reference" field.
func (_c *BookingCreate) SetPaymentReference(v string) *BookingCreate {
	_c.mutation.SetPaymentReference(v)
	return _c
}

// SetNillablePaymentReference sets the "payment_reference" field if the given value is not nil.
func (_c *BookingCreate) SetNillablePaymentReference(v *string) *BookingCreate {
	if v != nil {
		_c.SetPaymentReference(*v)
	}
	return _c
}

// SetRefundID sets the "refund_id" field.
func (_c *BookingCreate) SetRefundID(v string) *BookingCreate {
	_c.mutation.SetRefundID(v)
	return _c
}

// SetNillableRefundID sets the "refund_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableRefundID(v *string) *BookingCreate {
	if v != nil {
		_c.SetRefundID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BookingCreate) SetNotes(v string) *BookingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BookingCreate) SetNillableNotes(v *string) *BookingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *BookingCreate) SetMeetingID(v string) *BookingCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_c *BookingCreate) SetNillableMeetingID(v *string) *BookingCreate {
	if v != nil {
		_c.SetMeetingID(*v)
	}
	return _c
}

// SetMeetingJoinURL sets the "meeting_join_url" field.
func (_c *BookingCreate) SetMeetingJoinURL(v string) *BookingCreate {
	_c.mutation.SetMeetingJoinURL(v)
	return _c
}

// SetNillableMeetingJoinURL sets the "meeting_join_url" field if the given value is not nil.
func (_c *BookingCreate) SetNillableMeetingJoinURL(v *string) *BookingCreate {
	if v != nil {
		_c.SetMeetingJoinURL(*v)
	}
	return _c
}

// SetMeetingPassword sets the "meeting_password" field.
func (_c *BookingCreate) SetMeetingPassword(v string) *BookingCreate {
	_c.mutation.SetMeetingPassword(v)
	return _c
}

// SetNillableMeetingPassword sets the "meeting_password" field if the given value is not nil.
func (_c *BookingCreate) SetNillableMeetingPassword(v *string) *BookingCreate {
	if v != nil {
		_c.SetMeetingPassword(*v)
	}
	return _c
}

// SetMeetingProvisionStatus sets the "meeting_provision_status" field.
func (_c *BookingCreate) SetMeetingProvisionStatus(v booking.MeetingProvisionStatus) *BookingCreate {
	_c.mutation.SetMeetingProvisionStatus(v)
	return _c
}

// SetNillableMeetingProvisionStatus sets the "meeting_provision_status" field if the given value is not nil.
func (_c *BookingCreate) SetNillableMeetingProvisionStatus(v *booking.MeetingProvisionStatus) *BookingCreate {
	if v != nil {
		_c.SetMeetingProvisionStatus(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *BookingCreate) SetCancellationReason(v string) *BookingCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancellationReason(v *string) *BookingCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetCancelledBy sets the "cancelled_by" field.
func (_c *BookingCreate) SetCancelledBy(v uuid.UUID) *BookingCreate {
	_c.mutation.SetCancelledBy(v)
	return _c
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancelledBy(v *uuid.UUID) *BookingCreate {
	if v != nil {
		_c.SetCancelledBy(*v)
	}
	return _c
}

// SetCancelledByRole sets the "cancelled_by_role" field.
func (_c *BookingCreate) SetCancelledByRole(v string) *BookingCreate {
	_c.mutation.SetCancelledByRole(v)
	return _c
}

// SetNillableCancelledByRole sets the "cancelled_by_role" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancelledByRole(v *string) *BookingCreate {
	if v != nil {
		_c.SetCancelledByRole(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *BookingCreate) SetCancelledAt(v time.Time) *BookingCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCancelledAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BookingCreate) SetCompletedAt(v time.Time) *BookingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BookingCreate) SetNillableCompletedAt(v *time.Time) *BookingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BookingCreate) SetVersion(v int) *BookingCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *BookingCreate) SetNillableVersion(v *int) *BookingCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BookingCreate) SetID(v uuid.UUID) *BookingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BookingMutation object of the builder.
func (_c *BookingCreate) Mutation() *BookingMutation {
	return _c.mutation
}

// Save creates the Booking in the database.
func (_c *BookingCreate) Save(ctx context.Context) (*Booking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookingCreate) SaveX(ctx context.Context) *Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := booking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := booking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := booking.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := booking.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := booking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		v := booking.DefaultPaymentStatus
		_c.mutation.SetPaymentStatus(v)
	}
	if _, ok := _c.mutation.PaymentReference(); !ok {
		v := booking.DefaultPaymentReference
		_c.mutation.SetPaymentReference(v)
	}
	if _, ok := _c.mutation.RefundID(); !ok {
		v := booking.DefaultRefundID
		_c.mutation.SetRefundID(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := booking.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.MeetingID(); !ok {
		v := booking.DefaultMeetingID
		_c.mutation.SetMeetingID(v)
	}
	if _, ok := _c.mutation.MeetingJoinURL(); !ok {
		v := booking.DefaultMeetingJoinURL
		_c.mutation.SetMeetingJoinURL(v)
	}
	if _, ok := _c.mutation.MeetingPassword(); !ok {
		v := booking.DefaultMeetingPassword
		_c.mutation.SetMeetingPassword(v)
	}
	if _, ok := _c.mutation.MeetingProvisionStatus(); !ok {
		v := booking.DefaultMeetingProvisionStatus
		_c.mutation.SetMeetingProvisionStatus(v)
	}
	if _, ok := _c.mutation.CancellationReason(); !ok {
		v := booking.DefaultCancellationReason
		_c.mutation.SetCancellationReason(v)
	}
	if _, ok := _c.mutation.CancelledByRole(); !ok {
		v := booking.DefaultCancelledByRole
		_c.mutation.SetCancelledByRole(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := booking.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Booking.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Booking.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Booking.user_id"`)}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Booking.provider_id"`)}
	}
	if _, ok := _c.mutation.AppointmentDate(); !ok {
		return &ValidationError{Name: "appointment_date", err: errors.New(`repo: missing required field "Booking.appointment_date"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Booking.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Booking.end_time"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Booking.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := booking.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Booking.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "Booking.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := booking.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "Booking.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Booking.currency"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Booking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`repo: missing required field "Booking.payment_status"`)}
	}
	if v, ok := _c.mutation.PaymentStatus(); ok {
		if err := booking.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`repo: validator failed for field "Booking.payment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentReference(); !ok {
		return &ValidationError{Name: "payment_reference", err: errors.New(`repo: missing required field "Booking.payment_reference"`)}
	}
	if _, ok := _c.mutation.RefundID(); !ok {
		return &ValidationError{Name: "refund_id", err: errors.New(`repo: missing required field "Booking.refund_id"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`repo: missing required field "Booking.notes"`)}
	}
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`repo: missing required field "Booking.meeting_id"`)}
	}
	if _, ok := _c.mutation.MeetingJoinURL(); !ok {
		return &ValidationError{Name: "meeting_join_url", err: errors.New(`repo: missing required field "Booking.meeting_join_url"`)}
	}
	if _, ok := _c.mutation.MeetingPassword(); !ok {
		return &ValidationError{Name: "meeting_password", err: errors.New(`repo: missing required field "Booking.meeting_password"`)}
	}
	if _, ok := _c.mutation.MeetingProvisionStatus(); !ok {
		return &ValidationError{Name: "meeting_provision_status", err: errors.New(`repo: missing required field "Booking.meeting_provision_status"`)}
	}
	if v, ok := _c.mutation.MeetingProvisionStatus(); ok {
		if err := booking.MeetingProvisionStatusValidator(v); err != nil {
			return &ValidationError{Name: "meeting_provision_status", err: fmt.Errorf(`repo: validator failed for field "Booking.meeting_provision_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancellationReason(); !ok {
		return &ValidationError{Name: "cancellation_reason", err: errors.New(`repo: missing required field "Booking.cancellation_reason"`)}
	}
	if _, ok := _c.mutation.CancelledByRole(); !ok {
		return &ValidationError{Name: "cancelled_by_role", err: errors.New(`repo: missing required field "Booking.cancelled_by_role"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "Booking.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := booking.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Booking.version": %w`, err)}
		}
	}
	return nil
}

func (_c *BookingCreate) sqlSave(ctx context.Context) (*Booking, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BookingCreate) createSpec() (*Booking, *sqlgraph.CreateSpec) {
	var (
		_node = &Booking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(booking.Table, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(booking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(booking.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(booking.FieldProviderID, field.TypeUUID, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.AppointmentDate(); ok {
		_spec.SetField(booking.FieldAppointmentDate, field.TypeTime, value)
		_node.AppointmentDate = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(booking.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(booking.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(booking.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PaymentStatus(); ok {
		_spec.SetField(booking.FieldPaymentStatus, field.TypeEnum, value)
		_node.PaymentStatus = value
	}
	if value, ok := _c.mutation.PaymentReference(); ok {
		_spec.SetField(booking.FieldPaymentReference, field.TypeString, value)
		_node.PaymentReference = value
	}
	if value, ok := _c.mutation.RefundID(); ok {
		_spec.SetField(booking.FieldRefundID, field.TypeString, value)
		_node.RefundID = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(booking.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(booking.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.MeetingJoinURL(); ok {
		_spec.SetField(booking.FieldMeetingJoinURL, field.TypeString, value)
		_node.MeetingJoinURL = value
	}
	if value, ok := _c.mutation.MeetingPassword(); ok {
		_spec.SetField(booking.FieldMeetingPassword, field.TypeString, value)
		_node.MeetingPassword = value
	}
	if value, ok := _c.mutation.MeetingProvisionStatus(); ok {
		_spec.SetField(booking.FieldMeetingProvisionStatus, field.TypeEnum, value)
		_node.MeetingProvisionStatus = value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(booking.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = value
	}
	if value, ok := _c.mutation.CancelledBy(); ok {
		_spec.SetField(booking.FieldCancelledBy, field.TypeUUID, value)
		_node.CancelledBy = &value
	}
	if value, ok := _c.mutation.CancelledByRole(); ok {
		_spec.SetField(booking.FieldCancelledByRole, field.TypeString, value)
		_node.CancelledByRole = value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(booking.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Booking.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BookingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BookingCreate) OnConflict(opts ...sql.ConflictOption) *BookingUpsertOne {
	_c.conflict = opts
	return &BookingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BookingCreate) OnConflictColumns(columns ...string) *BookingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BookingUpsertOne{
		create: _c,
	}
}

type (
	// BookingUpsertOne is the builder for "upsert"-ing
	//  one Booking node.
	BookingUpsertOne struct {
		create *BookingCreate
	}

	// BookingUpsert is the "OnConflict" setter.
	BookingUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BookingUpsert) SetUpdatedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateUpdatedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldUpdatedAt)
	return u
}

// SetAppointmentDate sets the "appointment_date" field.
func (u *BookingUpsert) SetAppointmentDate(v time.Time) *BookingUpsert {
	u.Set(booking.FieldAppointmentDate, v)
	return u
}

// UpdateAppointmentDate sets the "appointment_date" field to the value that was provided on create.
func (u *BookingUpsert) UpdateAppointmentDate() *BookingUpsert {
	u.SetExcluded(booking.FieldAppointmentDate)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *BookingUpsert) SetStartTime(v string) *BookingUpsert {
	u.Set(booking.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *BookingUpsert) UpdateStartTime() *BookingUpsert {
	u.SetExcluded(booking.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *BookingUpsert) SetEndTime(v string) *BookingUpsert {
	u.Set(booking.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *BookingUpsert) UpdateEndTime() *BookingUpsert {
	u.SetExcluded(booking.FieldEndTime)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *BookingUpsert) SetTimezone(v string) *BookingUpsert {
	u.Set(booking.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *BookingUpsert) UpdateTimezone() *BookingUpsert {
	u.SetExcluded(booking.FieldTimezone)
	return u
}

// SetPrice sets the "price" field.
func (u *BookingUpsert) SetPrice(v int64) *BookingUpsert {
	u.Set(booking.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePrice() *BookingUpsert {
	u.SetExcluded(booking.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *BookingUpsert) AddPrice(v int64) *BookingUpsert {
	u.Add(booking.FieldPrice, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *BookingUpsert) SetCurrency(v string) *BookingUpsert {
	u.Set(booking.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCurrency() *BookingUpsert {
	u.SetExcluded(booking.FieldCurrency)
	return u
}

// SetStatus sets the "status" field.
func (u *BookingUpsert) SetStatus(v booking.Status) *BookingUpsert {
	u.Set(booking.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsert) UpdateStatus() *BookingUpsert {
	u.SetExcluded(booking.FieldStatus)
	return u
}

// SetPaymentStatus sets the "payment_status" field.
func (u *BookingUpsert) SetPaymentStatus(v booking.PaymentStatus) *BookingUpsert {
	u.Set(booking.FieldPaymentStatus, v)
	return u
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePaymentStatus() *BookingUpsert {
	u.SetExcluded(booking.FieldPaymentStatus)
	return u
}

// SetPaymentReference sets the "payment_reference" field.
func (u *BookingUpsert) SetPaymentReference(v string) *BookingUpsert {
	u.Set(booking.FieldPaymentReference, v)
	return u
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *BookingUpsert) UpdatePaymentReference() *BookingUpsert {
	u.SetExcluded(booking.FieldPaymentReference)
	return u
}

// SetRefundID sets the "refund_id" field.
func (u *BookingUpsert) SetRefundID(v string) *BookingUpsert {
	u.Set(booking.FieldRefundID, v)
	return u
}

// UpdateRefundID sets the "refund_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateRefundID() *BookingUpsert {
	u.SetExcluded(booking.FieldRefundID)
	return u
}

// SetNotes sets the "notes" field.
func (u *BookingUpsert) SetNotes(v string) *BookingUpsert {
	u.Set(booking.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BookingUpsert) UpdateNotes() *BookingUpsert {
	u.SetExcluded(booking.FieldNotes)
	return u
}

// SetMeetingID sets the "meeting_id" field.
func (u *BookingUpsert) SetMeetingID(v string) *BookingUpsert {
	u.Set(booking.FieldMeetingID, v)
	return u
}

// UpdateMeetingID sets the "meeting_id" field to the value that was provided on create.
func (u *BookingUpsert) UpdateMeetingID() *BookingUpsert {
	u.SetExcluded(booking.FieldMeetingID)
	return u
}

// SetMeetingJoinURL sets the "meeting_join_url" field.
func (u *BookingUpsert) SetMeetingJoinURL(v string) *BookingUpsert {
	u.Set(booking.FieldMeetingJoinURL, v)
	return u
}

// UpdateMeetingJoinURL sets the "meeting_join_url" field to the value that was provided on create.
func (u *BookingUpsert) UpdateMeetingJoinURL() *BookingUpsert {
	u.SetExcluded(booking.FieldMeetingJoinURL)
	return u
}

// SetMeetingPassword sets the "meeting_password" field.
func (u *BookingUpsert) SetMeetingPassword(v string) *BookingUpsert {
	u.Set(booking.FieldMeetingPassword, v)
	return u
}

// UpdateMeetingPassword sets the "meeting_password" field to the value that was provided on create.
func (u *BookingUpsert) UpdateMeetingPassword() *BookingUpsert {
	u.SetExcluded(booking.FieldMeetingPassword)
	return u
}

// SetMeetingProvisionStatus sets the "meeting_provision_status" field.
func (u *BookingUpsert) SetMeetingProvisionStatus(v booking.MeetingProvisionStatus) *BookingUpsert {
	u.Set(booking.FieldMeetingProvisionStatus, v)
	return u
}

// UpdateMeetingProvisionStatus sets the "meeting_provision_status" field to the value that was provided on create.
func (u *BookingUpsert) UpdateMeetingProvisionStatus() *BookingUpsert {
	u.SetExcluded(booking.FieldMeetingProvisionStatus)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *BookingUpsert) SetCancellationReason(v string) *BookingUpsert {
	u.Set(booking.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCancellationReason() *BookingUpsert {
	u.SetExcluded(booking.FieldCancellationReason)
	return u
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *BookingUpsert) SetCancelledBy(v uuid.UUID) *BookingUpsert {
	u.Set(booking.FieldCancelledBy, v)
	return u
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCancelledBy() *BookingUpsert {
	u.SetExcluded(booking.FieldCancelledBy)
	return u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *BookingUpsert) ClearCancelledBy() *BookingUpsert {
	u.SetNull(booking.FieldCancelledBy)
	return u
}

// SetCancelledByRole sets the "cancelled_by_role" field.
func (u *BookingUpsert) SetCancelledByRole(v string) *BookingUpsert {
	u.Set(booking.FieldCancelledByRole, v)
	return u
}

// UpdateCancelledByRole sets the "cancelled_by_role" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCancelledByRole() *BookingUpsert {
	u.SetExcluded(booking.FieldCancelledByRole)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *BookingUpsert) SetCancelledAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCancelledAt() *BookingUpsert {
	u.SetExcluded(booking.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *BookingUpsert) ClearCancelledAt() *BookingUpsert {
	u.SetNull(booking.FieldCancelledAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *BookingUpsert) SetCompletedAt(v time.Time) *BookingUpsert {
	u.Set(booking.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BookingUpsert) UpdateCompletedAt() *BookingUpsert {
	u.SetExcluded(booking.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BookingUpsert) ClearCompletedAt() *BookingUpsert {
	u.SetNull(booking.FieldCompletedAt)
	return u
}

// SetVersion sets the "version" field.
func (u *BookingUpsert) SetVersion(v int) *BookingUpsert {
	u.Set(booking.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BookingUpsert) UpdateVersion() *BookingUpsert {
	u.SetExcluded(booking.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *BookingUpsert) AddVersion(v int) *BookingUpsert {
	u.Add(booking.FieldVersion, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(booking.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BookingUpsertOne) UpdateNewValues() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(booking.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(booking.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(booking.FieldUserID)
		}
		if _, exists := u.create.mutation.ProviderID(); exists {
			s.SetIgnore(booking.FieldProviderID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BookingUpsertOne) Ignore() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BookingUpsertOne) DoNothing() *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BookingCreate.OnConflict
// documentation for more info.
func (u *BookingUpsertOne) Update(set func(*BookingUpsert)) *BookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BookingUpsertOne) SetUpdatedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateUpdatedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentDate sets the "appointment_date" field.
func (u *BookingUpsertOne) SetAppointmentDate(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetAppointmentDate(v)
	})
}

// UpdateAppointmentDate sets the "appointment_date" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateAppointmentDate() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateAppointmentDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *BookingUpsertOne) SetStartTime(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateStartTime() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *BookingUpsertOne) SetEndTime(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateEndTime() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateEndTime()
	})
}

// SetTimezone sets the "timezone" field.
func (u *BookingUpsertOne) SetTimezone(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateTimezone() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTimezone()
	})
}

// SetPrice sets the "price" field.
func (u *BookingUpsertOne) SetPrice(v int64) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *BookingUpsertOne) AddPrice(v int64) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePrice() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *BookingUpsertOne) SetCurrency(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCurrency() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCurrency()
	})
}

// SetStatus sets the "status" field.
func (u *BookingUpsertOne) SetStatus(v booking.Status) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateStatus() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *BookingUpsertOne) SetPaymentStatus(v booking.PaymentStatus) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePaymentStatus() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetPaymentReference sets the "payment_reference" field.
func (u *BookingUpsertOne) SetPaymentReference(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetPaymentReference(v)
	})
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdatePaymentReference() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePaymentReference()
	})
}

// SetRefundID sets the "refund_id" field.
func (u *BookingUpsertOne) SetRefundID(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetRefundID(v)
	})
}

// UpdateRefundID sets the "refund_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateRefundID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateRefundID()
	})
}

// SetNotes sets the "notes" field.
func (u *BookingUpsertOne) SetNotes(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateNotes() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateNotes()
	})
}

// SetMeetingID sets the "meeting_id" field.
func (u *BookingUpsertOne) SetMeetingID(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingID(v)
	})
}

// UpdateMeetingID sets the "meeting_id" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateMeetingID() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingID()
	})
}

// SetMeetingJoinURL sets the "meeting_join_url" field.
func (u *BookingUpsertOne) SetMeetingJoinURL(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingJoinURL(v)
	})
}

// UpdateMeetingJoinURL sets the "meeting_join_url" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateMeetingJoinURL() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingJoinURL()
	})
}

// SetMeetingPassword sets the "meeting_password" field.
func (u *BookingUpsertOne) SetMeetingPassword(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingPassword(v)
	})
}

// UpdateMeetingPassword sets the "meeting_password" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateMeetingPassword() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingPassword()
	})
}

// SetMeetingProvisionStatus sets the "meeting_provision_status" field.
func (u *BookingUpsertOne) SetMeetingProvisionStatus(v booking.MeetingProvisionStatus) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingProvisionStatus(v)
	})
}

// UpdateMeetingProvisionStatus sets the "meeting_provision_status" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateMeetingProvisionStatus() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingProvisionStatus()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *BookingUpsertOne) SetCancellationReason(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCancellationReason() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancellationReason()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *BookingUpsertOne) SetCancelledBy(v uuid.UUID) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCancelledBy() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *BookingUpsertOne) ClearCancelledBy() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancelledByRole sets the "cancelled_by_role" field.
func (u *BookingUpsertOne) SetCancelledByRole(v string) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledByRole(v)
	})
}

// UpdateCancelledByRole sets the "cancelled_by_role" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCancelledByRole() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledByRole()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *BookingUpsertOne) SetCancelledAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCancelledAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *BookingUpsertOne) ClearCancelledAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BookingUpsertOne) SetCompletedAt(v time.Time) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateCompletedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BookingUpsertOne) ClearCompletedAt() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCompletedAt()
	})
}

// SetVersion sets the "version" field.
func (u *BookingUpsertOne) SetVersion(v int) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *BookingUpsertOne) AddVersion(v int) *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BookingUpsertOne) UpdateVersion() *BookingUpsertOne {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateVersion()
	})
}

// Exec executes the query.
func (u *BookingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BookingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BookingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BookingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BookingUpsertOne.ID is not supported by MySQL driver. Use BookingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BookingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BookingCreateBulk is the builder for creating many Booking entities in bulk.
type BookingCreateBulk struct {
	config
	err      error
	builders []*BookingCreate
	conflict []sql.ConflictOption
}

// Save creates the Booking entities in the database.
func (_c *BookingCreateBulk) Save(ctx context.Context) ([]*Booking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Booking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BookingCreateBulk) SaveX(ctx context.Context) []*Booking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Booking.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BookingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BookingCreateBulk) OnConflict(opts ...sql.ConflictOption) *BookingUpsertBulk {
	_c.conflict = opts
	return &BookingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BookingCreateBulk) OnConflictColumns(columns ...string) *BookingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BookingUpsertBulk{
		create: _c,
	}
}

// BookingUpsertBulk is the builder for "upsert"-ing
// a bulk of Booking nodes.
type BookingUpsertBulk struct {
	create *BookingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(booking.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BookingUpsertBulk) UpdateNewValues() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(booking.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(booking.FieldCreatedAt)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(booking.FieldUserID)
			}
			if _, exists := b.mutation.ProviderID(); exists {
				s.SetIgnore(booking.FieldProviderID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Booking.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BookingUpsertBulk) Ignore() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BookingUpsertBulk) DoNothing() *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BookingCreateBulk.OnConflict
// documentation for more info.
func (u *BookingUpsertBulk) Update(set func(*BookingUpsert)) *BookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BookingUpsertBulk) SetUpdatedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateUpdatedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentDate sets the "appointment_date" field.
func (u *BookingUpsertBulk) SetAppointmentDate(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetAppointmentDate(v)
	})
}

// UpdateAppointmentDate sets the "appointment_date" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateAppointmentDate() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateAppointmentDate()
	})
}

// SetStartTime sets the "start_time" field.
func (u *BookingUpsertBulk) SetStartTime(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateStartTime() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *BookingUpsertBulk) SetEndTime(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateEndTime() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateEndTime()
	})
}

// SetTimezone sets the "timezone" field.
func (u *BookingUpsertBulk) SetTimezone(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateTimezone() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateTimezone()
	})
}

// SetPrice sets the "price" field.
func (u *BookingUpsertBulk) SetPrice(v int64) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *BookingUpsertBulk) AddPrice(v int64) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePrice() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *BookingUpsertBulk) SetCurrency(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCurrency() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCurrency()
	})
}

// SetStatus sets the "status" field.
func (u *BookingUpsertBulk) SetStatus(v booking.Status) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateStatus() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentStatus sets the "payment_status" field.
func (u *BookingUpsertBulk) SetPaymentStatus(v booking.PaymentStatus) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPaymentStatus(v)
	})
}

// UpdatePaymentStatus sets the "payment_status" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePaymentStatus() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePaymentStatus()
	})
}

// SetPaymentReference sets the "payment_reference" field.
func (u *BookingUpsertBulk) SetPaymentReference(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetPaymentReference(v)
	})
}

// UpdatePaymentReference sets the "payment_reference" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdatePaymentReference() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdatePaymentReference()
	})
}

// SetRefundID sets the "refund_id" field.
func (u *BookingUpsertBulk) SetRefundID(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetRefundID(v)
	})
}

// UpdateRefundID sets the "refund_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateRefundID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateRefundID()
	})
}

// SetNotes sets the "notes" field.
func (u *BookingUpsertBulk) SetNotes(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateNotes() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateNotes()
	})
}

// SetMeetingID sets the "meeting_id" field.
func (u *BookingUpsertBulk) SetMeetingID(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingID(v)
	})
}

// UpdateMeetingID sets the "meeting_id" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateMeetingID() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingID()
	})
}

// SetMeetingJoinURL sets the "meeting_join_url" field.
func (u *BookingUpsertBulk) SetMeetingJoinURL(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingJoinURL(v)
	})
}

// UpdateMeetingJoinURL sets the "meeting_join_url" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateMeetingJoinURL() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingJoinURL()
	})
}

// SetMeetingPassword sets the "meeting_password" field.
func (u *BookingUpsertBulk) SetMeetingPassword(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingPassword(v)
	})
}

// UpdateMeetingPassword sets the "meeting_password" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateMeetingPassword() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingPassword()
	})
}

// SetMeetingProvisionStatus sets the "meeting_provision_status" field.
func (u *BookingUpsertBulk) SetMeetingProvisionStatus(v booking.MeetingProvisionStatus) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetMeetingProvisionStatus(v)
	})
}

// UpdateMeetingProvisionStatus sets the "meeting_provision_status" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateMeetingProvisionStatus() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateMeetingProvisionStatus()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *BookingUpsertBulk) SetCancellationReason(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCancellationReason() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancellationReason()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *BookingUpsertBulk) SetCancelledBy(v uuid.UUID) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCancelledBy() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *BookingUpsertBulk) ClearCancelledBy() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancelledByRole sets the "cancelled_by_role" field.
func (u *BookingUpsertBulk) SetCancelledByRole(v string) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledByRole(v)
	})
}

// UpdateCancelledByRole sets the "cancelled_by_role" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCancelledByRole() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledByRole()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *BookingUpsertBulk) SetCancelledAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCancelledAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *BookingUpsertBulk) ClearCancelledAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BookingUpsertBulk) SetCompletedAt(v time.Time) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateCompletedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BookingUpsertBulk) ClearCompletedAt() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.ClearCompletedAt()
	})
}

// SetVersion sets the "version" field.
func (u *BookingUpsertBulk) SetVersion(v int) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *BookingUpsertBulk) AddVersion(v int) *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BookingUpsertBulk) UpdateVersion() *BookingUpsertBulk {
	return u.Update(func(s *BookingUpsert) {
		s.UpdateVersion()
	})
}

// Exec executes the query.
func (u *BookingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BookingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BookingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BookingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
