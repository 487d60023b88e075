// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/jasimarif/psychology-app/internal/repo/booking"
	"github.com/jasimarif/psychology-app/internal/repo/provider"
	"github.com/jasimarif/psychology-app/internal/repo/provideravailability"
	"github.com/jasimarif/psychology-app/internal/repo/user"
	"github.com/jasimarif/psychology-app/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookingMixin := schema.Booking{}.Mixin()
	bookingMixinFields0 := bookingMixin[0].Fields()
	_ = bookingMixinFields0
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingMixinFields0[0].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingMixinFields0[1].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookingDescTimezone is the schema descriptor for timezone field.
	bookingDescTimezone := bookingFields[6].Descriptor()
	// booking.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	booking.TimezoneValidator = bookingDescTimezone.Validators[0].(func(string) error)
	// bookingDescPrice is the schema descriptor for price field.
	bookingDescPrice := bookingFields[7].Descriptor()
	// booking.DefaultPrice holds the default value on creation for the price field.
	booking.DefaultPrice = bookingDescPrice.Default.(int64)
	// booking.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	booking.PriceValidator = bookingDescPrice.Validators[0].(func(int64) error)
	// bookingDescCurrency is the schema descriptor for currency field.
	bookingDescCurrency := bookingFields[8].Descriptor()
	// booking.DefaultCurrency holds the default value on creation for the currency field.
	booking.DefaultCurrency = bookingDescCurrency.Default.(string)
	// bookingDescPaymentReference is the schema descriptor for payment_reference field.
	bookingDescPaymentReference := bookingFields[11].Descriptor()
	// booking.DefaultPaymentReference holds the default value on creation for the payment_reference field.
	booking.DefaultPaymentReference = bookingDescPaymentReference.Default.(string)
	// bookingDescRefundID is the schema descriptor for refund_id field.
	bookingDescRefundID := bookingFields[12].Descriptor()
	// booking.DefaultRefundID holds the default value on creation for the refund_id field.
	booking.DefaultRefundID = bookingDescRefundID.Default.(string)
	// bookingDescNotes is the schema descriptor for notes field.
	bookingDescNotes := bookingFields[13].Descriptor()
	// booking.DefaultNotes holds the default value on creation for the notes field.
	booking.DefaultNotes = bookingDescNotes.Default.(string)
	// bookingDescMeetingID is the schema descriptor for meeting_id field.
	bookingDescMeetingID := bookingFields[14].Descriptor()
	// booking.DefaultMeetingID holds the default value on creation for the meeting_id field.
	booking.DefaultMeetingID = bookingDescMeetingID.Default.(string)
	// bookingDescMeetingJoinURL is the schema descriptor for meeting_join_url field.
	bookingDescMeetingJoinURL := bookingFields[15].Descriptor()
	// booking.DefaultMeetingJoinURL holds the default value on creation for the meeting_join_url field.
	booking.DefaultMeetingJoinURL = bookingDescMeetingJoinURL.Default.(string)
	// bookingDescMeetingPassword is the schema descriptor for meeting_password field.
	bookingDescMeetingPassword := bookingFields[16].Descriptor()
	// booking.DefaultMeetingPassword holds the default value on creation for the meeting_password field.
	booking.DefaultMeetingPassword = bookingDescMeetingPassword.Default.(string)
	// bookingDescCancellationReason is the schema descriptor for cancellation_reason field.
	bookingDescCancellationReason := bookingFields[18].Descriptor()
	// booking.DefaultCancellationReason holds the default value on creation for the cancellation_reason field.
	booking.DefaultCancellationReason = bookingDescCancellationReason.Default.(string)
	// bookingDescCancelledByRole is the schema descriptor for cancelled_by_role field.
	bookingDescCancelledByRole := bookingFields[20].Descriptor()
	// booking.DefaultCancelledByRole holds the default value on creation for the cancelled_by_role field.
	booking.DefaultCancelledByRole = bookingDescCancelledByRole.Default.(string)
	// bookingDescVersion is the schema descriptor for version field.
	bookingDescVersion := bookingFields[23].Descriptor()
	// booking.DefaultVersion holds the default value on creation for the version field.
	booking.DefaultVersion = bookingDescVersion.Default.(int)
	// booking.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	booking.VersionValidator = bookingDescVersion.Validators[0].(func(int) error)
	providerMixin := schema.Provider{}.Mixin()
	providerMixinFields0 := providerMixin[0].Fields()
	_ = providerMixinFields0
	providerFields := schema.Provider{}.Fields()
	_ = providerFields
	// providerDescFullName is the schema descriptor for full_name field.
	providerDescFullName := providerMixinFields0[0].Descriptor()
	// provider.DefaultFullName holds the default value on creation for the full_name field.
	provider.DefaultFullName = providerDescFullName.Default.(string)
	// providerDescEmail is the schema descriptor for email field.
	providerDescEmail := providerMixinFields0[1].Descriptor()
	// provider.DefaultEmail holds the default value on creation for the email field.
	provider.DefaultEmail = providerDescEmail.Default.(string)
	// providerDescPhone is the schema descriptor for phone field.
	providerDescPhone := providerMixinFields0[2].Descriptor()
	// provider.DefaultPhone holds the default value on creation for the phone field.
	provider.DefaultPhone = providerDescPhone.Default.(string)
	// providerDescSessionPrice is the schema descriptor for session_price field.
	providerDescSessionPrice := providerFields[1].Descriptor()
	// provider.DefaultSessionPrice holds the default value on creation for the session_price field.
	provider.DefaultSessionPrice = providerDescSessionPrice.Default.(int64)
	// provider.SessionPriceValidator is a validator for the "session_price" field. It is called by the builders before save.
	provider.SessionPriceValidator = providerDescSessionPrice.Validators[0].(func(int64) error)
	// providerDescCurrency is the schema descriptor for currency field.
	providerDescCurrency := providerFields[2].Descriptor()
	// provider.DefaultCurrency holds the default value on creation for the currency field.
	provider.DefaultCurrency = providerDescCurrency.Default.(string)
	// providerDescCreatedAt is the schema descriptor for created_at field.
	providerDescCreatedAt := providerFields[3].Descriptor()
	// provider.DefaultCreatedAt holds the default value on creation for the created_at field.
	provider.DefaultCreatedAt = providerDescCreatedAt.Default.(func() time.Time)
	provideravailabilityFields := schema.ProviderAvailability{}.Fields()
	_ = provideravailabilityFields
	// provideravailabilityDescSessionDurationMinutes is the schema descriptor for session_duration_minutes field.
	provideravailabilityDescSessionDurationMinutes := provideravailabilityFields[1].Descriptor()
	// provideravailability.SessionDurationMinutesValidator is a validator for the "session_duration_minutes" field. It is called by the builders before save.
	provideravailability.SessionDurationMinutesValidator = provideravailabilityDescSessionDurationMinutes.Validators[0].(func(int) error)
	// provideravailabilityDescTimezone is the schema descriptor for timezone field.
	provideravailabilityDescTimezone := provideravailabilityFields[2].Descriptor()
	// provideravailability.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	provideravailability.TimezoneValidator = provideravailabilityDescTimezone.Validators[0].(func(string) error)
	// provideravailabilityDescUpdatedAt is the schema descriptor for updated_at field.
	provideravailabilityDescUpdatedAt := provideravailabilityFields[4].Descriptor()
	// provideravailability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	provideravailability.DefaultUpdatedAt = provideravailabilityDescUpdatedAt.Default.(func() time.Time)
	// provideravailability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	provideravailability.UpdateDefaultUpdatedAt = provideravailabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userMixinFields0[0].Descriptor()
	// user.DefaultFullName holds the default value on creation for the full_name field.
	user.DefaultFullName = userDescFullName.Default.(string)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userMixinFields0[1].Descriptor()
	// user.DefaultEmail holds the default value on creation for the email field.
	user.DefaultEmail = userDescEmail.Default.(string)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userMixinFields0[2].Descriptor()
	// user.DefaultPhone holds the default value on creation for the phone field.
	user.DefaultPhone = userDescPhone.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
