package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/jasimarif/psychology-app/internal/service/booking"
)

type fakeConfirmer struct {
	got booking.PaymentCompleted
	err error
}

func (f *fakeConfirmer) ConfirmBooking(_ context.Context, ev booking.PaymentCompleted) (*booking.Booking, error) {
	f.got = ev
	if f.err != nil {
		return nil, f.err
	}
	return &booking.Booking{ID: ev.BookingID, Status: booking.StatusConfirmed}, nil
}

func TestDecodePaymentCompleted(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		subject string
		data    string
		want    booking.PaymentCompleted
		wantErr bool
	}{
		{
			name:    "body",
			subject: "psychapp.payment.completed.x",
			data:    `{"booking_id":"` + id.String() + `","payment_ref":"pi_1"}`,
			want:    booking.PaymentCompleted{BookingID: id, PaymentRef: "pi_1"},
		},
		{
			name:    "subject fallback",
			subject: "psychapp.payment.completed." + id.String(),
			data:    `{"payment_ref":"pi_2"}`,
			want:    booking.PaymentCompleted{BookingID: id, PaymentRef: "pi_2"},
		},
		{
			name:    "empty body",
			subject: "psychapp.payment.completed." + id.String(),
			want:    booking.PaymentCompleted{BookingID: id},
		},
		{
			name:    "bad json",
			subject: "psychapp.payment.completed." + id.String(),
			data:    `{`,
			wantErr: true,
		},
		{
			name:    "no id anywhere",
			subject: "psychapp.payment.completed.nope",
			data:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePaymentCompleted(tt.subject, []byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandlePaymentCompleted(t *testing.T) {
	id := uuid.New()
	msg := &nats.Msg{Subject: "psychapp.payment.completed." + id.String()}

	svc := &fakeConfirmer{}
	if err := handlePaymentCompleted(context.Background(), svc, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if svc.got.BookingID != id {
		t.Errorf("confirmed %s, want %s", svc.got.BookingID, id)
	}

	svc = &fakeConfirmer{err: booking.ErrInvalidTransition}
	if err := handlePaymentCompleted(context.Background(), svc, msg); !errors.Is(err, booking.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}
