package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"

	"github.com/jasimarif/psychology-app/config"
)

const testWebhookSecret = "whsec_test"

func signStripe(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func checkoutEvent(eventType, bookingRef, paymentStatus string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"api_version": "2020-08-27",
		"type": %q,
		"data": {"object": {
			"id": "cs_test_1",
			"object": "checkout.session",
			"client_reference_id": %q,
			"payment_status": %q,
			"payment_intent": "pi_123"
		}}
	}`, eventType, bookingRef, paymentStatus))
}

func TestParseWebhook(t *testing.T) {
	s := NewStripePayments(config.StripeConfig{Enabled: true, SecretKey: "sk_test", WebhookSecret: testWebhookSecret}, nil)
	bookingID := uuid.New()

	t.Run("paid checkout", func(t *testing.T) {
		payload := checkoutEvent("checkout.session.completed", bookingID.String(), "paid")
		ev, err := s.ParseWebhook(payload, signStripe(payload, testWebhookSecret, time.Now()))
		if err != nil {
			t.Fatalf("ParseWebhook: %v", err)
		}
		if ev.BookingID != bookingID || ev.PaymentReference != "pi_123" || ev.EventID != "evt_1" {
			t.Errorf("event = %+v", ev)
		}
	})

	tests := []struct {
		name    string
		payload []byte
		sig     func([]byte) string
		want    error
	}{
		{
			name:    "bad signature",
			payload: checkoutEvent("checkout.session.completed", bookingID.String(), "paid"),
			sig:     func(p []byte) string { return signStripe(p, "whsec_other", time.Now()) },
			want:    ErrInvalidSignature,
		},
		{
			name:    "stale timestamp",
			payload: checkoutEvent("checkout.session.completed", bookingID.String(), "paid"),
			sig:     func(p []byte) string { return signStripe(p, testWebhookSecret, time.Now().Add(-time.Hour)) },
			want:    ErrInvalidSignature,
		},
		{
			name:    "other event type",
			payload: checkoutEvent("customer.created", bookingID.String(), "paid"),
			want:    ErrIgnoredEvent,
		},
		{
			name:    "unpaid session",
			payload: checkoutEvent("checkout.session.completed", bookingID.String(), "unpaid"),
			want:    ErrIgnoredEvent,
		},
		{
			name:    "missing booking reference",
			payload: checkoutEvent("checkout.session.completed", "", "paid"),
			want:    ErrIgnoredEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := signStripe(tt.payload, testWebhookSecret, time.Now())
			if tt.sig != nil {
				sig = tt.sig(tt.payload)
			}
			if _, err := s.ParseWebhook(tt.payload, sig); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStripeCheckoutAndRefund(t *testing.T) {
	bookingID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/checkout/sessions":
			if got := r.PostForm.Get("client_reference_id"); got != bookingID.String() {
				t.Errorf("client_reference_id = %q", got)
			}
			if got := r.PostForm.Get("line_items[0][price_data][unit_amount]"); got != "12000" {
				t.Errorf("unit_amount = %q", got)
			}
			if got := r.PostForm.Get("line_items[0][price_data][currency]"); got != "usd" {
				t.Errorf("currency = %q", got)
			}
			fmt.Fprint(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`)
		case "/v1/refunds":
			if got := r.PostForm.Get("payment_intent"); got != "pi_123" {
				t.Errorf("payment_intent = %q", got)
			}
			if got := r.Header.Get("Idempotency-Key"); got != "refund-"+bookingID.String() {
				t.Errorf("Idempotency-Key = %q", got)
			}
			fmt.Fprint(w, `{"id":"re_1","object":"refund","status":"succeeded"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	s := NewStripePayments(config.StripeConfig{Enabled: true, SecretKey: "sk_test"},
		&stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	co, err := s.CreateCheckout(context.Background(), CheckoutRequest{BookingID: bookingID, Amount: 12000, Currency: "USD"})
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if co.SessionID != "cs_test_1" || co.RedirectURL == "" {
		t.Errorf("checkout = %+v", co)
	}

	refundID, err := s.Refund(context.Background(), RefundRequest{BookingID: bookingID, PaymentReference: "pi_123"})
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if refundID != "re_1" {
		t.Errorf("refund id = %q", refundID)
	}
}

func TestParseWebhook_SessionWithoutIntent(t *testing.T) {
	s := NewStripePayments(config.StripeConfig{Enabled: true, SecretKey: "sk_test", WebhookSecret: testWebhookSecret}, nil)
	bookingID := uuid.New()

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_2",
		"object": "event",
		"api_version": "2020-08-27",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_2",
			"object": "checkout.session",
			"client_reference_id": %q,
			"payment_status": "paid"
		}}
	}`, bookingID))

	ev, err := s.ParseWebhook(payload, signStripe(payload, testWebhookSecret, time.Now()))
	if err != nil {
		t.Fatalf("ParseWebhook: %v", err)
	}
	if ev.PaymentReference != "cs_test_2" {
		t.Errorf("payment reference = %q, want the session id", ev.PaymentReference)
	}
}

func TestStripeRefund_ResolvesSessionReference(t *testing.T) {
	bookingID := uuid.New()
	var refunded []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/checkout/sessions/cs_paid":
			fmt.Fprint(w, `{"id":"cs_paid","object":"checkout.session","payment_intent":"pi_456"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/checkout/sessions/cs_open":
			fmt.Fprint(w, `{"id":"cs_open","object":"checkout.session","payment_intent":null}`)
		case r.Method == http.MethodPost && r.URL.Path == "/v1/refunds":
			refunded = append(refunded, r.PostForm.Get("payment_intent"))
			fmt.Fprint(w, `{"id":"re_2","object":"refund","status":"succeeded"}`)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	s := NewStripePayments(config.StripeConfig{Enabled: true, SecretKey: "sk_test"},
		&stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	tests := []struct {
		name    string
		ref     string
		wantErr bool
		want    []string
	}{
		{name: "intent used as is", ref: "pi_direct", want: []string{"pi_direct"}},
		{name: "session resolved to intent", ref: "cs_paid", want: []string{"pi_456"}},
		{name: "session without intent", ref: "cs_open", wantErr: true},
		{name: "no reference", ref: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refunded = nil
			id, err := s.Refund(context.Background(), RefundRequest{BookingID: bookingID, PaymentReference: tt.ref})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Refund(%q) succeeded with %q", tt.ref, id)
				}
				if len(refunded) != 0 {
					t.Errorf("refund issued for %v", refunded)
				}
				return
			}
			if err != nil {
				t.Fatalf("Refund: %v", err)
			}
			if fmt.Sprint(refunded) != fmt.Sprint(tt.want) {
				t.Errorf("refunded intents = %v, want %v", refunded, tt.want)
			}
		})
	}
}
