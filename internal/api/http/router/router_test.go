package router

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
	"github.com/jasimarif/psychology-app/pkg/authorize"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
)

const webhookSecret = "whsec_router"

type testAPI struct {
	app      *fiber.App
	svc      booking.Service
	tokens   *pasetotoken.Manager
	provider uuid.UUID
	client   uuid.UUID
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()

	providerID, clientID := uuid.New(), uuid.New()

	dir := booking.NewMemoryDirectory()
	dir.AddProvider(booking.Provider{ID: providerID, Contact: booking.Contact{Name: "Dr. Reyes"}, SessionPrice: 9000, Currency: "usd"})
	dir.AddUser(booking.User{ID: clientID, Contact: booking.Contact{Name: "Sam", Email: "sam@example.com"}})

	avail := availability.New(availability.NewMemoryStore(), nil, 0)
	if _, err := avail.SetTemplate(ctx, availability.Template{
		ProviderID:             providerID,
		SessionDurationMinutes: 60,
		Timezone:               "America/New_York",
		Schedule: []availability.DaySchedule{{
			DayOfWeek: time.Monday,
			Ranges: []availability.TimeRange{{
				Start:  availability.MustClock("09:00"),
				End:    availability.MustClock("17:00"),
				Active: true,
			}},
		}},
	}); err != nil {
		t.Fatalf("SetTemplate: %v", err)
	}

	// No collaborators are configured, so every integration is unavailable.
	gw := gateway.New(nil, nil, nil, gateway.Timeouts{})
	now := time.Date(2026, time.October, 26, 12, 0, 0, 0, time.UTC)
	svc := booking.New(booking.NewMemoryStore(), dir, avail, gw, booking.Config{
		CancellationWindow: 24 * time.Hour,
		ReminderLead:       time.Hour,
		SideEffectTimeout:  time.Second,
	}, booking.WithClock(func() time.Time { return now }))

	auth, err := authorize.NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	if err := authorize.SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies: %v", err)
	}

	keys, err := pasetotoken.GenerateKeys(pasetotoken.ModeLocal)
	if err != nil {
		t.Fatalf("GenerateKeys: %v", err)
	}
	tokens, err := pasetotoken.New(pasetotoken.Config{Mode: keys.Mode, Issuer: "psychapp", Audience: "psychapp-api", AccessTTL: time.Hour}, keys)
	if err != nil {
		t.Fatalf("paseto: %v", err)
	}

	app := fiber.New()
	NewRouter(Params{
		Cfg:             &config.Config{},
		Auth:            auth,
		PasetoMgr:       tokens,
		BookingSvc:      svc,
		AvailabilitySvc: avail,
		Payments: gateway.NewStripePayments(config.StripeConfig{
			Enabled: true, SecretKey: "sk_test", WebhookSecret: webhookSecret,
		}, nil),
	}).Register(app)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = svc.Drain(ctx)
	})

	return &testAPI{app: app, svc: svc, tokens: tokens, provider: providerID, client: clientID}
}

func (a *testAPI) token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	tok, err := a.tokens.Issue(userID, role, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return tok
}

type apiResponse struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details map[string]any  `json:"details"`
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) (int, apiResponse) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out apiResponse
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp.StatusCode, out
}

func (a *testAPI) book(t *testing.T, date, start, end string) booking.Booking {
	t.Helper()
	status, res := a.do(t, http.MethodPost, "/api/v1/bookings", a.token(t, a.client, "client"), map[string]any{
		"provider_id":      a.provider,
		"appointment_date": date,
		"start_time":       start,
		"end_time":         end,
	})
	if status != http.StatusCreated {
		t.Fatalf("create status = %d, error = %q", status, res.Error)
	}
	var b booking.Booking
	if err := json.Unmarshal(res.Data, &b); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	return b
}

func TestSlots_Public(t *testing.T) {
	api := newTestAPI(t)

	status, res := api.do(t, http.MethodGet, "/api/v1/providers/"+api.provider.String()+"/slots?date=2026-11-02", "", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, error = %q", status, res.Error)
	}
	var body struct {
		Slots []availability.Slot `json:"slots"`
	}
	if err := json.Unmarshal(res.Data, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Slots) != 8 || body.Slots[0].StartTime != availability.MustClock("09:00") {
		t.Errorf("slots = %v", body.Slots)
	}

	if status, _ := api.do(t, http.MethodGet, "/api/v1/providers/"+api.provider.String()+"/slots?date=nope", "", nil); status != http.StatusBadRequest {
		t.Errorf("bad date status = %d", status)
	}
	if status, _ := api.do(t, http.MethodGet, "/api/v1/providers/"+uuid.NewString()+"/slots?date=2026-11-02", "", nil); status != http.StatusNotFound {
		t.Errorf("unknown provider status = %d", status)
	}
}

func TestCreateBooking_ConflictCarriesSlot(t *testing.T) {
	api := newTestAPI(t)

	b := api.book(t, "2026-11-02", "10:00", "11:00")
	if b.Status != booking.StatusPending || b.PaymentStatus != booking.PaymentUnpaid {
		t.Errorf("booking = %+v", b)
	}

	other := uuid.New()
	status, res := api.do(t, http.MethodPost, "/api/v1/bookings", api.token(t, other, "client"), map[string]any{
		"provider_id":      api.provider,
		"appointment_date": "2026-11-02",
		"start_time":       "10:00",
		"end_time":         "11:00",
	})
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
	if res.Details["start_time"] != "10:00" || res.Details["appointment_date"] != "2026-11-02" {
		t.Errorf("details = %v", res.Details)
	}
}

func TestBookingRoutes_AuthAndRoles(t *testing.T) {
	api := newTestAPI(t)
	b := api.book(t, "2026-11-02", "09:00", "10:00")
	bookingPath := "/api/v1/bookings/" + b.ID.String()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"no token", http.MethodGet, "/api/v1/bookings", "", nil, http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/v1/bookings", "v4.local.nope", nil, http.StatusUnauthorized},
		{"provider cannot book", http.MethodPost, "/api/v1/bookings", api.token(t, api.provider, "provider"), map[string]any{}, http.StatusForbidden},
		{"client cannot complete", http.MethodPatch, bookingPath + "/complete", api.token(t, api.client, "client"), nil, http.StatusForbidden},
		{"unknown role", http.MethodGet, "/api/v1/bookings", api.token(t, api.client, "guest"), nil, http.StatusForbidden},
		{"stranger cannot read", http.MethodGet, bookingPath, api.token(t, uuid.New(), "client"), nil, http.StatusForbidden},
		{"owner reads", http.MethodGet, bookingPath, api.token(t, api.client, "client"), nil, http.StatusOK},
		{"provider reads", http.MethodGet, bookingPath, api.token(t, api.provider, "provider"), nil, http.StatusOK},
		{"bad id", http.MethodGet, "/api/v1/bookings/xyz", api.token(t, api.client, "client"), nil, http.StatusBadRequest},
		{"missing booking", http.MethodGet, "/api/v1/bookings/" + uuid.NewString(), api.token(t, api.client, "client"), nil, http.StatusNotFound},
		{"complete before start", http.MethodPatch, bookingPath + "/complete", api.token(t, api.provider, "provider"), nil, http.StatusConflict},
		{"checkout without payments", http.MethodPost, bookingPath + "/checkout", api.token(t, api.client, "client"), nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, res := api.do(t, tt.method, tt.path, tt.token, tt.body)
			if status != tt.want {
				t.Errorf("status = %d, want %d (error %q)", status, tt.want, res.Error)
			}
		})
	}
}

func TestCancel_WindowExpired(t *testing.T) {
	api := newTestAPI(t)

	// 10:00 New York on the fixture day is two hours after "now".
	b := api.book(t, "2026-10-26", "10:00", "11:00")
	path := "/api/v1/bookings/" + b.ID.String() + "/cancel"

	status, res := api.do(t, http.MethodPatch, path, api.token(t, api.client, "client"), map[string]string{"reason": "sick"})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (error %q)", status, res.Error)
	}
	if res.Details["cutoff"] != "2026-10-25T10:00:00-04:00" {
		t.Errorf("cutoff = %v", res.Details["cutoff"])
	}

	status, res = api.do(t, http.MethodPatch, path, api.token(t, api.provider, "provider"), nil)
	if status != http.StatusOK {
		t.Fatalf("provider cancel status = %d (error %q)", status, res.Error)
	}
	var cancelled booking.Booking
	_ = json.Unmarshal(res.Data, &cancelled)
	if cancelled.Status != booking.StatusCancelled || cancelled.CancelledByRole != booking.RoleProvider {
		t.Errorf("booking = %+v", cancelled)
	}
}

func TestReschedule(t *testing.T) {
	api := newTestAPI(t)
	b := api.book(t, "2026-11-02", "09:00", "10:00")
	api.book(t, "2026-11-02", "11:00", "12:00")
	path := "/api/v1/bookings/" + b.ID.String() + "/reschedule"
	tok := api.token(t, api.client, "client")

	status, res := api.do(t, http.MethodPatch, path, tok, map[string]string{
		"appointment_date": "2026-11-02", "start_time": "11:00", "end_time": "12:00",
	})
	if status != http.StatusConflict {
		t.Errorf("collision status = %d, want 409", status)
	}

	status, res = api.do(t, http.MethodPatch, path, tok, map[string]string{
		"appointment_date": "2026-11-02", "start_time": "09:30", "end_time": "10:30",
	})
	if status != http.StatusBadRequest {
		t.Errorf("off-grid status = %d, want 400 (error %q)", status, res.Error)
	}

	status, res = api.do(t, http.MethodPatch, path, tok, map[string]string{
		"appointment_date": "2026-11-02", "start_time": "14:00", "end_time": "15:00",
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d (error %q)", status, res.Error)
	}
	var moved booking.Booking
	_ = json.Unmarshal(res.Data, &moved)
	if moved.ID != b.ID || moved.StartTime != availability.MustClock("14:00") {
		t.Errorf("moved = %+v", moved)
	}
}

func TestListBookings_ClientSeesOwn(t *testing.T) {
	api := newTestAPI(t)
	api.book(t, "2026-11-02", "09:00", "10:00")
	api.book(t, "2026-11-02", "10:00", "11:00")

	status, res := api.do(t, http.MethodGet, "/api/v1/bookings?status=pending", api.token(t, api.client, "client"), nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d (error %q)", status, res.Error)
	}
	var list []booking.Booking
	_ = json.Unmarshal(res.Data, &list)
	if len(list) != 2 {
		t.Errorf("len = %d, want 2", len(list))
	}

	status, res = api.do(t, http.MethodGet, "/api/v1/bookings", api.token(t, uuid.New(), "client"), nil)
	_ = json.Unmarshal(res.Data, &list)
	if status != http.StatusOK || len(list) != 0 {
		t.Errorf("stranger: status = %d, len = %d", status, len(list))
	}

	if status, _ := api.do(t, http.MethodGet, "/api/v1/bookings?status=bogus", api.token(t, api.client, "client"), nil); status != http.StatusBadRequest {
		t.Errorf("bad status filter = %d", status)
	}
}

func TestAvailabilityPut(t *testing.T) {
	api := newTestAPI(t)
	path := "/api/v1/providers/" + api.provider.String() + "/availability"

	tmpl := map[string]any{
		"session_duration_minutes": 50,
		"timezone":                 "Europe/Berlin",
		"schedule": []map[string]any{{
			"day_of_week": 2,
			"ranges":      []map[string]any{{"start": "08:00", "end": "12:00", "active": true}},
		}},
	}

	if status, _ := api.do(t, http.MethodPut, path, api.token(t, uuid.New(), "provider"), tmpl); status != http.StatusForbidden {
		t.Errorf("other provider status = %d, want 403", status)
	}
	if status, _ := api.do(t, http.MethodPut, path, api.token(t, api.client, "client"), tmpl); status != http.StatusForbidden {
		t.Errorf("client status = %d, want 403", status)
	}

	status, res := api.do(t, http.MethodPut, path, api.token(t, api.provider, "provider"), tmpl)
	if status != http.StatusOK {
		t.Fatalf("status = %d (error %q)", status, res.Error)
	}

	bad := map[string]any{"session_duration_minutes": 0, "timezone": "UTC"}
	if status, _ := api.do(t, http.MethodPut, path, api.token(t, api.provider, "provider"), bad); status != http.StatusBadRequest {
		t.Errorf("invalid template status = %d, want 400", status)
	}

	status, res = api.do(t, http.MethodGet, path, "", nil)
	if status != http.StatusOK {
		t.Fatalf("get status = %d", status)
	}
	var got availability.Template
	_ = json.Unmarshal(res.Data, &got)
	if got.SessionDurationMinutes != 50 || got.Timezone != "Europe/Berlin" {
		t.Errorf("template = %+v", got)
	}
}

func signedWebhook(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil))))
	return req
}

func TestStripeWebhook_ConfirmsBooking(t *testing.T) {
	api := newTestAPI(t)
	b := api.book(t, "2026-11-02", "09:00", "10:00")

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"api_version": "2020-08-27",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_1",
			"object": "checkout.session",
			"client_reference_id": %q,
			"payment_status": "paid",
			"payment_intent": "pi_123"
		}}
	}`, b.ID))

	resp, err := api.app.Test(signedWebhook(t, payload))
	if err != nil {
		t.Fatalf("webhook: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	got, err := api.svc.GetBooking(context.Background(), booking.Actor{ID: api.client, Role: booking.RoleClient}, b.ID)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if got.Status != booking.StatusConfirmed || got.PaymentStatus != booking.PaymentPaid || got.PaymentReference != "pi_123" {
		t.Errorf("booking = %+v", got)
	}

	// Redelivery is acknowledged without a second transition.
	resp, err = api.app.Test(signedWebhook(t, payload))
	if err != nil {
		t.Fatalf("redelivery: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("redelivery status = %d", resp.StatusCode)
	}

	req := signedWebhook(t, payload)
	req.Header.Set("Stripe-Signature", "t=1,v1=00")
	resp, err = api.app.Test(req)
	if err != nil {
		t.Fatalf("forged: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("forged status = %d, want 400", resp.StatusCode)
	}
}

func TestStripeWebhook_CancelledBookingIsAcknowledged(t *testing.T) {
	api := newTestAPI(t)
	b := api.book(t, "2026-11-02", "11:00", "12:00")

	actor := booking.Actor{ID: api.client, Role: booking.RoleClient}
	if _, err := api.svc.CancelBooking(context.Background(), actor, b.ID, "changed my mind"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_late",
		"object": "event",
		"api_version": "2020-08-27",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_late",
			"object": "checkout.session",
			"client_reference_id": %q,
			"payment_status": "paid",
			"payment_intent": "pi_late"
		}}
	}`, b.ID))

	resp, err := api.app.Test(signedWebhook(t, payload))
	if err != nil {
		t.Fatalf("webhook: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 so the provider stops retrying", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Received       bool `json:"received"`
			RefundRequired bool `json:"refund_required"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Data.Received || !body.Data.RefundRequired {
		t.Errorf("body = %+v, want received with refund_required", body.Data)
	}

	got, err := api.svc.GetBooking(context.Background(), actor, b.ID)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if got.Status != booking.StatusCancelled || got.PaymentStatus == booking.PaymentPaid {
		t.Errorf("booking = %s/%s, want cancelled and not marked paid", got.Status, got.PaymentStatus)
	}
}
