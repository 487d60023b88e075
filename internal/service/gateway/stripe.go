package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/jasimarif/psychology-app/config"
)

const (
	stripeCheckoutCompleted     = "checkout.session.completed"
	stripeAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"

	stripeSessionPrefix = "cs_"
)

// StripePayments is the PaymentProvider backed by Stripe Checkout.
type StripePayments struct {
	api           *client.API
	enabled       bool
	webhookSecret string
	successURL    string
	cancelURL     string
	productName   string
}

// NewStripePayments builds the Stripe adapter. backends may be nil to use
// Stripe's production endpoints.
func NewStripePayments(cfg config.StripeConfig, backends *stripe.Backends) *StripePayments {
	product := cfg.ProductName
	if product == "" {
		product = "Therapy session"
	}
	return &StripePayments{
		api:           client.New(cfg.SecretKey, backends),
		enabled:       cfg.Enabled && cfg.SecretKey != "",
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		productName:   product,
	}
}

func (s *StripePayments) IsAvailable() bool { return s.enabled }

func (s *StripePayments) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	name := s.productName
	if req.Description != "" {
		name = req.Description
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(req.BookingID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"booking_id": req.BookingID.String()},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID.String())
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}
	return &Checkout{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}

func (s *StripePayments) Refund(ctx context.Context, req RefundRequest) (string, error) {
	if req.PaymentReference == "" {
		return "", fmt.Errorf("stripe refund: booking %s has no payment reference", req.BookingID)
	}

	intent, err := s.paymentIntent(ctx, req.PaymentReference)
	if err != nil {
		return "", fmt.Errorf("stripe refund: booking %s: %w", req.BookingID, err)
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intent),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String("refund-" + req.BookingID.String())
	params.AddMetadata("booking_id", req.BookingID.String())

	r, err := s.api.Refunds.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe refund: %w", err)
	}
	return r.ID, nil
}

// paymentIntent resolves a stored payment reference to the payment intent a
// refund is issued against. Webhooks that arrive before Stripe attaches the
// intent leave a checkout session ID behind; it is looked up here.
func (s *StripePayments) paymentIntent(ctx context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, stripeSessionPrefix) {
		return ref, nil
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := s.api.CheckoutSessions.Get(ref, params)
	if err != nil {
		return "", fmt.Errorf("look up checkout session %s: %w", ref, err)
	}
	if sess.PaymentIntent == nil || sess.PaymentIntent.ID == "" {
		return "", fmt.Errorf("checkout session %s has no payment intent", ref)
	}
	return sess.PaymentIntent.ID, nil
}

// ParseWebhook verifies a Stripe webhook and extracts a completed payment.
// Events other than a paid checkout session return ErrIgnoredEvent.
func (s *StripePayments) ParseWebhook(payload []byte, signature string) (*PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	switch string(event.Type) {
	case stripeCheckoutCompleted, stripeAsyncPaymentSucceeded:
	default:
		return nil, fmt.Errorf("%w: %s", ErrIgnoredEvent, event.Type)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, fmt.Errorf("%w: session %s payment status %s", ErrIgnoredEvent, sess.ID, sess.PaymentStatus)
	}

	bookingID, err := uuid.Parse(sess.ClientReferenceID)
	if err != nil {
		return nil, fmt.Errorf("%w: session %s has no booking reference", ErrIgnoredEvent, sess.ID)
	}

	// Prefer the intent; Refund resolves a bare session ID later.
	ref := sess.ID
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		ref = sess.PaymentIntent.ID
	}

	return &PaymentEvent{EventID: event.ID, BookingID: bookingID, PaymentReference: ref}, nil
}
