package sms

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/arsmn/go-smsir/smsir"
	"github.com/nyaruka/phonenumbers"

	"github.com/jasimarif/psychology-app/config"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client  *smsir.Client
	enabled bool
	region  string
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	region := cfg.DefaultRegion
	if region == "" {
		region = "US"
	}

	if !cfg.Enabled {
		return &Client{enabled: false, region: region}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:  client,
		enabled: true,
		region:  region,
	}, nil
}

// Normalize parses phone in the client's default region and returns it in
// E.164 form.
func (c *Client) Normalize(phone string) (string, error) {
	num, err := phonenumbers.Parse(phone, c.region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// SendTemplate sends an sms.ir template message. Parameter keys must match
// the template's placeholders. If SMS is disabled, this is a no-op.
func (c *Client) SendTemplate(ctx context.Context, phoneNumber, templateID string, params map[string]string) error {
	if !c.enabled {
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}

	mobile, err := c.Normalize(phoneNumber)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parameters := make([]smsir.UltraFastParameter, 0, len(keys))
	for _, k := range keys {
		parameters = append(parameters, smsir.UltraFastParameter{Key: k, Value: params[k]})
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     mobile,
		TemplateID: templateID,
		Parameters: parameters,
	}

	if _, err := c.client.Verification.UltraFastSend(ctx, req); err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
