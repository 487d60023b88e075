package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/jasimarif/psychology-app/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	client, err := NewFromConfig(config.SMSConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	_, err := NewFromConfig(config.SMSConfig{Enabled: true})
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewFromConfig_EnabledWithAPIKey(t *testing.T) {
	client, err := NewFromConfig(config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:    "test-api-key",
			SecretKey: "test-secret-key",
		},
	})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if !client.IsEnabled() {
		t.Error("Expected client to be enabled")
	}
}

func TestNormalize(t *testing.T) {
	client := &Client{region: "US"}

	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{name: "national US", phone: "(201) 555-0123", want: "+12015550123"},
		{name: "already E.164", phone: "+442071838750", want: "+442071838750"},
		{name: "garbage", phone: "not a phone", wantErr: true},
		{name: "too short", phone: "12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.Normalize(tt.phone)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Errorf("err = %v, want ErrInvalidPhone", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestSendTemplate_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}
	if err := client.SendTemplate(context.Background(), "+12015550123", "tpl", nil); err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSendTemplate_Validation(t *testing.T) {
	client := &Client{enabled: true, region: "US"}

	tests := []struct {
		name       string
		phone      string
		templateID string
	}{
		{name: "empty phone number", phone: "", templateID: "tpl"},
		{name: "empty template ID", phone: "+12015550123", templateID: ""},
		{name: "invalid phone", phone: "abc", templateID: "tpl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.SendTemplate(context.Background(), tt.phone, tt.templateID, nil); err == nil {
				t.Error("Expected error but got nil")
			}
		})
	}
}
