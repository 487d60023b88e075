package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleConfig = `
database:
  host: db.internal
  dbname: psychapp
  user: psychapp
authentication:
  paseto:
    mode: local
    local_key_hex: "707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f"
booking:
  cancellation_window_hours: 48
zoom:
  enabled: false
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("database.host = %q", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("database.port default = %d, want 5432", cfg.Database.Port)
	}
	if got := cfg.Booking.CancellationWindow(); got != 48*time.Hour {
		t.Errorf("cancellation window = %v, want 48h", got)
	}
	if cfg.Booking.DefaultCurrency != "usd" {
		t.Errorf("default currency = %q", cfg.Booking.DefaultCurrency)
	}
	if cfg.Zoom.UserID != "me" {
		t.Errorf("zoom.user_id default = %q", cfg.Zoom.UserID)
	}
}

func TestReadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PSYCHAPP_DATABASE_HOST", "override.internal")
	t.Setenv("PSYCHAPP_BOOKING_CANCELLATION_WINDOW_HOURS", "12")

	cfg, err := ReadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Database.Host != "override.internal" {
		t.Errorf("database.host = %q, want env override", cfg.Database.Host)
	}
	if cfg.Booking.CancellationWindowHours != 12 {
		t.Errorf("cancellation window hours = %d, want 12", cfg.Booking.CancellationWindowHours)
	}
}

func TestReadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing database host",
			body:    "database:\n  dbname: x\nauthentication:\n  paseto:\n    local_key_hex: ab\n",
			wantErr: "database.host",
		},
		{
			name:    "stripe enabled without secrets",
			body:    sampleConfig + "stripe:\n  enabled: true\n",
			wantErr: "stripe.secret_key",
		},
		{
			name:    "non-positive window",
			body:    strings.Replace(sampleConfig, "cancellation_window_hours: 48", "cancellation_window_hours: 0", 1),
			wantErr: "cancellation_window_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file without env configuration")
	}
}
