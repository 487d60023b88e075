package pasetotoken

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newManager(t *testing.T, keys Keys, ttl time.Duration) *Manager {
	t.Helper()
	m, err := New(Config{Mode: keys.Mode, Issuer: "psychapp", Audience: "psychapp-api", AccessTTL: ttl}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func genKeys(t *testing.T, mode Mode) Keys {
	t.Helper()
	keys, err := GenerateKeys(mode)
	if err != nil {
		t.Fatalf("GenerateKeys(%s): %v", mode, err)
	}
	return keys
}

func TestIssueVerify(t *testing.T) {
	for _, mode := range []Mode{ModeLocal, ModePublic} {
		t.Run(string(mode), func(t *testing.T) {
			m := newManager(t, genKeys(t, mode), time.Minute)
			userID := uuid.New()
			sid := uuid.New()

			tok, err := m.Issue(userID, "provider", &sid)
			if err != nil {
				t.Fatalf("Issue: %v", err)
			}

			claims, err := m.Verify(tok)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if claims.UserID != userID || claims.Role != "provider" {
				t.Errorf("claims = %+v", claims)
			}
			if claims.SessionID == nil || *claims.SessionID != sid {
				t.Errorf("session id = %v, want %s", claims.SessionID, sid)
			}
		})
	}
}

func TestVerify_Rejects(t *testing.T) {
	m := newManager(t, genKeys(t, ModeLocal), time.Minute)
	other := newManager(t, genKeys(t, ModeLocal), time.Minute)

	tok, err := other.Issue(uuid.New(), "client", nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var invalid ErrInvalidToken
	if _, err := m.Verify(tok); !errors.As(err, &invalid) {
		t.Errorf("foreign key: err = %v, want ErrInvalidToken", err)
	}
	if _, err := m.Verify("v4.local.garbage"); !errors.As(err, &invalid) {
		t.Errorf("garbage: err = %v, want ErrInvalidToken", err)
	}
}

func TestNew_ModeMismatch(t *testing.T) {
	_, err := New(Config{Mode: ModePublic, Issuer: "a", Audience: "b"}, genKeys(t, ModeLocal))
	var cfgErr ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestLoadKeys_RoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeLocal, ModePublic} {
		t.Run(string(mode), func(t *testing.T) {
			keys := genKeys(t, mode)
			loaded, err := LoadKeys(keys.Strings())
			if err != nil {
				t.Fatalf("LoadKeys: %v", err)
			}
			if loaded.Strings() != keys.Strings() {
				t.Errorf("round trip changed keys: %+v != %+v", loaded.Strings(), keys.Strings())
			}
		})
	}
}

func TestLoadKeys_VerifyOnly(t *testing.T) {
	signer := genKeys(t, ModePublic)
	verifyOnly, err := LoadKeys(KeyStrings{Mode: ModePublic, PublicHex: signer.Strings().PublicHex})
	if err != nil {
		t.Fatalf("LoadKeys: %v", err)
	}
	if verifyOnly.Secret != nil {
		t.Fatal("verify-only keys carry a secret")
	}

	tok, err := newManager(t, signer, time.Minute).Issue(uuid.New(), "client", nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	verifier := newManager(t, verifyOnly, time.Minute)
	if _, err := verifier.Verify(tok); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if _, err := verifier.Issue(uuid.New(), "client", nil); err == nil {
		t.Error("verify-only manager issued a token")
	}
}

func TestLoadKeys_Rejects(t *testing.T) {
	a := genKeys(t, ModePublic).Strings()
	b := genKeys(t, ModePublic).Strings()

	tests := []struct {
		name string
		in   KeyStrings
	}{
		{"unknown mode", KeyStrings{Mode: "hybrid"}},
		{"local without key", KeyStrings{Mode: ModeLocal}},
		{"local bad hex", KeyStrings{Mode: ModeLocal, SymmetricHex: "zz"}},
		{"public without keys", KeyStrings{Mode: ModePublic}},
		{"public bad secret", KeyStrings{Mode: ModePublic, SecretHex: "zz"}},
		{"mismatched pair", KeyStrings{Mode: ModePublic, SecretHex: a.SecretHex, PublicHex: b.PublicHex}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfgErr ErrConfig
			if _, err := LoadKeys(tt.in); !errors.As(err, &cfgErr) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}
}
