package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/pkg/authorize"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
)

func TestRequirePermission(t *testing.T) {
	keys, err := pasetotoken.GenerateKeys(pasetotoken.ModeLocal)
	if err != nil {
		t.Fatalf("GenerateKeys: %v", err)
	}
	mgr, err := pasetotoken.New(pasetotoken.Config{Mode: keys.Mode, Issuer: "psychapp", Audience: "psychapp-api", AccessTTL: time.Minute}, keys)
	if err != nil {
		t.Fatalf("paseto: %v", err)
	}
	auth, err := authorize.NewAuthorization()
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	if err := authorize.SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatalf("SeedDefaultPolicies: %v", err)
	}

	ok := func(c fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) }

	app := fiber.New()
	app.Post("/complete", AuthRequired(mgr, nil), RequirePermission(auth, authorize.ResourceBooking, authorize.ActionComplete), ok)
	// Without AuthRequired no claims reach the request context.
	app.Post("/bare", RequirePermission(auth, authorize.ResourceBooking, authorize.ActionComplete), ok)

	token := func(role string) string {
		tok, err := mgr.Issue(uuid.New(), role, nil)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		return tok
	}

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"provider allowed", "/complete", token("provider"), http.StatusNoContent},
		{"admin wildcard", "/complete", token("admin"), http.StatusNoContent},
		{"client denied", "/complete", token("client"), http.StatusForbidden},
		{"unknown role", "/complete", token("intern"), http.StatusForbidden},
		{"no token", "/complete", "", http.StatusUnauthorized},
		{"no claims on context", "/bare", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
