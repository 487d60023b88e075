package system

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jasimarif/psychology-app/config"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "psychapp", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "config.yaml", "config file path")
	root.AddCommand(NewSystemCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// parseKeys reads the "name: value" lines printed by keygen.
func parseKeys(out string) map[string]string {
	kv := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		k, v, ok := strings.Cut(line, ": ")
		if ok {
			kv[k] = v
		}
	}
	return kv
}

func TestKeygen(t *testing.T) {
	tests := []struct {
		mode string
		want []string
	}{
		{"local", []string{"local_key_hex"}},
		{"public", []string{"secret_key_hex", "public_key_hex"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out, err := run(t, "system", "keygen", "--mode", tt.mode)
			if err != nil {
				t.Fatalf("keygen: %v", err)
			}
			kv := parseKeys(out)
			for _, k := range tt.want {
				if kv[k] == "" {
					t.Errorf("missing %s in output:\n%s", k, out)
				}
			}

			_, err = pasetotoken.LoadKeys(pasetotoken.KeyStrings{
				Mode:         pasetotoken.Mode(kv["mode"]),
				SymmetricHex: kv["local_key_hex"],
				SecretHex:    kv["secret_key_hex"],
				PublicHex:    kv["public_key_hex"],
			})
			if err != nil {
				t.Errorf("printed keys do not load: %v", err)
			}
		})
	}

	if _, err := run(t, "system", "keygen", "--mode", "hybrid"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestToken(t *testing.T) {
	out, err := run(t, "system", "keygen")
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	key := parseKeys(out)["local_key_hex"]

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
database:
  host: localhost
  dbname: psychapp
authentication:
  paseto:
    mode: local
    local_key_hex: "` + key + `"
booking:
  cancellation_window_hours: 24
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	userID := uuid.New()
	out, err = run(t, "--config", path, "system", "token", "--user", userID.String(), "--role", "provider")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	cfg, err := config.ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	mgr, err := pasetotoken.NewPasetoManager(cfg)
	if err != nil {
		t.Fatalf("NewPasetoManager: %v", err)
	}
	claims, err := mgr.Verify(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID || claims.Role != "provider" {
		t.Errorf("claims = %+v, want user %s as provider", claims, userID)
	}

	t.Run("rejects unknown role", func(t *testing.T) {
		if _, err := run(t, "--config", path, "system", "token", "--user", userID.String(), "--role", "root"); err == nil {
			t.Error("unknown role accepted")
		}
	})
	t.Run("rejects bad user id", func(t *testing.T) {
		if _, err := run(t, "--config", path, "system", "token", "--user", "nope"); err == nil {
			t.Error("bad user id accepted")
		}
	})
}
