package system

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jasimarif/psychology-app/pkg/authorize"
	pasetotoken "github.com/jasimarif/psychology-app/pkg/paseto"
)

func NewKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate PASETO key material",
		Long: `Print a fresh key set as the authentication.paseto config keys.

local mode prints a symmetric key shared with the account service.
public mode prints a signing pair; deploy only the public key here.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cmd.Flags().GetString("mode")
			if err != nil {
				return fmt.Errorf("failed to read mode flag: %w", err)
			}

			keys, err := pasetotoken.GenerateKeys(pasetotoken.Mode(mode))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := keys.Strings()
			fmt.Fprintf(out, "mode: %s\n", s.Mode)
			if s.SymmetricHex != "" {
				fmt.Fprintf(out, "local_key_hex: %s\n", s.SymmetricHex)
			}
			if s.SecretHex != "" {
				fmt.Fprintf(out, "secret_key_hex: %s\n", s.SecretHex)
			}
			if s.PublicHex != "" {
				fmt.Fprintf(out, "public_key_hex: %s\n", s.PublicHex)
			}
			return nil
		},
	}

	cmd.Flags().String("mode", string(pasetotoken.ModeLocal), "key mode (local|public)")
	return cmd
}

func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local testing",
		Long: `Mint an access token with the configured keys. Tokens normally come
from the account service; this is for exercising the API by hand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			userStr, _ := flags.GetString("user")
			role, _ := flags.GetString("role")
			ttl, _ := flags.GetDuration("ttl")

			userID, err := uuid.Parse(userStr)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			if _, ok := authorize.KnownRoles[authorize.Role(role)]; !ok {
				return fmt.Errorf("unknown role %q", role)
			}

			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			if ttl > 0 {
				cfg.Authentication.Paseto.AccessTTLMinutes = int(ttl / time.Minute)
			}

			mgr, err := pasetotoken.NewPasetoManager(cfg)
			if err != nil {
				return err
			}
			tok, err := mgr.Issue(userID, role, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().String("user", "", "user id (uuid) for the token subject")
	cmd.Flags().String("role", string(authorize.RoleClient), "role claim (client|provider|admin)")
	cmd.Flags().Duration("ttl", 0, "token lifetime, rounded down to minutes (default from config)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
