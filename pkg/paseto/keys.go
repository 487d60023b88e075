package pasetotoken

import (
	"strings"

	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // v4.local, shared symmetric key
	ModePublic Mode = "public" // v4.public, account service signs and we verify
)

// Keys holds the key material for one mode. In public mode a verify-only
// deployment carries Public without Secret.
type Keys struct {
	Mode Mode

	Symmetric *paseto.V4SymmetricKey

	Secret *paseto.V4AsymmetricSecretKey
	Public *paseto.V4AsymmetricPublicKey
}

// KeyStrings is the hex form found in configuration.
type KeyStrings struct {
	Mode Mode

	SymmetricHex string
	SecretHex    string
	PublicHex    string
}

// LoadKeys parses hex key material. Public mode accepts a secret key (the
// public half is derived), a public key alone, or both.
func LoadKeys(in KeyStrings) (Keys, error) {
	switch in.Mode {
	case ModeLocal:
		return loadLocal(strings.TrimSpace(in.SymmetricHex))
	case ModePublic:
		return loadPublic(strings.TrimSpace(in.SecretHex), strings.TrimSpace(in.PublicHex))
	default:
		return Keys{}, ErrConfig{Msg: "unknown mode " + string(in.Mode) + " (use local|public)"}
	}
}

func loadLocal(symHex string) (Keys, error) {
	if symHex == "" {
		return Keys{}, ErrConfig{Msg: "local mode requires a symmetric key"}
	}
	k, err := paseto.V4SymmetricKeyFromHex(symHex)
	if err != nil {
		return Keys{}, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
	}
	return Keys{Mode: ModeLocal, Symmetric: &k}, nil
}

func loadPublic(secHex, pubHex string) (Keys, error) {
	out := Keys{Mode: ModePublic}

	if secHex != "" {
		sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(secHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid secret key hex: " + err.Error()}
		}
		pk := sk.Public()
		out.Secret, out.Public = &sk, &pk
	}
	if pubHex != "" {
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(pubHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key hex: " + err.Error()}
		}
		if out.Public != nil && out.Public.ExportHex() != pk.ExportHex() {
			return Keys{}, ErrConfig{Msg: "public key does not match secret key"}
		}
		out.Public = &pk
	}

	if out.Public == nil {
		return Keys{}, ErrConfig{Msg: "public mode requires a secret or public key"}
	}
	return out, nil
}

// GenerateKeys creates fresh key material for mode.
func GenerateKeys(mode Mode) (Keys, error) {
	switch mode {
	case ModeLocal:
		k := paseto.NewV4SymmetricKey()
		return Keys{Mode: ModeLocal, Symmetric: &k}, nil
	case ModePublic:
		sk := paseto.NewV4AsymmetricSecretKey()
		pk := sk.Public()
		return Keys{Mode: ModePublic, Secret: &sk, Public: &pk}, nil
	default:
		return Keys{}, ErrConfig{Msg: "unknown mode " + string(mode) + " (use local|public)"}
	}
}

// Strings exports k in the form LoadKeys reads back.
func (k Keys) Strings() KeyStrings {
	out := KeyStrings{Mode: k.Mode}
	if k.Symmetric != nil {
		out.SymmetricHex = k.Symmetric.ExportHex()
	}
	if k.Secret != nil {
		out.SecretHex = k.Secret.ExportHex()
	}
	if k.Public != nil {
		out.PublicHex = k.Public.ExportHex()
	}
	return out
}
