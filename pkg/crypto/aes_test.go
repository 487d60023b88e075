package crypto

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestEncryptDecrypt(t *testing.T) {
	key, err := KeyFromHex(testKey)
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}

	ct, err := Encrypt(key, "s3cret-pass")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if strings.Contains(ct, "s3cret") {
		t.Fatal("ciphertext leaks plaintext")
	}

	pt, err := Decrypt(key, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if pt != "s3cret-pass" {
		t.Errorf("Decrypt = %q", pt)
	}

	again, _ := Encrypt(key, "s3cret-pass")
	if again == ct {
		t.Error("nonce reuse: identical ciphertexts")
	}
}

func TestKeyFromHex(t *testing.T) {
	if _, err := KeyFromHex("abcd"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("short key err = %v", err)
	}
	if _, err := KeyFromHex("zz"); err == nil {
		t.Error("expected error for non-hex key")
	}
}

func TestSealer(t *testing.T) {
	plain, err := NewSealer("")
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	if v, _ := plain.Seal("pw"); v != "pw" {
		t.Errorf("pass-through Seal = %q", v)
	}

	s, err := NewSealer(testKey)
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	sealed, err := s.Seal("pw")
	if err != nil || sealed == "pw" {
		t.Fatalf("Seal = %q, %v", sealed, err)
	}
	opened, err := s.Open(sealed)
	if err != nil || opened != "pw" {
		t.Errorf("Open = %q, %v", opened, err)
	}
	if v, _ := s.Seal(""); v != "" {
		t.Errorf("Seal(\"\") = %q", v)
	}
}
