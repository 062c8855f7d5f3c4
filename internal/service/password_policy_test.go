package service

import (
	"errors"
	"testing"

	"github.com/flightbase-api/internal/config"
)

func TestValidatePasswordEmptyPolicyAcceptsAnything(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, ""); err != nil {
		t.Fatalf("expected empty policy to accept empty password, got %v", err)
	}
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("expected empty policy to accept short password, got %v", err)
	}
}

func TestValidatePasswordMinLength(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8}

	if err := validatePassword(policy, "1234567"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got %v", err)
	}
	if err := validatePassword(policy, "12345678"); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	// Multi-byte runes count as single characters.
	if err := validatePassword(policy, "pässwört"); err != nil {
		t.Fatalf("expected rune-counted pass, got %v", err)
	}
}

func TestValidatePasswordCharacterClasses(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	cases := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{"all classes", "Abcdef1!", false},
		{"missing upper", "abcdef1!", true},
		{"missing lower", "ABCDEF1!", true},
		{"missing digit", "Abcdefg!", true},
		{"missing special", "Abcdefg1", true},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.wantWeak && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%s: expected weak password, got %v", tc.name, err)
		}
		if !tc.wantWeak && err != nil {
			t.Fatalf("%s: expected pass, got %v", tc.name, err)
		}
	}
}
