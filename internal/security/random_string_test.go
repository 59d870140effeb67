package security

import (
	"strings"
	"testing"
	"unicode"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	const alphabet = "abc123"
	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}
}

func TestRandomStringRejectsBadInput(t *testing.T) {
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("expected empty result for zero length, got %q / %v", value, err)
	}
}

func TestTemporaryPasswordCoversCharacterClasses(t *testing.T) {
	password, err := TemporaryPassword()
	if err != nil {
		t.Fatalf("temporary password: %v", err)
	}
	if len(password) < 8 {
		t.Fatalf("expected at least 8 characters, got %d", len(password))
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		t.Fatalf("password %q missing a character class", password)
	}
}
