package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

const MinPasswordLength = 8

// ValidatePasswordStrength requires MinPasswordLength runes with at least
// one upper-case letter, one lower-case letter, and one digit.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrWeakPassword
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

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
