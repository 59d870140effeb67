package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghjkmnpqrstuvwxyz"
	digitAlphabet = "23456789"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// TemporaryPassword generates an initial credential for accounts created by
// HR or the first-run bootstrap. The segment layout guarantees at least one
// upper-case letter, one lower-case letter, and one digit, so the result
// always passes the password policy. Ambiguous glyphs are excluded.
func TemporaryPassword() (string, error) {
	upper, err := RandomString(4, upperAlphabet)
	if err != nil {
		return "", err
	}
	lower, err := RandomString(5, lowerAlphabet)
	if err != nil {
		return "", err
	}
	digits, err := RandomString(3, digitAlphabet)
	if err != nil {
		return "", err
	}
	return upper + lower + digits, nil
}
