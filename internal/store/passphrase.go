package store

import (
	"fmt"
	"unicode"

	rserrors "reqsign/internal/errors"
)

// MinPassphraseLength is the shortest passphrase CheckPassphrase accepts.
const MinPassphraseLength = 12

// CheckPassphrase enforces the strength policy for passphrases that seal new
// key material: at least MinPassphraseLength characters with upper, lower,
// digit and symbol classes present. Existing sealed stores open with any
// passphrase; the policy applies when a key is generated.
func CheckPassphrase(passphrase string) error {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if len([]rune(passphrase)) < MinPassphraseLength || !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return fmt.Errorf("%w: need %d characters including upper, lower, digit and symbol",
			rserrors.ErrWeakPassphrase, MinPassphraseLength)
	}
	return nil
}
