package services

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Only gmail.com addresses are accepted. Narrow on purpose: the
// product is distributed alongside Google accounts for families.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@gmail\.com$`)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidEmail reports whether email is an acceptable account address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether pw meets the strength policy: at
// least 8 characters with one uppercase letter, one lowercase letter,
// one digit, and one symbol.
func ValidPassword(pw string) bool {
	if utf8.RuneCountInString(pw) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// DigestPassword returns the hex SHA-256 digest of pw. The digest is
// deterministic and unsalted: login compares stored and computed
// digests for equality.
func DigestPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}
