/*
Package randx provides functions for generating random identifiers for anonymous sessions.

It is primarily used to mint opaque session tokens and the generated display names
(with their avatar initials) assigned to anonymous users.
*/
package randx

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// SessionTokenPrefix is the fixed prefix of every issued session token.
	SessionTokenPrefix = "sess_"

	// SessionTokenRawLength is the number of hex characters following the prefix.
	SessionTokenRawLength = 12

	// DisplayNamePrefix is the fixed prefix of every generated display name.
	DisplayNamePrefix = "Anonymous#"

	// DisplayNameDigits is the number of decimal digits following the prefix.
	DisplayNameDigits = 4
)

// SessionToken mints a new opaque session token of the form "sess_<12 hex chars>".
// The hex characters are the leading characters of a random UUID.
func SessionToken() string {
	hexStr := strings.ReplaceAll(uuid.New().String(), "-", "")
	return SessionTokenPrefix + hexStr[:SessionTokenRawLength]
}

// DisplayName generates an anonymous display name of the form "Anonymous#<4 digits>".
// The digits are the leading decimal digits of a random 128-bit integer.
func DisplayName() string {
	u := uuid.New()
	digits := new(big.Int).SetBytes(u[:]).String()

	// A random 128-bit value virtually always has well over four decimal digits;
	// pad the degenerate case anyway.
	for len(digits) < DisplayNameDigits {
		digits = "0" + digits
	}

	return DisplayNamePrefix + digits[:DisplayNameDigits]
}

// AvatarLetter returns the avatar initial for a display name: its first character.
func AvatarLetter(displayName string) string {
	if displayName == "" {
		return ""
	}
	return string([]rune(displayName)[0])
}
