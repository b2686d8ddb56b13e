package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const (
	sessionTokenBytes = 32
	base36Alphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// SessionTokenLength is the encoded length of a token from NewSessionToken.
var SessionTokenLength = base64.RawURLEncoding.EncodedLen(sessionTokenBytes)

// NewSessionToken returns 32 random bytes encoded as unpadded base64url.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IsSessionToken reports whether s has the shape of a session token.
func IsSessionToken(s string) bool {
	if len(s) != SessionTokenLength {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}

// RandomBase36 returns n upper-case base36 characters.
func RandomBase36(n int) (string, error) {
	max := big.NewInt(int64(len(base36Alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		out[i] = base36Alphabet[idx.Int64()]
	}
	return string(out), nil
}
