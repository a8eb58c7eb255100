package utils // package utils provides helpers for password hashing and token creation

import (
	"crypto/rand"  // secure random number generation
	"encoding/hex" // hex encoding of the random bytes
)

// sessionTokenBytes is the amount of entropy in a session token.
const sessionTokenBytes = 32

// NewSessionToken returns an opaque, unguessable bearer token built from
// 32 bytes of crypto/rand output (64 hex characters).
func NewSessionToken() (string, error) {
	return randomHex(sessionTokenBytes)
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.  If the random number generator
// fails, an error is returned.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
