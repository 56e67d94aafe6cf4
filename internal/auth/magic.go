package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateMagicToken returns a URL-safe random token for magic-link sign-in.
func GenerateMagicToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
