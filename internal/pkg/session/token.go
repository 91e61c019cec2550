package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Strategy mints and verifies opaque session tokens carried in cookies.
type Strategy interface {
	Issue() (id, token string)
	Parse(token string) (string, error)
}

// HMACStrategy signs random session identifiers with HMAC-SHA256 so a
// tampered cookie can never address another visitor's cart.
type HMACStrategy struct {
	secret []byte
}

// NewHMACStrategy builds HMACStrategy with provided secret.
func NewHMACStrategy(secret string) *HMACStrategy {
	return &HMACStrategy{secret: []byte(secret)}
}

// Issue generates a fresh session identifier and its signed token.
func (s *HMACStrategy) Issue() (string, string) {
	id := uuid.NewString()
	token := base64.RawURLEncoding.EncodeToString([]byte(id + ":" + s.sign(id)))
	return id, token
}

// Parse validates the token and returns the encoded session identifier.
func (s *HMACStrategy) Parse(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return "", ErrInvalidToken
	}

	if !hmac.Equal([]byte(s.sign(parts[0])), []byte(parts[1])) {
		return "", ErrInvalidToken
	}

	if _, err := uuid.Parse(parts[0]); err != nil {
		return "", ErrInvalidToken
	}

	return parts[0], nil
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
