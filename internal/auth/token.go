package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohan/voicecv-cli/internal/storage"
)

// TokenInfo describes what the client can read out of the stored token
// without verifying it. Opaque (non-JWT) tokens yield JWT=false with no
// claims; the token is still usable for requests either way.
type TokenInfo struct {
	Present   bool
	JWT       bool
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

// InspectToken parses the stored token as a JWT without signature
// verification, purely for display (whoami) and expiry warnings.
// Verification is the backend's job; the client has no key material.
func InspectToken(store *storage.Store, now time.Time) TokenInfo {
	token, ok := store.Get(storage.KeyToken)
	if !ok || token == "" {
		return TokenInfo{}
	}

	info := TokenInfo{Present: true}
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return info
	}
	info.JWT = true

	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = exp.Time.Before(now)
	}
	return info
}
