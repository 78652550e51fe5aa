package models

import "time"

// Token is an issued access token.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"token"`

	ExpiresAt time.Time `json:"expires_at"`
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return t.SignedString
}
