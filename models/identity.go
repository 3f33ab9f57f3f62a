package models

import "time"

// Identity is a caller identity vouched for by the identity provider.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	// ExpiresAt is when the credential that proved this identity expires.
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}
