package identity

import (
	"context"
	"errors"

	"bookingbridge/models"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid identity token")

// Verifier turns a bearer token into a verified caller identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*models.Identity, error)
}
