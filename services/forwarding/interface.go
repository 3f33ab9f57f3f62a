package forwarding

import (
	"context"

	"bookingbridge/models"
)

// Forwarder writes a client's booking to the client's own store and forwards it to the therapist's store.
type Forwarder interface {
	Forward(ctx context.Context, req models.BookingRequest, caller *models.Identity) (*models.ForwardResult, error)
}

// Journal records bookings left in the client store after forwarding failed.
type Journal interface {
	RecordOrphan(ctx context.Context, record models.OrphanRecord) error
}
