package forwarding

import (
	"context"
	"fmt"

	documentRepo "bookingbridge/database/repository/document"
	"bookingbridge/models"
)

// StoreJournal writes orphan markers as documents in a DocumentStore,
// normally the client's own store next to the orphaned booking.
type StoreJournal struct {
	store      documentRepo.DocumentStore
	collection string
}

func NewStoreJournal(store documentRepo.DocumentStore, collection string) *StoreJournal {
	return &StoreJournal{store: store, collection: collection}
}

func (j *StoreJournal) RecordOrphan(ctx context.Context, record models.OrphanRecord) error {
	if _, err := j.store.AddDocument(ctx, j.collection, record.Fields()); err != nil {
		return fmt.Errorf("failed to journal orphaned booking %s: %w", record.ClientBookingID, err)
	}
	return nil
}
