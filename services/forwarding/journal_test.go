package forwarding

import (
	"context"
	"errors"
	"testing"
	"time"

	documentRepo "bookingbridge/database/repository/document"
	"bookingbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreJournalRecordOrphan(t *testing.T) {
	store := documentRepo.NewMemoryStore()
	j := NewStoreJournal(store, "orphanedBookings")
	now := time.Now().UTC()

	err := j.RecordOrphan(context.Background(), models.OrphanRecord{
		ClientID:         "u123",
		ClientBookingID:  "b1",
		TargetCollection: "bookings",
		Stage:            string(StagePrimaryWritten),
		Reason:           "UNAVAILABLE",
		CreatedAt:        now,
	})
	require.NoError(t, err)

	docs := store.Collection("orphanedBookings")
	require.Len(t, docs, 1)
	assert.Equal(t, "b1", docs[0].Data["clientBookingId"])
	assert.Equal(t, "u123", docs[0].Data["clientId"])
	assert.Equal(t, now, docs[0].Data["createdAt"])
}

func TestStoreJournalWrapsStoreError(t *testing.T) {
	store := documentRepo.NewMemoryStore()
	boom := errors.New("boom")
	store.FailWith(boom)

	err := NewStoreJournal(store, "orphanedBookings").RecordOrphan(context.Background(), models.OrphanRecord{ClientBookingID: "b1"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "b1")
}
