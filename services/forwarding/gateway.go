package forwarding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	documentRepo "bookingbridge/database/repository/document"
	"bookingbridge/models"

	"go.uber.org/zap"
)

const (
	DefaultPrimaryCollection   = "users/{clientId}/orders"
	DefaultSecondaryCollection = "bookings"

	clientIDPlaceholder = "{clientId}"
	journalTimeout      = 5 * time.Second
)

var errInvalidClientID = errors.New("client id cannot be used as a collection path segment")

// Gateway is the default Forwarder. It owns two independently credentialed
// stores: primary (the client app's database) and secondary (the therapist's).
type Gateway struct {
	primary             documentRepo.DocumentStore
	secondary           documentRepo.DocumentStore
	journal             Journal
	logger              *zap.Logger
	primaryCollection   string
	secondaryCollection string
}

type Option func(*Gateway)

// WithCollections sets the primary collection template (which must contain
// "{clientId}") and the shared secondary collection.
func WithCollections(primaryTemplate, secondary string) Option {
	return func(g *Gateway) {
		g.primaryCollection = primaryTemplate
		g.secondaryCollection = secondary
	}
}

// WithJournal enables orphan markers for bookings whose secondary write failed.
func WithJournal(j Journal) Option {
	return func(g *Gateway) {
		g.journal = j
	}
}

func NewGateway(primary, secondary documentRepo.DocumentStore, logger *zap.Logger, opts ...Option) (*Gateway, error) {
	if primary == nil || secondary == nil {
		return nil, fmt.Errorf("forwarding gateway initialization error: primary or secondary store is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Gateway{
		primary:             primary,
		secondary:           secondary,
		logger:              logger,
		primaryCollection:   DefaultPrimaryCollection,
		secondaryCollection: DefaultSecondaryCollection,
	}
	for _, opt := range opts {
		opt(g)
	}

	if !strings.Contains(g.primaryCollection, clientIDPlaceholder) {
		return nil, fmt.Errorf("forwarding gateway initialization error: primary collection %q is not scoped by %s", g.primaryCollection, clientIDPlaceholder)
	}
	if g.secondaryCollection == "" {
		return nil, fmt.Errorf("forwarding gateway initialization error: secondary collection is empty")
	}
	return g, nil
}

// PrimaryCollection returns the caller's own collection path.
func (g *Gateway) PrimaryCollection(clientID string) (string, error) {
	if clientID == "" || strings.Contains(clientID, "/") {
		return "", fmt.Errorf("%w: %q", errInvalidClientID, clientID)
	}
	return strings.ReplaceAll(g.primaryCollection, clientIDPlaceholder, clientID), nil
}

// Forward stores the booking in the caller's collection and then, only if that
// succeeded, forwards the same record to the therapist's shared collection.
// A failure at either step fails the whole call; a primary write is never rolled back.
func (g *Gateway) Forward(ctx context.Context, req models.BookingRequest, caller *models.Identity) (*models.ForwardResult, error) {
	if caller == nil || caller.ID == "" {
		return nil, NewUnauthenticatedError()
	}
	logger := g.logger.With(zap.String("clientId", caller.ID))

	primaryPath, err := g.PrimaryCollection(caller.ID)
	if err != nil {
		logger.Error("Error forwarding booking", zap.String("stage", string(StageAuthenticated)), zap.Error(err))
		return nil, NewForwardingFailedError(StageAuthenticated, err)
	}

	booking := Enrich(req, caller)

	clientBookingID, err := g.primary.AddDocument(ctx, primaryPath, booking)
	if err != nil {
		logger.Error("Error forwarding booking: client store write failed",
			zap.String("stage", string(StageAuthenticated)),
			zap.String("collection", primaryPath),
			zap.Error(err),
		)
		return nil, NewForwardingFailedError(StageAuthenticated, err)
	}
	logger.Info("Booking saved to client store",
		zap.String("stage", string(StagePrimaryWritten)),
		zap.String("clientBookingId", clientBookingID),
	)

	therapistBookingID, err := g.secondary.AddDocument(ctx, g.secondaryCollection, booking)
	if err != nil {
		logger.Error("Error forwarding booking: therapist store write failed",
			zap.String("stage", string(StagePrimaryWritten)),
			zap.String("clientBookingId", clientBookingID),
			zap.String("collection", g.secondaryCollection),
			zap.Error(err),
		)
		g.recordOrphan(ctx, logger, caller.ID, clientBookingID, err)
		return nil, NewForwardingFailedError(StagePrimaryWritten, err)
	}
	logger.Info("Booking forwarded to therapist store",
		zap.String("stage", string(StageSecondaryWritten)),
		zap.String("therapistBookingId", therapistBookingID),
	)
	logger.Debug("Booking forwarding finished", zap.String("stage", string(StageCompleted)))
	return &models.ForwardResult{
		Success:            true,
		ClientBookingID:    clientBookingID,
		TherapistBookingID: therapistBookingID,
	}, nil
}

// recordOrphan is best effort: a journal failure is logged and never changes the
// Forward result. The marker is written even if ctx has been canceled.
func (g *Gateway) recordOrphan(ctx context.Context, logger *zap.Logger, clientID, clientBookingID string, cause error) {
	if g.journal == nil {
		return
	}
	jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()

	record := models.OrphanRecord{
		ClientID:         clientID,
		ClientBookingID:  clientBookingID,
		TargetCollection: g.secondaryCollection,
		Stage:            string(StagePrimaryWritten),
		Reason:           cause.Error(),
		CreatedAt:        time.Now().UTC(),
	}
	if err := g.journal.RecordOrphan(jctx, record); err != nil {
		logger.Error("Failed to journal orphaned booking",
			zap.String("clientBookingId", clientBookingID),
			zap.Error(err),
		)
		return
	}
	logger.Warn("Orphaned booking journaled", zap.String("clientBookingId", clientBookingID))
}
