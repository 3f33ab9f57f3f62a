package forwarding

import "bookingbridge/models"

// serverFields returns the value the bridge asserts for every key in models.ServerOwnedFields.
func serverFields(caller *models.Identity) map[string]interface{} {
	return map[string]interface{}{
		models.FieldClientID:    caller.ID,
		models.FieldStatus:      models.BookingStatusPending,
		models.FieldTherapistID: nil,
	}
}

// Enrich copies req and overwrites every server-owned field, so a caller can
// never choose its own clientId, status or therapistId.
func Enrich(req models.BookingRequest, caller *models.Identity) models.EnrichedBooking {
	booking := make(models.EnrichedBooking, len(req)+len(models.ServerOwnedFields))
	for k, v := range req {
		booking[k] = v
	}

	owned := serverFields(caller)
	for _, key := range models.ServerOwnedFields {
		booking[key] = owned[key]
	}
	return booking
}
