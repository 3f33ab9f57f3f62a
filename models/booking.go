package models

import "time"

// Booking statuses written by the bridge.
const (
	BookingStatusPending = "pending"
)

// Server-owned booking fields. Values supplied by the caller under these keys are discarded.
const (
	FieldClientID    = "clientId"
	FieldStatus      = "status"
	FieldTherapistID = "therapistId"
)

// ServerOwnedFields lists every key the bridge asserts on a forwarded booking.
var ServerOwnedFields = []string{FieldClientID, FieldStatus, FieldTherapistID}

// BookingRequest is the opaque booking payload sent by the client app.
type BookingRequest map[string]interface{}

// EnrichedBooking is a BookingRequest carrying the server-owned fields.
// It is built once per invocation and written unchanged to both stores.
type EnrichedBooking map[string]interface{}

// ClientID returns the verified client identity stamped on the booking.
func (b EnrichedBooking) ClientID() string {
	id, _ := b[FieldClientID].(string)
	return id
}

// ForwardResult is returned to the client app once both writes succeed.
type ForwardResult struct {
	Success            bool   `json:"success"`
	ClientBookingID    string `json:"clientBookingId"`
	TherapistBookingID string `json:"therapistBookingId"`
}

// OrphanRecord marks a booking that reached the client's store but never reached the therapist's.
type OrphanRecord struct {
	ClientID         string    `firestore:"clientId" bson:"clientId" json:"clientId"`
	ClientBookingID  string    `firestore:"clientBookingId" bson:"clientBookingId" json:"clientBookingId"`
	TargetCollection string    `firestore:"targetCollection" bson:"targetCollection" json:"targetCollection"`
	Stage            string    `firestore:"stage" bson:"stage" json:"stage"`
	Reason           string    `firestore:"reason" bson:"reason" json:"reason"`
	CreatedAt        time.Time `firestore:"createdAt" bson:"createdAt" json:"createdAt"`
}

// Fields flattens the record for DocumentStore writes.
func (o OrphanRecord) Fields() map[string]interface{} {
	return map[string]interface{}{
		"clientId":         o.ClientID,
		"clientBookingId":  o.ClientBookingID,
		"targetCollection": o.TargetCollection,
		"stage":            o.Stage,
		"reason":           o.Reason,
		"createdAt":        o.CreatedAt,
	}
}
