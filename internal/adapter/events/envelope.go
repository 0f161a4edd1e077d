package events

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/shareit/internal/core/domain"
)

const (
	EventBookingCreated       = "BookingCreated"
	EventBookingStatusChanged = "BookingStatusChanged"

	DefaultTopic = "booking.events"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type BookingPayload struct {
	BookingID int64                `json:"booking_id"`
	ItemID    int64                `json:"item_id"`
	RenterID  int64                `json:"renter_id"`
	OwnerID   int64                `json:"owner_id"`
	Start     string               `json:"start"`
	End       string               `json:"end"`
	Status    domain.BookingStatus `json:"status"`
}

func NewEnvelope(eventType, producer, traceID string, b *domain.Booking) (Envelope, error) {
	payload, err := json.Marshal(BookingPayload{
		BookingID: b.ID,
		ItemID:    b.ItemID,
		RenterID:  b.RenterID,
		OwnerID:   b.OwnerID,
		Start:     domain.FormatInstant(b.Start),
		End:       domain.FormatInstant(b.End),
		Status:    b.Status,
	})
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: strconv.FormatInt(b.ID, 10),
		Payload:       payload,
	}, nil
}

// PartitionKey keeps every event of one booking on the same partition.
func PartitionKey(bookingID int64) []byte {
	return []byte(strconv.FormatInt(bookingID, 10))
}
