package stats

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event types recorded in the statistics store.
const (
	EventRegistration = "REGISTRATION"
	EventBooking      = "BOOKING"
)

// Statistic is one recorded domain event. CheckIn and CheckOut are only
// set for booking events and use the 2006-01-02 layout.
type Statistic struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     int64              `bson:"user_id" json:"user_id"`
	CheckIn    string             `bson:"check_in,omitempty" json:"check_in,omitempty"`
	CheckOut   string             `bson:"check_out,omitempty" json:"check_out,omitempty"`
	EventType  string             `bson:"event_type" json:"event_type"`
	RecordedAt time.Time          `bson:"recorded_at" json:"recorded_at"`
}
