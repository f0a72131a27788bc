package models

import (
	"time"
)

// Request statuses. A request starts open; the owner may mark it
// completed, and nothing moves it back.
const (
	RequestStatusOpen      = "open"
	RequestStatusCompleted = "completed"
)

// Request is a service request posted by a client. The client and dog are
// embedded as snapshots taken at posting time.
type Request struct {
	ID                  string    `bson:"id" json:"id"`
	ClientID            string    `bson:"clientId" json:"clientId"`
	Client              Client    `bson:"client" json:"client"`
	ServiceType         string    `bson:"serviceType" json:"serviceType"`
	Date                time.Time `bson:"date" json:"date"`
	Time                string    `bson:"time" json:"time"` // "HH:MM"
	Dog                 Dog       `bson:"dog" json:"dog"`
	Neighborhood        string    `bson:"neighborhood" json:"neighborhood"`
	SpecialInstructions string    `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	OfferedPrice        float64   `bson:"offeredPrice" json:"offeredPrice"` // whole shekels
	Flexible            bool      `bson:"flexible" json:"flexible"`
	Status              string    `bson:"status" json:"status"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
}
