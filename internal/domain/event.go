package domain

import "time"

type FlightEventType string

const (
	FlightEventAdded            FlightEventType = "flight_added"
	FlightEventUpdated          FlightEventType = "flight_updated"
	FlightEventDeleted          FlightEventType = "flight_deleted"
	FlightEventPassengerAdded   FlightEventType = "passenger_added"
	FlightEventPassengerRemoved FlightEventType = "passenger_removed"
)

// FlightEvent describes one successful registry mutation.
// Passengers is the manifest after the change; Passenger is set for passenger events only.
type FlightEvent struct {
	ID           string          `json:"id"`
	Type         FlightEventType `json:"type"`
	FlightNumber string          `json:"flight_number"`
	Status       string          `json:"status"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	Departure    string          `json:"departure"`
	Passengers   []Passenger     `json:"passengers,omitempty"`
	Passenger    *Passenger      `json:"passenger,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// Notifiable reports whether passengers should hear about this event.
func (e FlightEvent) Notifiable() bool {
	switch e.Type {
	case FlightEventUpdated, FlightEventPassengerAdded:
		return true
	}
	return false
}
