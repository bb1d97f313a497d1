package domain

// Conventional flight statuses. The registry does not enforce them.
const (
	FlightStatusScheduled = "scheduled"
	FlightStatusCancelled = "cancelled"
	FlightStatusCompleted = "completed"
)

type Passenger struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Flight is a flight record together with its passenger manifest.
// Dates and times are kept exactly as entered.
type Flight struct {
	FlightNumber  string      `json:"flight_number"`
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	DepartureDate string      `json:"departure_date"`
	DepartureTime string      `json:"departure_time"`
	ArrivalDate   string      `json:"arrival_date"`
	ArrivalTime   string      `json:"arrival_time"`
	Status        string      `json:"status"`
	Passengers    []Passenger `json:"passengers"`
}

// AddPassenger appends p to the manifest. Duplicate ids are allowed.
func (f *Flight) AddPassenger(p Passenger) {
	f.Passengers = append(f.Passengers, p)
}

// RemovePassenger drops every passenger with the given id and reports how many were removed.
func (f *Flight) RemovePassenger(id string) int {
	kept := f.Passengers[:0]
	for _, p := range f.Passengers {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	removed := len(f.Passengers) - len(kept)
	clear(f.Passengers[len(kept):])
	f.Passengers = kept
	return removed
}

// Clone returns a deep copy of the flight; the manifest is never shared.
// A nil manifest stays nil and an empty one stays empty.
func (f Flight) Clone() Flight {
	cp := f
	if f.Passengers != nil {
		cp.Passengers = make([]Passenger, len(f.Passengers))
		copy(cp.Passengers, f.Passengers)
	}
	return cp
}

// WithManifest returns f with a nil manifest replaced by an empty one.
func (f Flight) WithManifest() Flight {
	if f.Passengers == nil {
		f.Passengers = []Passenger{}
	}
	return f
}
