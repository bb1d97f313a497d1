package report

import (
	"io"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
)

var aa100 = domain.Flight{
	FlightNumber:  "AA100",
	Origin:        "JFK",
	Destination:   "LAX",
	DepartureDate: "2024-05-01",
	DepartureTime: "08:00",
	ArrivalDate:   "2024-05-01",
	ArrivalTime:   "11:30",
	Status:        "scheduled",
}

func TestPassengers(t *testing.T) {
	f := aa100.Clone()
	f.AddPassenger(domain.Passenger{ID: "P1", Name: "Bob", Email: "bob@example.com"})

	got := String(func(w io.Writer) error { return Passengers(w, f) })

	assert.Equal(t, "Passengers for flight AA100:\nID: P1, Name: Bob, Email: bob@example.com\n", got)
}

func TestPassengers_Empty(t *testing.T) {
	got := String(func(w io.Writer) error { return Passengers(w, aa100) })

	assert.Equal(t, "Passengers for flight AA100:\nNo passengers.\n", got)
}

func TestByStatus(t *testing.T) {
	got := String(func(w io.Writer) error { return ByStatus(w, "scheduled", []domain.Flight{aa100}) })

	assert.Equal(t, "Flights with status scheduled:\n"+
		"Flight Number: AA100, Origin: JFK, Destination: LAX, Departure Date: 2024-05-01, Departure Time: 08:00, Arrival Date: 2024-05-01, Arrival Time: 11:30\n", got)
}

func TestByStatus_NoFlights(t *testing.T) {
	got := String(func(w io.Writer) error { return ByStatus(w, "cancelled", nil) })

	assert.Equal(t, "Flights with status cancelled:\n", got)
}

func TestByDate(t *testing.T) {
	dep := String(func(w io.Writer) error { return ByDate(w, "2024-05-01", true, []domain.Flight{aa100}) })
	arr := String(func(w io.Writer) error { return ByDate(w, "2024-05-01", false, nil) })

	assert.Equal(t, "Flights with Departure Date 2024-05-01:\n"+
		"Flight Number: AA100, Origin: JFK, Destination: LAX, Departure Date: 2024-05-01, Departure Time: 08:00, Arrival Date: 2024-05-01, Arrival Time: 11:30, Status: scheduled\n", dep)
	assert.Equal(t, "Flights with Arrival Date 2024-05-01:\n", arr)
}
