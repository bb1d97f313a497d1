// Package report renders flight and manifest listings as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
)

func Passengers(w io.Writer, f domain.Flight) error {
	if _, err := fmt.Fprintf(w, "Passengers for flight %s:\n", f.FlightNumber); err != nil {
		return err
	}
	if len(f.Passengers) == 0 {
		_, err := io.WriteString(w, "No passengers.\n")
		return err
	}
	for _, p := range f.Passengers {
		if _, err := fmt.Fprintf(w, "ID: %s, Name: %s, Email: %s\n", p.ID, p.Name, p.Email); err != nil {
			return err
		}
	}
	return nil
}

func ByStatus(w io.Writer, status string, flights []domain.Flight) error {
	if _, err := fmt.Fprintf(w, "Flights with status %s:\n", status); err != nil {
		return err
	}
	for _, f := range flights {
		if _, err := fmt.Fprintf(w, "%s\n", line(f)); err != nil {
			return err
		}
	}
	return nil
}

func ByDate(w io.Writer, date string, isDeparture bool, flights []domain.Flight) error {
	kind := "Arrival"
	if isDeparture {
		kind = "Departure"
	}
	if _, err := fmt.Fprintf(w, "Flights with %s Date %s:\n", kind, date); err != nil {
		return err
	}
	for _, f := range flights {
		if _, err := fmt.Fprintf(w, "%s, Status: %s\n", line(f), f.Status); err != nil {
			return err
		}
	}
	return nil
}

// String runs a report into a string.
func String(render func(io.Writer) error) string {
	var b strings.Builder
	_ = render(&b)
	return b.String()
}

func line(f domain.Flight) string {
	return fmt.Sprintf("Flight Number: %s, Origin: %s, Destination: %s, Departure Date: %s, Departure Time: %s, Arrival Date: %s, Arrival Time: %s",
		f.FlightNumber, f.Origin, f.Destination, f.DepartureDate, f.DepartureTime, f.ArrivalDate, f.ArrivalTime)
}
