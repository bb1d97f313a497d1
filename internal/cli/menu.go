// Package cli is the interactive, line-oriented operator console.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/flights"
)

const menuText = `
Airport Management System
1. Add Flight
2. Update Flight
3. Delete Flight
4. Add Passenger to Flight
5. Remove Passenger from Flight
6. Generate Report by Status
7. Generate Passenger Report
8. Generate Report by Departure Date
9. Generate Report by Arrival Date
0. Exit
Enter your choice: `

type Menu struct {
	flights flights.FlightUseCase
	in      *bufio.Scanner
	out     io.Writer
}

func NewMenu(svc flights.FlightUseCase, in io.Reader, out io.Writer) *Menu {
	return &Menu{flights: svc, in: bufio.NewScanner(in), out: out}
}

// Run loops until the operator exits, input ends or ctx is cancelled.
// Registry errors are printed and the loop goes on.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printf("%s", menuText)
		choice, ok := m.read()
		if !ok {
			return m.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = m.addFlight(ctx)
		case "2":
			err = m.updateFlight(ctx)
		case "3":
			err = m.deleteFlight(ctx)
		case "4":
			err = m.addPassenger(ctx)
		case "5":
			err = m.removePassenger(ctx)
		case "6":
			err = m.statusReport(ctx)
		case "7":
			err = m.passengerReport(ctx)
		case "8":
			err = m.dateReport(ctx, true)
		case "9":
			err = m.dateReport(ctx, false)
		case "0":
			return nil
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
		if errors.Is(err, io.EOF) {
			return m.in.Err()
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addFlight(ctx context.Context) error {
	var f domain.Flight
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter flight number: ", &f.FlightNumber},
		{"Enter origin: ", &f.Origin},
		{"Enter destination: ", &f.Destination},
		{"Enter departure date (YYYY-MM-DD): ", &f.DepartureDate},
		{"Enter departure time (HH:MM): ", &f.DepartureTime},
		{"Enter arrival date (YYYY-MM-DD): ", &f.ArrivalDate},
		{"Enter arrival time (HH:MM): ", &f.ArrivalTime},
		{"Enter status (scheduled, cancelled, completed): ", &f.Status},
	}
	for _, field := range fields {
		v, err := m.ask(field.prompt)
		if err != nil {
			return err
		}
		*field.dst = v
	}

	if _, err := m.flights.AddFlight(ctx, f); err != nil {
		return m.explain(err, f.FlightNumber)
	}
	m.printf("Added flight %s\n", f.FlightNumber)
	return nil
}

// updateFlight asks for every field showing the current value; a blank
// answer keeps it. The current manifest is carried over.
func (m *Menu) updateFlight(ctx context.Context) error {
	number, err := m.ask("Enter flight number to update: ")
	if err != nil {
		return err
	}
	current, err := m.flights.GetFlight(ctx, number)
	if err != nil {
		return m.explain(err, number)
	}

	updated := current.Clone()
	fields := []struct {
		label string
		dst   *string
	}{
		{"origin", &updated.Origin},
		{"destination", &updated.Destination},
		{"departure date", &updated.DepartureDate},
		{"departure time", &updated.DepartureTime},
		{"arrival date", &updated.ArrivalDate},
		{"arrival time", &updated.ArrivalTime},
		{"status", &updated.Status},
	}
	for _, field := range fields {
		v, err := m.ask(fmt.Sprintf("Enter new %s (current: %s): ", field.label, *field.dst))
		if err != nil {
			return err
		}
		if v != "" {
			*field.dst = v
		}
	}

	if _, err := m.flights.UpdateFlight(ctx, number, updated); err != nil {
		return m.explain(err, number)
	}
	m.printf("Updated flight %s\n", number)
	return nil
}

func (m *Menu) deleteFlight(ctx context.Context) error {
	number, err := m.ask("Enter flight number to delete: ")
	if err != nil {
		return err
	}
	if err := m.flights.DeleteFlight(ctx, number); err != nil {
		return m.explain(err, number)
	}
	m.printf("Deleted flight %s\n", number)
	return nil
}

func (m *Menu) addPassenger(ctx context.Context) error {
	number, err := m.ask("Enter flight number: ")
	if err != nil {
		return err
	}
	if _, err := m.flights.GetFlight(ctx, number); err != nil {
		return m.explain(err, number)
	}

	var p domain.Passenger
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter passenger ID: ", &p.ID},
		{"Enter passenger name: ", &p.Name},
		{"Enter passenger email: ", &p.Email},
	} {
		v, err := m.ask(field.prompt)
		if err != nil {
			return err
		}
		*field.dst = v
	}

	if _, err := m.flights.AddPassenger(ctx, number, p); err != nil {
		return m.explain(err, number)
	}
	m.printf("Added passenger %s to flight %s\n", p.ID, number)
	return nil
}

func (m *Menu) removePassenger(ctx context.Context) error {
	number, err := m.ask("Enter flight number: ")
	if err != nil {
		return err
	}
	id, err := m.ask("Enter passenger ID: ")
	if err != nil {
		return err
	}
	_, removed, err := m.flights.RemovePassenger(ctx, number, id)
	if err != nil {
		return m.explain(err, number)
	}
	m.printf("Removed %d passenger(s) with ID %s from flight %s\n", removed, id, number)
	return nil
}

func (m *Menu) statusReport(ctx context.Context) error {
	status, err := m.ask("Enter status (scheduled, cancelled, completed): ")
	if err != nil {
		return err
	}
	text, err := m.flights.StatusReport(ctx, status)
	if err != nil {
		return m.explain(err, "")
	}
	m.printf("%s", text)
	return nil
}

func (m *Menu) passengerReport(ctx context.Context) error {
	number, err := m.ask("Enter flight number: ")
	if err != nil {
		return err
	}
	text, err := m.flights.PassengerReport(ctx, number)
	if err != nil {
		return m.explain(err, number)
	}
	m.printf("%s", text)
	return nil
}

func (m *Menu) dateReport(ctx context.Context, isDeparture bool) error {
	prompt := "Enter arrival date (YYYY-MM-DD): "
	if isDeparture {
		prompt = "Enter departure date (YYYY-MM-DD): "
	}
	date, err := m.ask(prompt)
	if err != nil {
		return err
	}
	text, err := m.flights.DateReport(ctx, date, isDeparture)
	if err != nil {
		return m.explain(err, "")
	}
	m.printf("%s", text)
	return nil
}

// explain prints registry errors for the operator and swallows them; anything
// else ends the session.
func (m *Menu) explain(err error, number string) error {
	switch {
	case errors.Is(err, domain.ErrFlightExists):
		m.printf("Flight with number %s already exists.\n", number)
	case errors.Is(err, domain.ErrFlightNotFound):
		m.printf("Flight with number %s does not exist.\n", number)
	case errors.Is(err, domain.ErrFlightNumberMismatch):
		m.printf("Flight number %s cannot be changed.\n", number)
	default:
		return err
	}
	return nil
}

func (m *Menu) ask(prompt string) (string, error) {
	m.printf("%s", prompt)
	v, ok := m.read()
	if !ok {
		return "", io.EOF
	}
	return v, nil
}

func (m *Menu) read() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
