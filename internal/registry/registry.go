// Package registry holds flight records in memory, keyed by flight number.
package registry

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/airport/internal/domain"
)

// FlightRegistry is safe for concurrent use. Records go in and come out as deep
// copies; in-place changes go through ModifyFlight.
// Queries return flights in insertion order.
type FlightRegistry struct {
	mu      sync.RWMutex
	flights map[string]domain.Flight
	order   []string
	gen     uint64
}

// New returns an empty registry.
func New() *FlightRegistry {
	return &FlightRegistry{flights: make(map[string]domain.Flight)}
}

// AddFlight stores a copy of flight. Flight numbers are unique.
func (r *FlightRegistry) AddFlight(flight domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[flight.FlightNumber]; ok {
		return fmt.Errorf("add flight %s: %w", flight.FlightNumber, domain.ErrFlightExists)
	}
	r.flights[flight.FlightNumber] = flight.Clone()
	r.order = append(r.order, flight.FlightNumber)
	r.gen++
	return nil
}

// UpdateFlight replaces the record stored under flightNumber wholesale, manifest
// included. An empty FlightNumber on the replacement inherits the key; a different
// one is rejected so that a record never disagrees with its key.
func (r *FlightRegistry) UpdateFlight(flightNumber string, updated domain.Flight) error {
	if updated.FlightNumber == "" {
		updated.FlightNumber = flightNumber
	}
	if updated.FlightNumber != flightNumber {
		return fmt.Errorf("update flight %s to %s: %w", flightNumber, updated.FlightNumber, domain.ErrFlightNumberMismatch)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[flightNumber]; !ok {
		return fmt.Errorf("update flight %s: %w", flightNumber, domain.ErrFlightNotFound)
	}
	r.flights[flightNumber] = updated.Clone()
	r.gen++
	return nil
}

// DeleteFlight removes the record and hands it back.
func (r *FlightRegistry) DeleteFlight(flightNumber string) (domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[flightNumber]
	if !ok {
		return domain.Flight{}, fmt.Errorf("delete flight %s: %w", flightNumber, domain.ErrFlightNotFound)
	}
	delete(r.flights, flightNumber)
	for i, n := range r.order {
		if n == flightNumber {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.gen++
	return f, nil
}

// GetFlight returns a copy of the stored record.
func (r *FlightRegistry) GetFlight(flightNumber string) (domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[flightNumber]
	if !ok {
		return domain.Flight{}, fmt.Errorf("get flight %s: %w", flightNumber, domain.ErrFlightNotFound)
	}
	return f.Clone(), nil
}

// ModifyFlight runs fn against the stored record under the write lock and keeps
// the result only when fn returns nil. fn must not change the flight number.
func (r *FlightRegistry) ModifyFlight(flightNumber string, fn func(*domain.Flight) error) (domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[flightNumber]
	if !ok {
		return domain.Flight{}, fmt.Errorf("modify flight %s: %w", flightNumber, domain.ErrFlightNotFound)
	}
	work := f.Clone()
	if err := fn(&work); err != nil {
		return domain.Flight{}, err
	}
	if work.FlightNumber != flightNumber {
		return domain.Flight{}, fmt.Errorf("modify flight %s: %w", flightNumber, domain.ErrFlightNumberMismatch)
	}
	r.flights[flightNumber] = work
	r.gen++
	return work.Clone(), nil
}

// AddPassenger appends p to the manifest. Duplicate ids are kept.
func (r *FlightRegistry) AddPassenger(flightNumber string, p domain.Passenger) (domain.Flight, error) {
	return r.ModifyFlight(flightNumber, func(f *domain.Flight) error {
		f.AddPassenger(p)
		return nil
	})
}

// RemovePassenger removes every passenger with passengerID and returns the
// updated flight and the number removed.
func (r *FlightRegistry) RemovePassenger(flightNumber, passengerID string) (domain.Flight, int, error) {
	var removed int
	f, err := r.ModifyFlight(flightNumber, func(f *domain.Flight) error {
		removed = f.RemovePassenger(passengerID)
		return nil
	})
	if err != nil {
		return domain.Flight{}, 0, err
	}
	return f, removed, nil
}

// QueryFlightsByStatus matches status exactly, case included.
func (r *FlightRegistry) QueryFlightsByStatus(status string) []domain.Flight {
	return r.filter(func(f domain.Flight) bool { return f.Status == status })
}

// QueryFlightsByDate matches the departure date when isDeparture is set and the
// arrival date otherwise.
func (r *FlightRegistry) QueryFlightsByDate(date string, isDeparture bool) []domain.Flight {
	return r.filter(func(f domain.Flight) bool {
		if isDeparture {
			return f.DepartureDate == date
		}
		return f.ArrivalDate == date
	})
}

// List returns every flight.
func (r *FlightRegistry) List() []domain.Flight {
	return r.filter(func(domain.Flight) bool { return true })
}

// Len returns the number of flights.
func (r *FlightRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flights)
}

// Generation is bumped by every successful mutation. A query run after reading
// generation g reflects g or a later state.
func (r *FlightRegistry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

func (r *FlightRegistry) filter(match func(domain.Flight) bool) []domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Flight, 0)
	for _, n := range r.order {
		if f := r.flights[n]; match(f) {
			out = append(out, f.Clone())
		}
	}
	return out
}
