package api

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) AddFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	args := m.Called(ctx, flight)
	return args.Get(0).(domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) UpdateFlight(ctx context.Context, flightNumber string, flight domain.Flight) (domain.Flight, error) {
	args := m.Called(ctx, flightNumber, flight)
	return args.Get(0).(domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) DeleteFlight(ctx context.Context, flightNumber string) error {
	args := m.Called(ctx, flightNumber)
	return args.Error(0)
}

func (m *MockFlightUseCase) GetFlight(ctx context.Context, flightNumber string) (domain.Flight, error) {
	args := m.Called(ctx, flightNumber)
	return args.Get(0).(domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) QueryByStatus(ctx context.Context, status string) ([]domain.Flight, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) QueryByDate(ctx context.Context, date string, isDeparture bool) ([]domain.Flight, error) {
	args := m.Called(ctx, date, isDeparture)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) AddPassenger(ctx context.Context, flightNumber string, passenger domain.Passenger) (domain.Flight, error) {
	args := m.Called(ctx, flightNumber, passenger)
	return args.Get(0).(domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) RemovePassenger(ctx context.Context, flightNumber, passengerID string) (domain.Flight, int, error) {
	args := m.Called(ctx, flightNumber, passengerID)
	return args.Get(0).(domain.Flight), args.Int(1), args.Error(2)
}

func (m *MockFlightUseCase) PassengerReport(ctx context.Context, flightNumber string) (string, error) {
	args := m.Called(ctx, flightNumber)
	return args.String(0), args.Error(1)
}

func (m *MockFlightUseCase) StatusReport(ctx context.Context, status string) (string, error) {
	args := m.Called(ctx, status)
	return args.String(0), args.Error(1)
}

func (m *MockFlightUseCase) DateReport(ctx context.Context, date string, isDeparture bool) (string, error) {
	args := m.Called(ctx, date, isDeparture)
	return args.String(0), args.Error(1)
}

func (m *MockFlightUseCase) History(ctx context.Context, flightNumber string) ([]domain.FlightEvent, error) {
	args := m.Called(ctx, flightNumber)
	return args.Get(0).([]domain.FlightEvent), args.Error(1)
}
