package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewEventRepository(pool)
	assert.NotNil(t, repo)
}

// Runs against a real database when AIRPORT_TEST_POSTGRES_DSN is set.
func TestPGEventRepository_AppendAndList(t *testing.T) {
	dsn := os.Getenv("AIRPORT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("AIRPORT_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	schema, err := os.ReadFile("../../migrations/0001_flight_events.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	flightNumber := "T" + uuid.NewString()[:8]
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM flight_events WHERE flight_number=$1`, flightNumber)
	})

	repo := NewEventRepository(pool)
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	added := domain.FlightEvent{
		ID:           uuid.NewString(),
		Type:         domain.FlightEventAdded,
		FlightNumber: flightNumber,
		Status:       domain.FlightStatusScheduled,
		OccurredAt:   base,
	}
	booked := domain.FlightEvent{
		ID:           uuid.NewString(),
		Type:         domain.FlightEventPassengerAdded,
		FlightNumber: flightNumber,
		Passenger:    &domain.Passenger{ID: "P1", Name: "Ann", Email: "ann@x.io"},
		OccurredAt:   base.Add(time.Minute),
	}
	require.NoError(t, repo.Append(ctx, booked))
	require.NoError(t, repo.Append(ctx, added))

	events, err := repo.ListByFlight(ctx, flightNumber)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.FlightEventAdded, events[0].Type)
	assert.Equal(t, domain.FlightEventPassengerAdded, events[1].Type)
	assert.Equal(t, "Ann", events[1].Passenger.Name)
}
