package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is an append-only audit trail of registry mutations. It is
// never read back into the registry.
type EventRepository interface {
	Append(ctx context.Context, event domain.FlightEvent) error
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.FlightEvent, error)
}

type PGEventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

func (r *PGEventRepository) Append(ctx context.Context, event domain.FlightEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.ID, err)
	}
	_, err = r.db.Exec(ctx, `INSERT INTO flight_events (id, type, flight_number, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`, event.ID, string(event.Type), event.FlightNumber, payload, event.OccurredAt)
	return err
}

func (r *PGEventRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.FlightEvent, error) {
	rows, err := r.db.Query(ctx, `SELECT payload FROM flight_events WHERE flight_number=$1 ORDER BY occurred_at, id`, flightNumber)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanEvent)
}

func scanEvent(row pgx.CollectableRow) (domain.FlightEvent, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		return domain.FlightEvent{}, err
	}
	var e domain.FlightEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return domain.FlightEvent{}, err
	}
	return e, nil
}

var _ EventRepository = (*PGEventRepository)(nil)
