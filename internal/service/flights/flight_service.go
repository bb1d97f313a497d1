package flights

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/Domenick1991/airport/internal/registry"
	"github.com/Domenick1991/airport/internal/report"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	UpdateFlight(ctx context.Context, flightNumber string, flight domain.Flight) (domain.Flight, error)
	DeleteFlight(ctx context.Context, flightNumber string) error
	GetFlight(ctx context.Context, flightNumber string) (domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	QueryByStatus(ctx context.Context, status string) ([]domain.Flight, error)
	QueryByDate(ctx context.Context, date string, isDeparture bool) ([]domain.Flight, error)
	AddPassenger(ctx context.Context, flightNumber string, passenger domain.Passenger) (domain.Flight, error)
	RemovePassenger(ctx context.Context, flightNumber, passengerID string) (domain.Flight, int, error)
	PassengerReport(ctx context.Context, flightNumber string) (string, error)
	StatusReport(ctx context.Context, status string) (string, error)
	DateReport(ctx context.Context, date string, isDeparture bool) (string, error)
	History(ctx context.Context, flightNumber string) ([]domain.FlightEvent, error)
}

// Cache holds query results. GetFlights returns nil, nil on a miss. Keys are
// scoped to one service instance and one registry generation.
type Cache interface {
	GetFlights(ctx context.Context, key string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, key string, flights []domain.Flight) error
	Invalidate(ctx context.Context) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, attempts int) error
}

type Journal interface {
	Append(ctx context.Context, event domain.FlightEvent) error
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.FlightEvent, error)
}

// FlightService fronts the registry. The registry is the source of truth: the
// cache, the journal and the event stream are best effort and their failures
// are only logged.
type FlightService struct {
	registry           *registry.FlightRegistry
	log                *zap.Logger
	cache              Cache
	instance           string
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	publishAttempts    int
	journal            Journal
	metrics            *metrics.Metrics
	now                func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithCache(cache Cache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, eventsTopic, notificationsTopic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
		s.notificationsTopic = notificationsTopic
	}
}

// WithPublishAttempts sets how many times each event write is tried.
func WithPublishAttempts(n int) FlightServiceOption {
	return func(s *FlightService) {
		if n > 0 {
			s.publishAttempts = n
		}
	}
}

func WithJournal(journal Journal) FlightServiceOption {
	return func(s *FlightService) {
		s.journal = journal
	}
}

func WithMetrics(m *metrics.Metrics) FlightServiceOption {
	return func(s *FlightService) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

func NewFlightService(reg *registry.FlightRegistry, log *zap.Logger, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		registry:        reg,
		log:             log,
		instance:        uuid.NewString(),
		publishAttempts: 1,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) AddFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	if err := s.registry.AddFlight(flight); err != nil {
		return domain.Flight{}, s.fail("add_flight", err)
	}
	s.log.Info("added flight", zap.String("flight_number", flight.FlightNumber))
	s.changed(ctx, "add_flight", s.newEvent(domain.FlightEventAdded, flight, nil))
	return flight.Clone(), nil
}

func (s *FlightService) UpdateFlight(ctx context.Context, flightNumber string, flight domain.Flight) (domain.Flight, error) {
	if err := s.registry.UpdateFlight(flightNumber, flight); err != nil {
		return domain.Flight{}, s.fail("update_flight", err)
	}
	updated, err := s.registry.GetFlight(flightNumber)
	if err != nil {
		// deleted by a concurrent caller right after the update
		return domain.Flight{}, s.fail("update_flight", err)
	}
	s.log.Info("updated flight", zap.String("flight_number", flightNumber), zap.String("status", updated.Status))
	s.changed(ctx, "update_flight", s.newEvent(domain.FlightEventUpdated, updated, nil))
	return updated, nil
}

func (s *FlightService) DeleteFlight(ctx context.Context, flightNumber string) error {
	deleted, err := s.registry.DeleteFlight(flightNumber)
	if err != nil {
		return s.fail("delete_flight", err)
	}
	s.log.Info("deleted flight", zap.String("flight_number", flightNumber))
	s.changed(ctx, "delete_flight", s.newEvent(domain.FlightEventDeleted, deleted, nil))
	return nil
}

func (s *FlightService) GetFlight(ctx context.Context, flightNumber string) (domain.Flight, error) {
	f, err := s.registry.GetFlight(flightNumber)
	if err != nil {
		return domain.Flight{}, s.fail("get_flight", err)
	}
	s.metrics.Observe("get_flight", metrics.ResultOK)
	return f, nil
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return s.cached(ctx, "list_flights", "all", s.registry.List)
}

func (s *FlightService) QueryByStatus(ctx context.Context, status string) ([]domain.Flight, error) {
	return s.cached(ctx, "query_by_status", "status:"+status, func() []domain.Flight {
		return s.registry.QueryFlightsByStatus(status)
	})
}

func (s *FlightService) QueryByDate(ctx context.Context, date string, isDeparture bool) ([]domain.Flight, error) {
	key := "arrival:" + date
	if isDeparture {
		key = "departure:" + date
	}
	return s.cached(ctx, "query_by_date", key, func() []domain.Flight {
		return s.registry.QueryFlightsByDate(date, isDeparture)
	})
}

func (s *FlightService) AddPassenger(ctx context.Context, flightNumber string, passenger domain.Passenger) (domain.Flight, error) {
	f, err := s.registry.AddPassenger(flightNumber, passenger)
	if err != nil {
		return domain.Flight{}, s.fail("add_passenger", err)
	}
	s.log.Info("added passenger", zap.String("flight_number", flightNumber), zap.String("passenger_id", passenger.ID))
	s.changed(ctx, "add_passenger", s.newEvent(domain.FlightEventPassengerAdded, f, &passenger))
	return f, nil
}

// RemovePassenger reports how many passengers were removed. Removing an id
// that is not on the manifest succeeds, changes nothing and emits no event.
func (s *FlightService) RemovePassenger(ctx context.Context, flightNumber, passengerID string) (domain.Flight, int, error) {
	f, removed, err := s.registry.RemovePassenger(flightNumber, passengerID)
	if err != nil {
		return domain.Flight{}, 0, s.fail("remove_passenger", err)
	}
	if removed == 0 {
		s.metrics.Observe("remove_passenger", metrics.ResultOK)
		return f, 0, nil
	}
	s.log.Info("removed passenger", zap.String("flight_number", flightNumber), zap.String("passenger_id", passengerID), zap.Int("removed", removed))
	s.changed(ctx, "remove_passenger", s.newEvent(domain.FlightEventPassengerRemoved, f, &domain.Passenger{ID: passengerID}))
	return f, removed, nil
}

func (s *FlightService) PassengerReport(ctx context.Context, flightNumber string) (string, error) {
	f, err := s.GetFlight(ctx, flightNumber)
	if err != nil {
		return "", err
	}
	return report.String(func(w io.Writer) error { return report.Passengers(w, f) }), nil
}

func (s *FlightService) StatusReport(ctx context.Context, status string) (string, error) {
	flights, err := s.QueryByStatus(ctx, status)
	if err != nil {
		return "", err
	}
	return report.String(func(w io.Writer) error { return report.ByStatus(w, status, flights) }), nil
}

func (s *FlightService) DateReport(ctx context.Context, date string, isDeparture bool) (string, error) {
	flights, err := s.QueryByDate(ctx, date, isDeparture)
	if err != nil {
		return "", err
	}
	return report.String(func(w io.Writer) error { return report.ByDate(w, date, isDeparture, flights) }), nil
}

func (s *FlightService) History(ctx context.Context, flightNumber string) ([]domain.FlightEvent, error) {
	if s.journal == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	events, err := s.journal.ListByFlight(ctx, flightNumber)
	if err != nil {
		return nil, s.fail("history", err)
	}
	return events, nil
}

// cached reads the generation before running the query, so an entry written under
// generation g never predates g. A result stored late after a mutation lands
// under a generation nobody asks for again.
func (s *FlightService) cached(ctx context.Context, op, query string, run func() []domain.Flight) ([]domain.Flight, error) {
	key := s.cacheKey(s.registry.Generation(), query)
	if s.cache != nil {
		hit, err := s.cache.GetFlights(ctx, key)
		if err != nil {
			s.log.Warn("query cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit != nil {
			s.metrics.Observe(op, metrics.ResultOK)
			return hit, nil
		}
	}

	flights := run()
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, key, flights); err != nil {
			s.log.Warn("query cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	s.metrics.Observe(op, metrics.ResultOK)
	return flights, nil
}

func (s *FlightService) cacheKey(generation uint64, query string) string {
	return fmt.Sprintf("%s:%d:%s", s.instance, generation, query)
}

func (s *FlightService) newEvent(t domain.FlightEventType, f domain.Flight, p *domain.Passenger) domain.FlightEvent {
	return domain.FlightEvent{
		ID:           uuid.NewString(),
		Type:         t,
		FlightNumber: f.FlightNumber,
		Status:       f.Status,
		Origin:       f.Origin,
		Destination:  f.Destination,
		Departure:    strings.TrimSpace(f.DepartureDate + " " + f.DepartureTime),
		Passengers:   f.Clone().Passengers,
		Passenger:    p,
		OccurredAt:   s.now().UTC(),
	}
}

func (s *FlightService) changed(ctx context.Context, op string, event domain.FlightEvent) {
	s.metrics.Observe(op, metrics.ResultOK)
	s.metrics.SetFlights(s.registry.Len())

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn("query cache invalidation failed", zap.Error(err))
		}
	}
	if s.journal != nil {
		if err := s.journal.Append(ctx, event); err != nil {
			s.log.Warn("journal append failed", zap.String("event_id", event.ID), zap.Error(err))
		}
	}
	if err := s.publish(ctx, event); err != nil {
		s.log.Warn("publish flight event failed",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

func (s *FlightService) publish(ctx context.Context, event domain.FlightEvent) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	if err := s.producer.PublishWithRetry(ctx, s.eventsTopic, event.FlightNumber, event, s.publishAttempts); err != nil {
		return err
	}
	if s.notificationsTopic != "" && event.Notifiable() {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, event.FlightNumber, event, s.publishAttempts)
	}
	return nil
}

func (s *FlightService) fail(op string, err error) error {
	result := metrics.ResultError
	switch {
	case errors.Is(err, domain.ErrFlightExists):
		result = metrics.ResultConflict
	case errors.Is(err, domain.ErrFlightNotFound):
		result = metrics.ResultNotFound
	case errors.Is(err, domain.ErrFlightNumberMismatch):
		result = metrics.ResultInvalid
	}
	s.metrics.Observe(op, result)
	s.log.Debug("registry operation rejected", zap.String("operation", op), zap.Error(err))
	return err
}

var _ FlightUseCase = (*FlightService)(nil)
