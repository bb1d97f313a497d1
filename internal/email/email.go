package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"go.uber.org/zap"
)

type Notice struct {
	To      string
	Subject string
	Body    string
}

// Sender turns flight events into passenger notices. Delivery is a log line;
// there is no mail transport behind it.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event domain.FlightEvent) error {
	for _, n := range Notices(event) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.log.Info("send email",
			zap.String("to", n.To),
			zap.String("subject", n.Subject),
			zap.String("flight_number", event.FlightNumber),
			zap.String("event_id", event.ID),
		)
	}
	return nil
}

// Notices lists who hears about event and what they are told. Passengers
// without an email address are skipped.
func Notices(event domain.FlightEvent) []Notice {
	var out []Notice
	switch event.Type {
	case domain.FlightEventUpdated:
		subject := fmt.Sprintf("Flight %s has been updated", event.FlightNumber)
		body := fmt.Sprintf("Flight %s from %s to %s now departs %s. Status: %s.",
			event.FlightNumber, event.Origin, event.Destination, event.Departure, event.Status)
		if event.Status == domain.FlightStatusCancelled {
			subject = fmt.Sprintf("Flight %s has been cancelled", event.FlightNumber)
			body = fmt.Sprintf("Flight %s from %s to %s has been cancelled.", event.FlightNumber, event.Origin, event.Destination)
		}
		for _, p := range event.Passengers {
			if p.Email == "" {
				continue
			}
			out = append(out, Notice{To: p.Email, Subject: subject, Body: fmt.Sprintf("Dear %s, %s", p.Name, body)})
		}
	case domain.FlightEventPassengerAdded:
		if event.Passenger == nil || event.Passenger.Email == "" {
			return nil
		}
		out = append(out, Notice{
			To:      event.Passenger.Email,
			Subject: fmt.Sprintf("You are booked on flight %s", event.FlightNumber),
			Body: fmt.Sprintf("Dear %s, you are on the manifest of flight %s from %s to %s departing %s.",
				event.Passenger.Name, event.FlightNumber, event.Origin, event.Destination, event.Departure),
		})
	}
	return out
}
