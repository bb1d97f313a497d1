package flights_service_api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/airport/internal/api/apierrors"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/flights"
	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements FlightRegistryServer on top of the flight use case.
type Server struct {
	flights flights.FlightUseCase
}

func NewServer(flights flights.FlightUseCase) *Server {
	return &Server{flights: flights}
}

// AddFlight takes the flight itself as the request struct.
func (s *Server) AddFlight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in domain.Flight
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	created, err := s.flights.AddFlight(ctx, in.WithManifest())
	if err != nil {
		return nil, apierrors.Status(err)
	}
	return toStruct(created)
}

type updateFlightRequest struct {
	FlightNumber string        `json:"flight_number"`
	Flight       domain.Flight `json:"flight"`
}

func (s *Server) UpdateFlight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateFlightRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	if in.FlightNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "flight_number is required")
	}
	updated, err := s.flights.UpdateFlight(ctx, in.FlightNumber, in.Flight.WithManifest())
	if err != nil {
		return nil, apierrors.Status(err)
	}
	return toStruct(updated)
}

func (s *Server) DeleteFlight(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.flights.DeleteFlight(ctx, req.GetValue()); err != nil {
		return nil, apierrors.Status(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) GetFlight(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	flight, err := s.flights.GetFlight(ctx, req.GetValue())
	if err != nil {
		return nil, apierrors.Status(err)
	}
	return toStruct(flight)
}

type queryFlightsRequest struct {
	Status        string `json:"status"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`
}

// QueryFlights filters by one of status, departure_date or arrival_date; with
// none set it lists every flight.
func (s *Server) QueryFlights(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	var in queryFlightsRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}

	var (
		list []domain.Flight
		err  error
	)
	switch {
	case in.Status != "":
		list, err = s.flights.QueryByStatus(ctx, in.Status)
	case in.DepartureDate != "":
		list, err = s.flights.QueryByDate(ctx, in.DepartureDate, true)
	case in.ArrivalDate != "":
		list, err = s.flights.QueryByDate(ctx, in.ArrivalDate, false)
	default:
		list, err = s.flights.List(ctx)
	}
	if err != nil {
		return nil, apierrors.Status(err)
	}

	resp := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(list))}
	for _, f := range list {
		st, err := toStruct(f)
		if err != nil {
			return nil, err
		}
		resp.Values = append(resp.Values, structpb.NewStructValue(st))
	}
	return resp, nil
}

type addPassengerRequest struct {
	FlightNumber string           `json:"flight_number"`
	Passenger    domain.Passenger `json:"passenger"`
}

func (s *Server) AddPassenger(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in addPassengerRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	flight, err := s.flights.AddPassenger(ctx, in.FlightNumber, in.Passenger)
	if err != nil {
		return nil, apierrors.Status(err)
	}
	return toStruct(flight)
}

type removePassengerRequest struct {
	FlightNumber string `json:"flight_number"`
	PassengerID  string `json:"passenger_id"`
}

func (s *Server) RemovePassenger(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in removePassengerRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	flight, _, err := s.flights.RemovePassenger(ctx, in.FlightNumber, in.PassengerID)
	if err != nil {
		return nil, apierrors.Status(err)
	}
	return toStruct(flight)
}

func (s *Server) PassengerReport(ctx context.Context, req *wrapperspb.StringValue) (*httpbody.HttpBody, error) {
	text, err := s.flights.PassengerReport(ctx, req.GetValue())
	if err != nil {
		return nil, apierrors.Status(err)
	}
	return &httpbody.HttpBody{ContentType: "text/plain; charset=utf-8", Data: []byte(text)}, nil
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	st := &structpb.Struct{}
	if err := protojson.Unmarshal(data, st); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return st, nil
}

func fromStruct(st *structpb.Struct, v interface{}) error {
	data, err := protojson.Marshal(st)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		return status.Error(codes.InvalidArgument, fmt.Sprintf("decode request: %v", err))
	}
	return nil
}

var _ FlightRegistryServer = (*Server)(nil)
