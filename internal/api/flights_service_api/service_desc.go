package flights_service_api

import (
	"context"

	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "airport.v1.FlightRegistryService"

// FlightRegistryServer is the server API of airport.v1.FlightRegistryService.
// Flights travel as google.protobuf.Struct using the JSON field names of domain.Flight.
type FlightRegistryServer interface {
	AddFlight(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateFlight(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteFlight(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	GetFlight(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	QueryFlights(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	AddPassenger(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemovePassenger(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PassengerReport(context.Context, *wrapperspb.StringValue) (*httpbody.HttpBody, error)
}

func RegisterFlightRegistryServer(s grpc.ServiceRegistrar, srv FlightRegistryServer) {
	s.RegisterService(&FlightRegistryServiceDesc, srv)
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

var FlightRegistryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FlightRegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddFlight", Handler: unary("AddFlight", func() *structpb.Struct { return new(structpb.Struct) }, FlightRegistryServer.AddFlight)},
		{MethodName: "UpdateFlight", Handler: unary("UpdateFlight", func() *structpb.Struct { return new(structpb.Struct) }, FlightRegistryServer.UpdateFlight)},
		{MethodName: "DeleteFlight", Handler: unary("DeleteFlight", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }, FlightRegistryServer.DeleteFlight)},
		{MethodName: "GetFlight", Handler: unary("GetFlight", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }, FlightRegistryServer.GetFlight)},
		{MethodName: "QueryFlights", Handler: unary("QueryFlights", func() *structpb.Struct { return new(structpb.Struct) }, FlightRegistryServer.QueryFlights)},
		{MethodName: "AddPassenger", Handler: unary("AddPassenger", func() *structpb.Struct { return new(structpb.Struct) }, FlightRegistryServer.AddPassenger)},
		{MethodName: "RemovePassenger", Handler: unary("RemovePassenger", func() *structpb.Struct { return new(structpb.Struct) }, FlightRegistryServer.RemovePassenger)},
		{MethodName: "PassengerReport", Handler: unary("PassengerReport", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }, FlightRegistryServer.PassengerReport)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airport/v1/flights.proto",
}

func unary[Req any, Resp any](method string, newReq func() *Req, call func(FlightRegistryServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FlightRegistryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(FlightRegistryServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
