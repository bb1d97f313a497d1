package flights_service_api

import (
	"context"
	"net"
	"testing"

	"github.com/Domenick1991/airport/internal/registry"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterFlightRegistryServer(srv, NewServer(flights.NewFlightService(registry.New(), zap.NewNop())))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func mustStruct(t *testing.T, m map[string]interface{}) *structpb.Struct {
	t.Helper()
	st, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return st
}

func aa100(status string) map[string]interface{} {
	return map[string]interface{}{
		"flight_number":  "AA100",
		"origin":         "JFK",
		"destination":    "LAX",
		"departure_date": "2024-05-01",
		"departure_time": "08:00",
		"arrival_date":   "2024-05-01",
		"arrival_time":   "11:30",
		"status":         status,
	}
}

func TestServer_FlightLifecycle(t *testing.T) {
	conn := dial(t)
	ctx := context.Background()

	created := &structpb.Struct{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("AddFlight"), mustStruct(t, aa100("scheduled")), created))
	assert.Equal(t, "JFK", created.Fields["origin"].GetStringValue())
	require.NotNil(t, created.Fields["passengers"].GetListValue(), "empty manifest is a list, not null")
	assert.Empty(t, created.Fields["passengers"].GetListValue().GetValues())

	err := conn.Invoke(ctx, FullMethod("AddFlight"), mustStruct(t, aa100("cancelled")), &structpb.Struct{})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got := &structpb.Struct{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("GetFlight"), wrapperspb.String("AA100"), got))
	assert.Equal(t, "scheduled", got.Fields["status"].GetStringValue())

	updated := &structpb.Struct{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("UpdateFlight"), mustStruct(t, map[string]interface{}{
		"flight_number": "AA100",
		"flight":        aa100("cancelled"),
	}), updated))
	assert.Equal(t, "cancelled", updated.Fields["status"].GetStringValue())

	err = conn.Invoke(ctx, FullMethod("UpdateFlight"), mustStruct(t, map[string]interface{}{
		"flight_number": "AA100",
		"flight":        map[string]interface{}{"flight_number": "BB200"},
	}), &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	require.NoError(t, conn.Invoke(ctx, FullMethod("DeleteFlight"), wrapperspb.String("AA100"), &emptypb.Empty{}))

	err = conn.Invoke(ctx, FullMethod("GetFlight"), wrapperspb.String("AA100"), &structpb.Struct{})
	assert.Equal(t, codes.NotFound, status.Code(err))
	err = conn.Invoke(ctx, FullMethod("DeleteFlight"), wrapperspb.String("AA100"), &emptypb.Empty{})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_QueryFlights(t *testing.T) {
	conn := dial(t)
	ctx := context.Background()

	require.NoError(t, conn.Invoke(ctx, FullMethod("AddFlight"), mustStruct(t, aa100("scheduled")), &structpb.Struct{}))
	aa200 := aa100("cancelled")
	aa200["flight_number"] = "AA200"
	aa200["arrival_date"] = "2024-05-02"
	require.NoError(t, conn.Invoke(ctx, FullMethod("AddFlight"), mustStruct(t, aa200), &structpb.Struct{}))

	byStatus := &structpb.ListValue{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("QueryFlights"), mustStruct(t, map[string]interface{}{"status": "scheduled"}), byStatus))
	require.Len(t, byStatus.Values, 1)
	assert.Equal(t, "AA100", byStatus.Values[0].GetStructValue().Fields["flight_number"].GetStringValue())

	byArrival := &structpb.ListValue{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("QueryFlights"), mustStruct(t, map[string]interface{}{"arrival_date": "2024-05-02"}), byArrival))
	require.Len(t, byArrival.Values, 1)
	assert.Equal(t, "AA200", byArrival.Values[0].GetStructValue().Fields["flight_number"].GetStringValue())

	all := &structpb.ListValue{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("QueryFlights"), &structpb.Struct{}, all))
	assert.Len(t, all.Values, 2)
}

func TestServer_Passengers(t *testing.T) {
	conn := dial(t)
	ctx := context.Background()

	require.NoError(t, conn.Invoke(ctx, FullMethod("AddFlight"), mustStruct(t, aa100("scheduled")), &structpb.Struct{}))

	withBob := &structpb.Struct{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("AddPassenger"), mustStruct(t, map[string]interface{}{
		"flight_number": "AA100",
		"passenger":     map[string]interface{}{"id": "P1", "name": "Bob", "email": "bob@example.com"},
	}), withBob))
	assert.Len(t, withBob.Fields["passengers"].GetListValue().GetValues(), 1)

	report := &httpbody.HttpBody{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("PassengerReport"), wrapperspb.String("AA100"), report))
	assert.Equal(t, "Passengers for flight AA100:\nID: P1, Name: Bob, Email: bob@example.com\n", string(report.Data))

	without := &structpb.Struct{}
	require.NoError(t, conn.Invoke(ctx, FullMethod("RemovePassenger"), mustStruct(t, map[string]interface{}{
		"flight_number": "AA100",
		"passenger_id":  "P1",
	}), without))
	assert.Empty(t, without.Fields["passengers"].GetListValue().GetValues())

	err := conn.Invoke(ctx, FullMethod("AddPassenger"), mustStruct(t, map[string]interface{}{
		"flight_number": "ZZ999",
		"passenger":     map[string]interface{}{"id": "P1"},
	}), &structpb.Struct{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	err = conn.Invoke(ctx, FullMethod("PassengerReport"), wrapperspb.String("ZZ999"), &httpbody.HttpBody{})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
