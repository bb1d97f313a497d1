// Package apierrors maps registry errors onto gRPC codes and HTTP statuses so
// both transports report the same condition the same way.
package apierrors

import (
	"context"
	"errors"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, domain.ErrFlightExists):
		return codes.AlreadyExists
	case errors.Is(err, domain.ErrFlightNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrFlightNumberMismatch):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrHistoryUnavailable):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Internal
}

// HTTPStatus follows the grpc-gateway code mapping.
func HTTPStatus(err error) int {
	return runtime.HTTPStatusFromCode(Code(err))
}

// Status converts err into a gRPC status error.
func Status(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}
