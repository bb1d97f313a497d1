package domain

import "errors"

var (
	ErrFlightExists         = errors.New("flight already exists")
	ErrFlightNotFound       = errors.New("flight not found")
	ErrFlightNumberMismatch = errors.New("flight number does not match")
	ErrHistoryUnavailable   = errors.New("flight history is not configured")
)
