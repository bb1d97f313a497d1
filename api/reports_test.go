package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportHandler(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newRouter(mockService)

	mockService.On("PassengerReport", mock.Anything, "AA100").Return("Passengers for flight AA100:\nNo passengers.\n", nil).Once()
	mockService.On("StatusReport", mock.Anything, "scheduled").Return("Flights with status scheduled:\n", nil).Once()
	mockService.On("DateReport", mock.Anything, "2024-05-01", true).Return("Flights with Departure Date 2024-05-01:\n", nil).Once()
	mockService.On("DateReport", mock.Anything, "2024-05-01", false).Return("Flights with Arrival Date 2024-05-01:\n", nil).Once()

	w := do(r, http.MethodGet, "/api/v1/reports/passengers/AA100", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Passengers for flight AA100:\nNo passengers.\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	w = do(r, http.MethodGet, "/api/v1/reports/status/scheduled", nil)
	assert.Equal(t, "Flights with status scheduled:\n", w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/reports/departures/2024-05-01", nil)
	assert.Equal(t, "Flights with Departure Date 2024-05-01:\n", w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/reports/arrivals/2024-05-01", nil)
	assert.Equal(t, "Flights with Arrival Date 2024-05-01:\n", w.Body.String())

	mockService.AssertExpectations(t)
}

func TestReportHandler_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	r := newRouter(mockService)

	mockService.On("PassengerReport", mock.Anything, "ZZ999").Return("", domain.ErrFlightNotFound).Once()

	w := do(r, http.MethodGet, "/api/v1/reports/passengers/ZZ999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"flight not found"}`, w.Body.String())
}
