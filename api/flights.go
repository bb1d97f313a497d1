package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	FlightNumber  string             `json:"flight_number"`
	Origin        string             `json:"origin"`
	Destination   string             `json:"destination"`
	DepartureDate string             `json:"departure_date"`
	DepartureTime string             `json:"departure_time"`
	ArrivalDate   string             `json:"arrival_date"`
	ArrivalTime   string             `json:"arrival_time"`
	Status        string             `json:"status"`
	Passengers    []domain.Passenger `json:"passengers"`
}

func (r flightRequest) toDomain() domain.Flight {
	return domain.Flight{
		FlightNumber:  r.FlightNumber,
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		DepartureTime: r.DepartureTime,
		ArrivalDate:   r.ArrivalDate,
		ArrivalTime:   r.ArrivalTime,
		Status:        r.Status,
		Passengers:    r.Passengers,
	}.WithManifest()
}

type passengerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type removePassengerResponse struct {
	Flight  domain.Flight `json:"flight"`
	Removed int           `json:"removed"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:number", h.get)
	router.PUT("/:number", h.update)
	router.DELETE("/:number", h.delete)
	router.GET("/:number/events", h.history)
	router.POST("/:number/passengers", h.addPassenger)
	router.DELETE("/:number/passengers/:passenger_id", h.removePassenger)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FlightNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "flight_number is required"})
		return
	}

	flight, err := h.service.AddFlight(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

// list answers GET /flights, optionally filtered by status, departure_date or
// arrival_date. The first filter present wins.
func (h *FlightHandler) list(c *gin.Context) {
	var (
		result []domain.Flight
		err    error
	)
	ctx := c.Request.Context()
	if status, ok := c.GetQuery("status"); ok {
		result, err = h.service.QueryByStatus(ctx, status)
	} else if date, ok := c.GetQuery("departure_date"); ok {
		result, err = h.service.QueryByDate(ctx, date, true)
	} else if date, ok := c.GetQuery("arrival_date"); ok {
		result, err = h.service.QueryByDate(ctx, date, false)
	} else {
		result, err = h.service.List(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetFlight(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// update replaces the flight wholesale; passengers not present in the body are dropped.
func (h *FlightHandler) update(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.UpdateFlight(c.Request.Context(), c.Param("number"), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	if err := h.service.DeleteFlight(c.Request.Context(), c.Param("number")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) history(c *gin.Context) {
	events, err := h.service.History(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []domain.FlightEvent{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *FlightHandler) addPassenger(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.AddPassenger(c.Request.Context(), c.Param("number"), domain.Passenger{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) removePassenger(c *gin.Context) {
	flight, removed, err := h.service.RemovePassenger(c.Request.Context(), c.Param("number"), c.Param("passenger_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, removePassengerResponse{Flight: flight, Removed: removed})
}
