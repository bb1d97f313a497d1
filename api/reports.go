package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the plain-text reports.
type ReportHandler struct {
	service flights.FlightUseCase
}

func NewReportHandler(service flights.FlightUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/passengers/:number", h.passengers)
	router.GET("/status/:status", h.byStatus)
	router.GET("/departures/:date", h.byDeparture)
	router.GET("/arrivals/:date", h.byArrival)
}

func (h *ReportHandler) passengers(c *gin.Context) {
	text, err := h.service.PassengerReport(c.Request.Context(), c.Param("number"))
	h.respond(c, text, err)
}

func (h *ReportHandler) byStatus(c *gin.Context) {
	text, err := h.service.StatusReport(c.Request.Context(), c.Param("status"))
	h.respond(c, text, err)
}

func (h *ReportHandler) byDeparture(c *gin.Context) {
	text, err := h.service.DateReport(c.Request.Context(), c.Param("date"), true)
	h.respond(c, text, err)
}

func (h *ReportHandler) byArrival(c *gin.Context) {
	text, err := h.service.DateReport(c.Request.Context(), c.Param("date"), false)
	h.respond(c, text, err)
}

func (h *ReportHandler) respond(c *gin.Context, text string, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}
