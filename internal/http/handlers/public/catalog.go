package public

import (
	"errors"
	"strconv"

	"github.com/flightbase-api/internal/http/handlers/shared"
	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/repository"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Read-only catalog endpoints. Anyone may browse the operational data;
// writes live behind authentication in the staff handlers.

// ListAirports returns all airports.
func (h *Handler) ListAirports(c *gin.Context) {
	airports, err := h.AirportService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "list airports failed", err)
		return
	}
	response.Success(c, airports)
}

// GetAirport returns one airport.
func (h *Handler) GetAirport(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	airport, err := h.AirportService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "airport")
		return
	}
	response.Success(c, airport)
}

// ListAirlines returns all airlines.
func (h *Handler) ListAirlines(c *gin.Context) {
	airlines, err := h.AirlineService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "list airlines failed", err)
		return
	}
	response.Success(c, airlines)
}

// GetAirline returns one airline.
func (h *Handler) GetAirline(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	airline, err := h.AirlineService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "airline")
		return
	}
	response.Success(c, airline)
}

// ListAirplanes returns all airplanes.
func (h *Handler) ListAirplanes(c *gin.Context) {
	airplanes, err := h.AirplaneService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "list airplanes failed", err)
		return
	}
	response.Success(c, airplanes)
}

// GetAirplane returns one airplane.
func (h *Handler) GetAirplane(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	airplane, err := h.AirplaneService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "airplane")
		return
	}
	response.Success(c, airplane)
}

// ListAirplaneTypes returns all airframe types.
func (h *Handler) ListAirplaneTypes(c *gin.Context) {
	types, err := h.AirplaneService.ListTypes()
	if err != nil {
		respondError(c, response.CodeInternal, "list airplane types failed", err)
		return
	}
	response.Success(c, types)
}

// GetAirplaneType returns one airframe type.
func (h *Handler) GetAirplaneType(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	airplaneType, err := h.AirplaneService.GetType(id)
	if err != nil {
		respondCatalogReadError(c, err, "airplane type")
		return
	}
	response.Success(c, airplaneType)
}

// ListFlights returns flights, optionally filtered and paged.
func (h *Handler) ListFlights(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.FlightListFilter{
		Page:     page,
		PageSize: pageSize,
		FlightNo: c.Query("flightno"),
	}
	if v, err := strconv.ParseUint(c.Query("from"), 10, 32); err == nil {
		filter.FromID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("to"), 10, 32); err == nil {
		filter.ToID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("airline_id"), 10, 32); err == nil {
		filter.AirlineID = uint(v)
	}

	flights, total, err := h.FlightService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "list flights failed", err)
		return
	}
	response.SuccessWithPage(c, flights, buildPagination(page, pageSize, total))
}

// GetFlight returns one flight.
func (h *Handler) GetFlight(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	flight, err := h.FlightService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "flight")
		return
	}
	response.Success(c, flight)
}

// GetFlightsByFlightNo returns every leg operated under a flight
// number.
func (h *Handler) GetFlightsByFlightNo(c *gin.Context) {
	flights, err := h.FlightService.ListByFlightNo(c.Param("flightno"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, response.CodeBadRequest, "invalid flight number", nil)
			return
		}
		respondError(c, response.CodeInternal, "list flights failed", err)
		return
	}
	response.Success(c, flights)
}

// ListFlightSchedules returns all schedules.
func (h *Handler) ListFlightSchedules(c *gin.Context) {
	schedules, err := h.FlightScheduleService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "list flight schedules failed", err)
		return
	}
	response.Success(c, schedules)
}

// GetFlightSchedule returns one schedule.
func (h *Handler) GetFlightSchedule(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	schedule, err := h.FlightScheduleService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "flight schedule")
		return
	}
	response.Success(c, schedule)
}

// ListPassengers returns all passengers.
func (h *Handler) ListPassengers(c *gin.Context) {
	passengers, err := h.PassengerService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "list passengers failed", err)
		return
	}
	response.Success(c, passengers)
}

// GetPassenger returns one passenger.
func (h *Handler) GetPassenger(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	passenger, err := h.PassengerService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "passenger")
		return
	}
	response.Success(c, passenger)
}

// ListBookings returns bookings, optionally filtered and paged.
func (h *Handler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.BookingListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if v, err := strconv.ParseUint(c.Query("flight_id"), 10, 32); err == nil {
		filter.FlightID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("passenger_id"), 10, 32); err == nil {
		filter.PassengerID = uint(v)
	}

	bookings, total, err := h.BookingService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "list bookings failed", err)
		return
	}
	response.SuccessWithPage(c, bookings, buildPagination(page, pageSize, total))
}

// GetBooking returns one booking.
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := h.BookingService.Get(id)
	if err != nil {
		respondCatalogReadError(c, err, "booking")
		return
	}
	response.Success(c, booking)
}

func respondCatalogReadError(c *gin.Context, err error, entity string) {
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, response.CodeNotFound, entity+" not found", nil)
		return
	}
	respondError(c, response.CodeInternal, "get "+entity+" failed", err)
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}
