package staff

import (
	"time"

	"github.com/flightbase-api/internal/http/handlers/shared"
	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Catalog write endpoints. All of them sit behind JWT auth plus an
// Operator capability check in the router.

// AirportRequest is the airport write payload.
type AirportRequest struct {
	IATA string `json:"iata" binding:"required"`
	ICAO string `json:"icao" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateAirport inserts an airport.
func (h *Handler) CreateAirport(c *gin.Context) {
	var req AirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airport, err := h.AirportService.Create(service.AirportInput(req))
	if err != nil {
		respondWriteError(c, err, "create airport")
		return
	}
	response.Success(c, airport)
}

// UpdateAirport replaces an airport.
func (h *Handler) UpdateAirport(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req AirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airport, err := h.AirportService.Update(id, service.AirportInput(req))
	if err != nil {
		respondWriteError(c, err, "update airport")
		return
	}
	response.Success(c, airport)
}

// DeleteAirport removes an airport.
func (h *Handler) DeleteAirport(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AirportService.Delete(id); err != nil {
		respondWriteError(c, err, "delete airport")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// AirlineRequest is the airline write payload.
type AirlineRequest struct {
	IATA          string `json:"iata" binding:"required"`
	Name          string `json:"airline_name" binding:"required"`
	BaseAirportID uint   `json:"base_airport" binding:"required"`
}

// CreateAirline inserts an airline.
func (h *Handler) CreateAirline(c *gin.Context) {
	var req AirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airline, err := h.AirlineService.Create(service.AirlineInput(req))
	if err != nil {
		respondWriteError(c, err, "create airline")
		return
	}
	response.Success(c, airline)
}

// UpdateAirline replaces an airline.
func (h *Handler) UpdateAirline(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req AirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airline, err := h.AirlineService.Update(id, service.AirlineInput(req))
	if err != nil {
		respondWriteError(c, err, "update airline")
		return
	}
	response.Success(c, airline)
}

// DeleteAirline removes an airline.
func (h *Handler) DeleteAirline(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AirlineService.Delete(id); err != nil {
		respondWriteError(c, err, "delete airline")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// AirplaneRequest is the airplane write payload.
type AirplaneRequest struct {
	Capacity  int  `json:"capacity" binding:"required"`
	TypeID    uint `json:"type_id" binding:"required"`
	AirlineID uint `json:"airline_id" binding:"required"`
}

// CreateAirplane inserts an airplane.
func (h *Handler) CreateAirplane(c *gin.Context) {
	var req AirplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airplane, err := h.AirplaneService.Create(service.AirplaneInput(req))
	if err != nil {
		respondWriteError(c, err, "create airplane")
		return
	}
	response.Success(c, airplane)
}

// UpdateAirplane replaces an airplane.
func (h *Handler) UpdateAirplane(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req AirplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airplane, err := h.AirplaneService.Update(id, service.AirplaneInput(req))
	if err != nil {
		respondWriteError(c, err, "update airplane")
		return
	}
	response.Success(c, airplane)
}

// DeleteAirplane removes an airplane.
func (h *Handler) DeleteAirplane(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AirplaneService.Delete(id); err != nil {
		respondWriteError(c, err, "delete airplane")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// AirplaneTypeRequest is the airframe type write payload.
type AirplaneTypeRequest struct {
	Identifier  string `json:"identifier" binding:"required"`
	Description string `json:"description"`
}

// CreateAirplaneType inserts an airframe type.
func (h *Handler) CreateAirplaneType(c *gin.Context) {
	var req AirplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airplaneType, err := h.AirplaneService.CreateType(service.AirplaneTypeInput(req))
	if err != nil {
		respondWriteError(c, err, "create airplane type")
		return
	}
	response.Success(c, airplaneType)
}

// UpdateAirplaneType replaces an airframe type.
func (h *Handler) UpdateAirplaneType(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req AirplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	airplaneType, err := h.AirplaneService.UpdateType(id, service.AirplaneTypeInput(req))
	if err != nil {
		respondWriteError(c, err, "update airplane type")
		return
	}
	response.Success(c, airplaneType)
}

// DeleteAirplaneType removes an airframe type.
func (h *Handler) DeleteAirplaneType(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AirplaneService.DeleteType(id); err != nil {
		respondWriteError(c, err, "delete airplane type")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// FlightRequest is the flight write payload.
type FlightRequest struct {
	FlightNo   string `json:"flightno" binding:"required"`
	FromID     uint   `json:"from" binding:"required"`
	ToID       uint   `json:"to" binding:"required"`
	Departure  string `json:"departure" binding:"required"`
	Arrival    string `json:"arrival" binding:"required"`
	AirlineID  uint   `json:"airline_id" binding:"required"`
	AirplaneID uint   `json:"airplane_id" binding:"required"`
}

// CreateFlight inserts a flight.
func (h *Handler) CreateFlight(c *gin.Context) {
	var req FlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	flight, err := h.FlightService.Create(service.FlightInput(req))
	if err != nil {
		respondWriteError(c, err, "create flight")
		return
	}
	response.Success(c, flight)
}

// UpdateFlight replaces a flight.
func (h *Handler) UpdateFlight(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req FlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	flight, err := h.FlightService.Update(id, service.FlightInput(req))
	if err != nil {
		respondWriteError(c, err, "update flight")
		return
	}
	response.Success(c, flight)
}

// DeleteFlight removes a flight.
func (h *Handler) DeleteFlight(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.FlightService.Delete(id); err != nil {
		respondWriteError(c, err, "delete flight")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// FlightScheduleRequest is the schedule write payload.
type FlightScheduleRequest struct {
	FlightNo  string    `json:"flightno" binding:"required"`
	FromID    uint      `json:"from" binding:"required"`
	ToID      uint      `json:"to" binding:"required"`
	Departure time.Time `json:"departure" binding:"required"`
	Arrival   time.Time `json:"arrival" binding:"required"`
	AirlineID uint      `json:"airline_id" binding:"required"`
	Monday    bool      `json:"monday"`
	Tuesday   bool      `json:"tuesday"`
	Wednesday bool      `json:"wednesday"`
	Thursday  bool      `json:"thursday"`
	Friday    bool      `json:"friday"`
	Saturday  bool      `json:"saturday"`
	Sunday    bool      `json:"sunday"`
}

func (r FlightScheduleRequest) toModel() *models.FlightSchedule {
	return &models.FlightSchedule{
		FlightNo:  r.FlightNo,
		FromID:    r.FromID,
		ToID:      r.ToID,
		Departure: r.Departure,
		Arrival:   r.Arrival,
		AirlineID: r.AirlineID,
		Monday:    r.Monday,
		Tuesday:   r.Tuesday,
		Wednesday: r.Wednesday,
		Thursday:  r.Thursday,
		Friday:    r.Friday,
		Saturday:  r.Saturday,
		Sunday:    r.Sunday,
	}
}

// CreateFlightSchedule inserts a schedule.
func (h *Handler) CreateFlightSchedule(c *gin.Context) {
	var req FlightScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	schedule, err := h.FlightScheduleService.Create(req.toModel())
	if err != nil {
		respondWriteError(c, err, "create flight schedule")
		return
	}
	response.Success(c, schedule)
}

// UpdateFlightSchedule replaces a schedule.
func (h *Handler) UpdateFlightSchedule(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req FlightScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	schedule, err := h.FlightScheduleService.Update(id, req.toModel())
	if err != nil {
		respondWriteError(c, err, "update flight schedule")
		return
	}
	response.Success(c, schedule)
}

// DeleteFlightSchedule removes a schedule.
func (h *Handler) DeleteFlightSchedule(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.FlightScheduleService.Delete(id); err != nil {
		respondWriteError(c, err, "delete flight schedule")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// PassengerRequest is the passenger write payload.
type PassengerRequest struct {
	FirstName  string `json:"firstname" binding:"required"`
	LastName   string `json:"lastname" binding:"required"`
	PassportNo string `json:"passportno" binding:"required"`
}

// CreatePassenger inserts a passenger.
func (h *Handler) CreatePassenger(c *gin.Context) {
	var req PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	passenger, err := h.PassengerService.Create(service.PassengerInput(req))
	if err != nil {
		respondWriteError(c, err, "create passenger")
		return
	}
	response.Success(c, passenger)
}

// UpdatePassenger replaces a passenger.
func (h *Handler) UpdatePassenger(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	passenger, err := h.PassengerService.Update(id, service.PassengerInput(req))
	if err != nil {
		respondWriteError(c, err, "update passenger")
		return
	}
	response.Success(c, passenger)
}

// DeletePassenger removes a passenger.
func (h *Handler) DeletePassenger(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.PassengerService.Delete(id); err != nil {
		respondWriteError(c, err, "delete passenger")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// BookingRequest is the booking write payload.
type BookingRequest struct {
	FlightID    uint            `json:"flight_id" binding:"required"`
	PassengerID uint            `json:"passenger_id" binding:"required"`
	Seat        string          `json:"seat" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// CreateBooking inserts a booking.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	booking, err := h.BookingService.Create(service.BookingInput(req))
	if err != nil {
		respondWriteError(c, err, "create booking")
		return
	}
	response.Success(c, booking)
}

// UpdateBooking replaces a booking.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	booking, err := h.BookingService.Update(id, service.BookingInput(req))
	if err != nil {
		respondWriteError(c, err, "update booking")
		return
	}
	response.Success(c, booking)
}

// DeleteBooking removes a booking.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.BookingService.Delete(id); err != nil {
		respondWriteError(c, err, "delete booking")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
