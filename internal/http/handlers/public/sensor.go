package public

import (
	"errors"

	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSensorReading returns a simulated runway sensor reading.
func (h *Handler) GetSensorReading(c *gin.Context) {
	reading, err := h.SensorService.Generate(c.Param("airportCode"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, response.CodeBadRequest, "invalid airport code", nil)
			return
		}
		respondError(c, response.CodeInternal, "sensor reading failed", err)
		return
	}
	response.Success(c, reading)
}
