package public

import (
	"errors"

	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetWeather proxies current weather for an airport code.
func (h *Handler) GetWeather(c *gin.Context) {
	report, err := h.WeatherService.Get(c.Request.Context(), c.Param("airportCode"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "invalid airport code", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "weather data not available", nil)
		default:
			respondError(c, response.CodeInternal, "weather lookup failed", err)
		}
		return
	}
	response.Success(c, report)
}
