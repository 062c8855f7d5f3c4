package staff

import (
	"errors"

	"github.com/flightbase-api/internal/http/handlers/shared"
	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// respondWriteError maps the common catalog write failures.
func respondWriteError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid input", nil)
	case errors.Is(err, service.ErrRelatedNotFound):
		respondError(c, response.CodeBadRequest, "referenced resource does not exist", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "resource not found", nil)
	case errors.Is(err, service.ErrConflict):
		respondError(c, response.CodeConflict, "resource already exists", nil)
	default:
		respondError(c, response.CodeInternal, action+" failed", err)
	}
}
