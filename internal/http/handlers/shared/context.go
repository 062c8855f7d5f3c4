package shared

import (
	"strconv"

	"github.com/flightbase-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth and request-id middleware.
const (
	ContextRequestIDKey     = "request_id"
	ContextStaffIDKey       = "staff_id"
	ContextStaffUsernameKey = "staff_username"
	ContextStaffRoleKey     = "staff_role"
)

// CurrentStaffID reads the authenticated staff id. Responds
// unauthorized and returns false when absent.
func CurrentStaffID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextStaffIDKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "unauthorized", nil)
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeUnauthorized, "unauthorized", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, "invalid identity context", nil)
		return 0, false
	}
}

// CurrentStaffRole reads the authenticated staff role, or "".
func CurrentStaffRole(c *gin.Context) string {
	if value, ok := c.Get(ContextStaffRoleKey); ok {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// CurrentStaffUsername reads the authenticated username, or "".
func CurrentStaffUsername(c *gin.Context) string {
	if value, ok := c.Get(ContextStaffUsernameKey); ok {
		if username, ok := value.(string); ok {
			return username
		}
	}
	return ""
}

// ParseIDParam parses a positive :id path parameter. Responds
// bad-request and returns false on garbage.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
