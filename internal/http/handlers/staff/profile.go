package staff

import (
	"errors"

	"github.com/flightbase-api/internal/http/handlers/shared"
	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Me returns the authenticated staff profile.
func (h *Handler) Me(c *gin.Context) {
	staffID, ok := shared.CurrentStaffID(c)
	if !ok {
		return
	}
	account, err := h.StaffService.Get(staffID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "staff not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load profile failed", err)
		return
	}
	response.Success(c, account)
}

// ChangePasswordRequest is the password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword replaces the caller's own password. Targeting any
// other account is forbidden regardless of role.
func (h *Handler) ChangePassword(c *gin.Context) {
	actorID, ok := shared.CurrentStaffID(c)
	if !ok {
		return
	}
	targetID, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if targetID != actorID {
		respondError(c, response.CodeForbidden, "password can only be changed by the account owner", nil)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if err := h.AuthService.ChangePassword(actorID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "staff not found", nil)
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeUnauthorized, "current password is incorrect", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "change password failed", err)
		}
		return
	}

	response.Success(c, gin.H{"changed": true})
}
