package public

import (
	"errors"
	"time"

	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/http/handlers/shared"
	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a staff member and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recordStaffLogin(c, req.Username, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonBadRequest)
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	staff, token, expiresAt, err := h.AuthService.Authenticate(req.Username, req.Password)
	if err != nil {
		var locked *service.AccountLockedError
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			h.recordStaffLogin(c, req.Username, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonBadRequest)
			respondError(c, response.CodeBadRequest, "username and password are required", nil)
		case errors.As(err, &locked):
			h.recordStaffLogin(c, req.Username, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonAccountLocked)
			respondErrorWithData(c, response.CodeAccountLocked, "account locked", gin.H{
				"locked_until": locked.Until.Format(time.RFC3339),
			}, nil)
		case errors.Is(err, service.ErrAccountInactive):
			h.recordStaffLogin(c, req.Username, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonAccountInactive)
			respondError(c, response.CodeForbidden, "account is not active", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.recordStaffLogin(c, req.Username, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonInvalidCredentials)
			respondError(c, response.CodeUnauthorized, "invalid username or password", nil)
		default:
			h.recordStaffLogin(c, req.Username, 0, constants.LoginLogStatusFailed, constants.LoginLogFailReasonInternalError)
			respondError(c, response.CodeInternal, "login failed", err)
		}
		return
	}

	h.recordStaffLogin(c, staff.Username, staff.ID, constants.LoginLogStatusSuccess, "")
	response.Success(c, gin.H{
		"staff":      staffSummary(staff),
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AirportID *uint  `json:"airport_id"`
	AirlineID *uint  `json:"airline_id"`
}

// Register creates an inactive operator account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	staff, err := h.AuthService.Register(service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AirportID: req.AirportID,
		AirlineID: req.AirlineID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "invalid username or email", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrUsernameExists):
			respondError(c, response.CodeConflict, "username already exists", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeConflict, "email already exists", nil)
		default:
			respondError(c, response.CodeInternal, "registration failed", err)
		}
		return
	}

	response.Success(c, staffSummary(staff))
}

func (h *Handler) recordStaffLogin(c *gin.Context, username string, staffID uint, status, failReason string) {
	if h.LoginLogService == nil {
		return
	}
	requestID := ""
	if value, ok := c.Get(shared.ContextRequestIDKey); ok {
		if id, ok := value.(string); ok {
			requestID = id
		}
	}
	if err := h.LoginLogService.Record(service.RecordStaffLoginInput{
		StaffID:    staffID,
		Username:   username,
		Status:     status,
		FailReason: failReason,
		ClientIP:   c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		RequestID:  requestID,
	}); err != nil {
		shared.RequestLog(c).Warnw("staff_login_log_record_failed", "error", err)
	}
}

// staffSummary strips credentials and lockout bookkeeping from a staff
// record before it leaves the API.
func staffSummary(staff *models.Staff) gin.H {
	return gin.H{
		"staff_id":   staff.ID,
		"username":   staff.Username,
		"email":      staff.Email,
		"first_name": staff.FirstName,
		"last_name":  staff.LastName,
		"role":       staff.Role,
		"airport_id": staff.AirportID,
		"airline_id": staff.AirlineID,
		"is_active":  staff.IsActive,
		"last_login": staff.LastLogin,
	}
}
