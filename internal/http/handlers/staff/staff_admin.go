package staff

import (
	"errors"
	"strconv"
	"time"

	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/http/handlers/shared"
	"github.com/flightbase-api/internal/http/response"
	"github.com/flightbase-api/internal/repository"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListStaff returns staff accounts. Admin only (enforced by route
// middleware).
func (h *Handler) ListStaff(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.StaffListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    c.Query("keyword"),
		Role:       c.Query("role"),
		ActiveOnly: c.Query("active") == "true",
	}
	if v, err := strconv.ParseUint(c.Query("airport_id"), 10, 32); err == nil {
		filter.AirportID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("airline_id"), 10, 32); err == nil {
		filter.AirlineID = uint(v)
	}

	accounts, total, err := h.StaffService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "list staff failed", err)
		return
	}
	response.SuccessWithPage(c, accounts, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetStaff returns one staff account. Owner or admin.
func (h *Handler) GetStaff(c *gin.Context) {
	actorID, ok := shared.CurrentStaffID(c)
	if !ok {
		return
	}
	targetID, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if actorID != targetID && shared.CurrentStaffRole(c) != constants.RoleAdmin {
		respondError(c, response.CodeForbidden, "forbidden", nil)
		return
	}

	account, err := h.StaffService.Get(targetID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "staff not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "get staff failed", err)
		return
	}
	response.Success(c, account)
}

// UpdateStaffRequest carries optional profile changes.
type UpdateStaffRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AirportID *uint   `json:"airport_id"`
	AirlineID *uint   `json:"airline_id"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateStaff applies profile changes. Owner or admin; role and
// is_active are admin only.
func (h *Handler) UpdateStaff(c *gin.Context) {
	actorID, ok := shared.CurrentStaffID(c)
	if !ok {
		return
	}
	targetID, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	account, err := h.StaffService.Update(actorID, shared.CurrentStaffRole(c), targetID, service.UpdateStaffInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AirportID: req.AirportID,
		AirlineID: req.AirlineID,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeForbidden, "forbidden", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "staff not found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "invalid input", nil)
		case errors.Is(err, service.ErrRelatedNotFound):
			respondError(c, response.CodeBadRequest, "referenced resource does not exist", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeConflict, "email already exists", nil)
		default:
			respondError(c, response.CodeInternal, "update staff failed", err)
		}
		return
	}
	response.Success(c, account)
}

// DeactivateStaff disables an account. Admin only.
func (h *Handler) DeactivateStaff(c *gin.Context) {
	targetID, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	account, err := h.StaffService.Deactivate(targetID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "staff not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "deactivate staff failed", err)
		return
	}
	response.Success(c, account)
}

// ListLoginLogs returns login attempt records. Admin only.
func (h *Handler) ListLoginLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.StaffLoginLogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Username:   c.Query("username"),
		Status:     c.Query("status"),
		FailReason: c.Query("fail_reason"),
		ClientIP:   c.Query("client_ip"),
	}
	if v, err := strconv.ParseUint(c.Query("staff_id"), 10, 32); err == nil {
		filter.StaffID = uint(v)
	}
	if raw := c.Query("created_from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if raw := c.Query("created_to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedTo = &t
		}
	}

	logs, total, err := h.LoginLogService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "list login logs failed", err)
		return
	}
	response.SuccessWithPage(c, logs, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
