package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/flightbase-api/internal/logger"
	"github.com/flightbase-api/internal/provider"
	"github.com/flightbase-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles asynchronous tasks produced by the API.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer over the shared container.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register binds task handlers onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskStaffLoginLog, c.handleStaffLoginLog)
	mux.HandleFunc(queue.TaskStaffAccountLocked, c.handleStaffAccountLocked)
}

func (c *Consumer) handleStaffLoginLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_staff_login_log_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.StaffLoginLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_staff_login_log_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.Username) == "" {
		logger.Debugw("worker_staff_login_log_skip_empty_username")
		return nil
	}
	if c.LoginLogService == nil {
		logger.Warnw("worker_staff_login_log_skip_service_nil", "username", payload.Username)
		return nil
	}
	if err := c.LoginLogService.Persist(payload); err != nil {
		logger.Warnw("worker_staff_login_log_persist_failed",
			"staff_id", payload.StaffID,
			"username", payload.Username,
			"status", payload.Status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleStaffAccountLocked(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_staff_account_locked_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.StaffAccountLockedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_staff_account_locked_unmarshal_failed", "error", err)
		return err
	}
	if payload.StaffID == 0 {
		logger.Debugw("worker_staff_account_locked_skip_invalid_payload", "staff_id", payload.StaffID)
		return nil
	}
	staff, err := c.StaffRepo.GetByID(payload.StaffID)
	if err != nil {
		logger.Warnw("worker_staff_account_locked_fetch_failed", "staff_id", payload.StaffID, "error", err)
		return err
	}
	if staff == nil {
		logger.Debugw("worker_staff_account_locked_skip_not_found", "staff_id", payload.StaffID)
		return nil
	}
	// The alert channel is the structured log stream. Operations tooling
	// picks up staff_account_locked_alert entries.
	logger.Warnw("staff_account_locked_alert",
		"staff_id", payload.StaffID,
		"username", payload.Username,
		"locked_until", payload.LockedUntil,
		"email", staff.Email,
	)
	return nil
}
