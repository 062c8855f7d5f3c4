package queue

import (
	"encoding/json"
	"time"

	"github.com/flightbase-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskStaffLoginLog persists a login attempt record.
	TaskStaffLoginLog = constants.TaskStaffLoginLog
	// TaskStaffAccountLocked notifies about an account lockout.
	TaskStaffAccountLocked = constants.TaskStaffAccountLocked
)

// StaffLoginLogPayload is the login attempt task payload.
type StaffLoginLogPayload struct {
	StaffID    uint      `json:"staff_id"`
	Username   string    `json:"username"`
	Status     string    `json:"status"`
	FailReason string    `json:"fail_reason"`
	ClientIP   string    `json:"client_ip"`
	UserAgent  string    `json:"user_agent"`
	RequestID  string    `json:"request_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StaffAccountLockedPayload is the lockout notification task payload.
type StaffAccountLockedPayload struct {
	StaffID     uint      `json:"staff_id"`
	Username    string    `json:"username"`
	LockedUntil time.Time `json:"locked_until"`
}

// NewStaffLoginLogTask creates a login attempt task.
func NewStaffLoginLogTask(payload StaffLoginLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStaffLoginLog, body), nil
}

// NewStaffAccountLockedTask creates a lockout notification task.
func NewStaffAccountLockedTask(payload StaffAccountLockedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStaffAccountLocked, body), nil
}
