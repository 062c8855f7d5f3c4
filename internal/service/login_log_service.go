package service

import (
	"strings"
	"time"

	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/queue"
	"github.com/flightbase-api/internal/repository"
)

// LoginLogService records staff login attempts. When the queue is
// enabled, writes go through the worker so the login path never blocks
// on audit persistence.
type LoginLogService struct {
	repo  repository.StaffLoginLogRepository
	queue *queue.Client
}

// NewLoginLogService creates a login log service.
func NewLoginLogService(repo repository.StaffLoginLogRepository, queueClient *queue.Client) *LoginLogService {
	return &LoginLogService{repo: repo, queue: queueClient}
}

// RecordStaffLoginInput describes one login attempt.
type RecordStaffLoginInput struct {
	StaffID    uint
	Username   string
	Status     string
	FailReason string
	ClientIP   string
	UserAgent  string
	RequestID  string
}

// Record persists a login attempt, asynchronously when possible.
func (s *LoginLogService) Record(input RecordStaffLoginInput) error {
	if s == nil || s.repo == nil {
		return nil
	}

	payload := queue.StaffLoginLogPayload{
		StaffID:    input.StaffID,
		Username:   strings.TrimSpace(input.Username),
		Status:     normalizeLoginStatus(input.Status),
		FailReason: strings.ToLower(strings.TrimSpace(input.FailReason)),
		ClientIP:   strings.TrimSpace(input.ClientIP),
		UserAgent:  strings.TrimSpace(input.UserAgent),
		RequestID:  strings.TrimSpace(input.RequestID),
		OccurredAt: time.Now(),
	}
	if payload.Status == constants.LoginLogStatusSuccess {
		payload.FailReason = ""
	} else if payload.FailReason == "" {
		payload.FailReason = constants.LoginLogFailReasonInternalError
	}

	if s.queue.Enabled() {
		return s.queue.EnqueueStaffLoginLog(payload)
	}
	return s.Persist(payload)
}

// Persist writes a login attempt directly. The worker calls this when
// consuming queued tasks.
func (s *LoginLogService) Persist(payload queue.StaffLoginLogPayload) error {
	if s == nil || s.repo == nil {
		return nil
	}
	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return s.repo.Create(&models.StaffLoginLog{
		StaffID:    payload.StaffID,
		Username:   payload.Username,
		Status:     payload.Status,
		FailReason: payload.FailReason,
		ClientIP:   payload.ClientIP,
		UserAgent:  payload.UserAgent,
		RequestID:  payload.RequestID,
		CreatedAt:  occurredAt,
	})
}

// List returns login log entries for administrators.
func (s *LoginLogService) List(filter repository.StaffLoginLogListFilter) ([]models.StaffLoginLog, int64, error) {
	if s == nil || s.repo == nil {
		return []models.StaffLoginLog{}, 0, nil
	}
	return s.repo.List(filter)
}

func normalizeLoginStatus(status string) string {
	if strings.ToLower(strings.TrimSpace(status)) == constants.LoginLogStatusSuccess {
		return constants.LoginLogStatusSuccess
	}
	return constants.LoginLogStatusFailed
}
