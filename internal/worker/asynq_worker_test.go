package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/provider"
	"github.com/flightbase-api/internal/queue"
	"github.com/flightbase-api/internal/repository"
	"github.com/flightbase-api/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:worker_consumer_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Staff{}, &models.StaffLoginLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}

	container := &provider.Container{
		StaffRepo:       repository.NewStaffRepository(db),
		LoginLogService: service.NewLoginLogService(repository.NewStaffLoginLogRepository(db), queueClient),
	}
	return NewConsumer(container), db
}

func TestHandleStaffLoginLogPersistsEntry(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	task, err := queue.NewStaffLoginLogTask(queue.StaffLoginLogPayload{
		StaffID:    3,
		Username:   "alice",
		Status:     "failed",
		FailReason: "invalid_credentials",
		ClientIP:   "10.0.0.9",
		OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	if err := consumer.handleStaffLoginLog(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var row models.StaffLoginLog
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load log failed: %v", err)
	}
	if row.StaffID != 3 || row.Username != "alice" || row.FailReason != "invalid_credentials" {
		t.Fatalf("unexpected log row: %+v", row)
	}
}

func TestHandleStaffLoginLogSkipsEmptyUsername(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	task, err := queue.NewStaffLoginLogTask(queue.StaffLoginLogPayload{Status: "failed"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleStaffLoginLog(context.Background(), task); err != nil {
		t.Fatalf("expected skip without error, got %v", err)
	}

	var count int64
	db.Model(&models.StaffLoginLog{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestHandleStaffLoginLogRejectsMalformedPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskStaffLoginLog, []byte("not json"))
	if err := consumer.handleStaffLoginLog(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestHandleStaffAccountLocked(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	staff := models.Staff{
		Username:     "locked-user",
		Email:        "locked@example.com",
		PasswordHash: "hash",
		Role:         "Operator",
		IsActive:     true,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	task, err := queue.NewStaffAccountLockedTask(queue.StaffAccountLockedPayload{
		StaffID:     staff.ID,
		Username:    staff.Username,
		LockedUntil: time.Now().Add(15 * time.Minute),
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleStaffAccountLocked(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	// Unknown staff ids are dropped without retry.
	ghost, err := queue.NewStaffAccountLockedTask(queue.StaffAccountLockedPayload{StaffID: staff.ID + 999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleStaffAccountLocked(context.Background(), ghost); err != nil {
		t.Fatalf("expected skip without error, got %v", err)
	}
}
