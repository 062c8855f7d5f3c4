package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/queue"
	"github.com/flightbase-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupLoginLogServiceTest(t *testing.T) (*LoginLogService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:login_log_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StaffLoginLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	return NewLoginLogService(repository.NewStaffLoginLogRepository(db), queueClient), db
}

func TestLoginLogRecordSuccessClearsFailReason(t *testing.T) {
	svc, db := setupLoginLogServiceTest(t)

	err := svc.Record(RecordStaffLoginInput{
		StaffID:    7,
		Username:   " alice ",
		Status:     "SUCCESS",
		FailReason: "leftover",
		ClientIP:   "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	var row models.StaffLoginLog
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load log failed: %v", err)
	}
	if row.Username != "alice" {
		t.Fatalf("expected trimmed username, got %q", row.Username)
	}
	if row.Status != constants.LoginLogStatusSuccess {
		t.Fatalf("expected success status, got %s", row.Status)
	}
	if row.FailReason != "" {
		t.Fatalf("expected empty fail reason, got %q", row.FailReason)
	}
}

func TestLoginLogRecordFailureDefaultsReason(t *testing.T) {
	svc, db := setupLoginLogServiceTest(t)

	err := svc.Record(RecordStaffLoginInput{
		Username: "bob",
		Status:   "anything-else",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}

	var row models.StaffLoginLog
	if err := db.First(&row).Error; err != nil {
		t.Fatalf("load log failed: %v", err)
	}
	if row.Status != constants.LoginLogStatusFailed {
		t.Fatalf("expected failed status, got %s", row.Status)
	}
	if row.FailReason != constants.LoginLogFailReasonInternalError {
		t.Fatalf("expected default fail reason, got %q", row.FailReason)
	}
}

func TestLoginLogListFilters(t *testing.T) {
	svc, db := setupLoginLogServiceTest(t)

	seed := []models.StaffLoginLog{
		{StaffID: 1, Username: "alice", Status: constants.LoginLogStatusSuccess, ClientIP: "10.0.0.1"},
		{StaffID: 1, Username: "alice", Status: constants.LoginLogStatusFailed, FailReason: constants.LoginLogFailReasonInvalidCredentials, ClientIP: "10.0.0.1"},
		{StaffID: 2, Username: "bob", Status: constants.LoginLogStatusFailed, FailReason: constants.LoginLogFailReasonAccountLocked, ClientIP: "10.0.0.2"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed log failed: %v", err)
		}
	}

	rows, total, err := svc.List(repository.StaffLoginLogListFilter{Page: 1, PageSize: 20, Username: "alice"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("expected two alice entries, got total=%d", total)
	}

	rows, total, err = svc.List(repository.StaffLoginLogListFilter{
		Page: 1, PageSize: 20,
		Status:     constants.LoginLogStatusFailed,
		FailReason: constants.LoginLogFailReasonAccountLocked,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Username != "bob" {
		t.Fatalf("expected one locked entry, got total=%d", total)
	}
}
