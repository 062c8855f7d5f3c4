package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupStaffRepositoryTest(t *testing.T) (*GormStaffRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:staff_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Staff{}); err != nil {
		t.Fatalf("migrate staff failed: %v", err)
	}
	return NewStaffRepository(db), db
}

func createStaffFixture(t *testing.T, repo *GormStaffRepository, username, role string, active bool) *models.Staff {
	t.Helper()

	staff := &models.Staff{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         role,
		IsActive:     active,
	}
	if err := repo.Create(staff); err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	return staff
}

func TestStaffRepositoryGetMissingReturnsNil(t *testing.T) {
	repo, _ := setupStaffRepositoryTest(t)

	staff, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if staff != nil {
		t.Fatalf("expected nil for missing id, got %+v", staff)
	}

	staff, err = repo.GetByUsername("nobody")
	if err != nil {
		t.Fatalf("get by username failed: %v", err)
	}
	if staff != nil {
		t.Fatalf("expected nil for missing username, got %+v", staff)
	}

	staff, err = repo.GetByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if staff != nil {
		t.Fatalf("expected nil for missing email, got %+v", staff)
	}
}

func TestStaffRepositoryGetByUsernameIsExact(t *testing.T) {
	repo, _ := setupStaffRepositoryTest(t)
	created := createStaffFixture(t, repo, "alice", constants.RoleOperator, true)

	staff, err := repo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("get by username failed: %v", err)
	}
	if staff == nil || staff.ID != created.ID {
		t.Fatalf("expected alice, got %+v", staff)
	}
}

func TestStaffRepositoryUpdatePersistsLockState(t *testing.T) {
	repo, _ := setupStaffRepositoryTest(t)
	staff := createStaffFixture(t, repo, "locked", constants.RoleOperator, true)

	until := time.Now().Add(15 * time.Minute).UTC()
	staff.FailedLoginAttempts = 5
	staff.LockedUntil = &until
	if err := repo.Update(staff); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	reloaded, err := repo.GetByID(staff.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.FailedLoginAttempts != 5 {
		t.Fatalf("expected 5 failed attempts, got %d", reloaded.FailedLoginAttempts)
	}
	if reloaded.LockedUntil == nil || !reloaded.LockedUntil.After(time.Now()) {
		t.Fatalf("expected future lock, got %v", reloaded.LockedUntil)
	}
}

func TestStaffRepositoryListFilters(t *testing.T) {
	repo, _ := setupStaffRepositoryTest(t)
	createStaffFixture(t, repo, "admin-a", constants.RoleAdmin, true)
	createStaffFixture(t, repo, "op-b", constants.RoleOperator, true)
	createStaffFixture(t, repo, "op-c", constants.RoleOperator, false)

	rows, total, err := repo.List(StaffListFilter{Page: 1, PageSize: 20, Role: constants.RoleOperator})
	if err != nil {
		t.Fatalf("list by role failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("expected two operators, got total=%d rows=%d", total, len(rows))
	}

	rows, total, err = repo.List(StaffListFilter{Page: 1, PageSize: 20, Role: constants.RoleOperator, ActiveOnly: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 1 || rows[0].Username != "op-b" {
		t.Fatalf("expected only op-b, got total=%d", total)
	}

	rows, total, err = repo.List(StaffListFilter{Page: 1, PageSize: 20, Keyword: "admin"})
	if err != nil {
		t.Fatalf("list by keyword failed: %v", err)
	}
	if total != 1 || rows[0].Username != "admin-a" {
		t.Fatalf("expected keyword match admin-a, got total=%d", total)
	}
}

func TestStaffRepositoryListPagination(t *testing.T) {
	repo, _ := setupStaffRepositoryTest(t)
	for i := 0; i < 5; i++ {
		createStaffFixture(t, repo, fmt.Sprintf("staff-%d", i), constants.RoleViewer, true)
	}

	rows, total, err := repo.List(StaffListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(rows) != 2 || rows[0].Username != "staff-2" {
		t.Fatalf("expected second page starting at staff-2, got %+v", rows)
	}
}
