package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/flightbase-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupFlightRepositoryTest(t *testing.T) *GormFlightRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:flight_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Flight{}); err != nil {
		t.Fatalf("migrate flight failed: %v", err)
	}
	return NewFlightRepository(db)
}

func createFlightFixture(t *testing.T, repo *GormFlightRepository, flightNo string, fromID, toID, airlineID uint) *models.Flight {
	t.Helper()

	flight := &models.Flight{
		FlightNo:   flightNo,
		FromID:     fromID,
		ToID:       toID,
		Departure:  "10:30",
		Arrival:    "13:15",
		AirlineID:  airlineID,
		AirplaneID: 1,
	}
	if err := repo.Create(flight); err != nil {
		t.Fatalf("create flight failed: %v", err)
	}
	return flight
}

func TestFlightRepositoryListFilters(t *testing.T) {
	repo := setupFlightRepositoryTest(t)
	createFlightFixture(t, repo, "LH400", 1, 2, 10)
	createFlightFixture(t, repo, "LH401", 2, 1, 10)
	createFlightFixture(t, repo, "BA117", 3, 2, 20)

	rows, total, err := repo.List(FlightListFilter{Page: 1, PageSize: 20, AirlineID: 10})
	if err != nil {
		t.Fatalf("list by airline failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("expected two LH flights, got total=%d", total)
	}

	rows, total, err = repo.List(FlightListFilter{Page: 1, PageSize: 20, FromID: 2, ToID: 1})
	if err != nil {
		t.Fatalf("list by route failed: %v", err)
	}
	if total != 1 || rows[0].FlightNo != "LH401" {
		t.Fatalf("expected LH401 on the return leg, got total=%d", total)
	}

	rows, total, err = repo.List(FlightListFilter{Page: 1, PageSize: 20, FlightNo: "BA117"})
	if err != nil {
		t.Fatalf("list by flight number failed: %v", err)
	}
	if total != 1 || rows[0].FlightNo != "BA117" {
		t.Fatalf("expected BA117, got total=%d", total)
	}
}

func TestFlightRepositoryListByFlightNo(t *testing.T) {
	repo := setupFlightRepositoryTest(t)
	// The same flight number can recur across codeshare legs.
	createFlightFixture(t, repo, "LH400", 1, 2, 10)
	createFlightFixture(t, repo, "LH400", 2, 3, 10)

	rows, err := repo.ListByFlightNo("LH400")
	if err != nil {
		t.Fatalf("list by flight number failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two legs, got %d", len(rows))
	}

	rows, err = repo.ListByFlightNo("XX000")
	if err != nil {
		t.Fatalf("list by flight number failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no match, got %d", len(rows))
	}
}

func TestFlightRepositoryExistsAndDelete(t *testing.T) {
	repo := setupFlightRepositoryTest(t)
	flight := createFlightFixture(t, repo, "KL641", 1, 2, 30)

	exists, err := repo.Exists(flight.ID)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected flight to exist")
	}

	if err := repo.Delete(flight.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	exists, err = repo.Exists(flight.ID)
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("expected flight to be gone")
	}

	got, err := repo.GetByID(flight.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}
