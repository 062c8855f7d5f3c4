package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAirportServiceTest(t *testing.T) (*AirportService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:airport_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Airport{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	return NewAirportService(repository.NewAirportRepository(db)), db
}

func TestAirportCreateNormalizesCodes(t *testing.T) {
	svc, _ := setupAirportServiceTest(t)

	airport, err := svc.Create(AirportInput{IATA: " fra ", ICAO: "eddf", Name: "Frankfurt am Main"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if airport.IATA != "FRA" || airport.ICAO != "EDDF" {
		t.Fatalf("expected uppercased codes, got %s/%s", airport.IATA, airport.ICAO)
	}
}

func TestAirportCreateValidation(t *testing.T) {
	svc, _ := setupAirportServiceTest(t)

	cases := []struct {
		name  string
		input AirportInput
	}{
		{"short iata", AirportInput{IATA: "FR", ICAO: "EDDF", Name: "Frankfurt"}},
		{"long iata", AirportInput{IATA: "FRAN", ICAO: "EDDF", Name: "Frankfurt"}},
		{"short icao", AirportInput{IATA: "FRA", ICAO: "EDD", Name: "Frankfurt"}},
		{"empty name", AirportInput{IATA: "FRA", ICAO: "EDDF", Name: "  "}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}

func TestAirportCreateDuplicateIATA(t *testing.T) {
	svc, _ := setupAirportServiceTest(t)

	if _, err := svc.Create(AirportInput{IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(AirportInput{IATA: "FRA", ICAO: "XXXX", Name: "Clone"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAirportUpdateAndDelete(t *testing.T) {
	svc, _ := setupAirportServiceTest(t)

	airport, err := svc.Create(AirportInput{IATA: "MUC", ICAO: "EDDM", Name: "Munich"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(airport.ID, AirportInput{IATA: "MUC", ICAO: "EDDM", Name: "Munich Franz Josef Strauss"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Munich Franz Josef Strauss" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}

	if _, err := svc.Update(airport.ID+999, AirportInput{IATA: "AAA", ICAO: "AAAA", Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.Delete(airport.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(airport.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(airport.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for repeated delete, got %v", err)
	}
}
