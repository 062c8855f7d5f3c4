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

type flightServiceFixture struct {
	svc      *FlightService
	db       *gorm.DB
	fra      models.Airport
	jfk      models.Airport
	airline  models.Airline
	airplane models.Airplane
}

func setupFlightServiceTest(t *testing.T) flightServiceFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:flight_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Airport{}, &models.Airline{}, &models.AirplaneType{},
		&models.Airplane{}, &models.Flight{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	fra := models.Airport{IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt"}
	jfk := models.Airport{IATA: "JFK", ICAO: "KJFK", Name: "New York JFK"}
	if err := db.Create(&fra).Error; err != nil {
		t.Fatalf("create airport failed: %v", err)
	}
	if err := db.Create(&jfk).Error; err != nil {
		t.Fatalf("create airport failed: %v", err)
	}
	airline := models.Airline{IATA: "LH", Name: "Lufthansa", BaseAirportID: fra.ID}
	if err := db.Create(&airline).Error; err != nil {
		t.Fatalf("create airline failed: %v", err)
	}
	airplaneType := models.AirplaneType{Identifier: "A350-900"}
	if err := db.Create(&airplaneType).Error; err != nil {
		t.Fatalf("create airplane type failed: %v", err)
	}
	airplane := models.Airplane{Capacity: 325, TypeID: airplaneType.ID, AirlineID: airline.ID}
	if err := db.Create(&airplane).Error; err != nil {
		t.Fatalf("create airplane failed: %v", err)
	}

	svc := NewFlightService(
		repository.NewFlightRepository(db),
		repository.NewAirportRepository(db),
		repository.NewAirlineRepository(db),
		repository.NewAirplaneRepository(db),
	)
	return flightServiceFixture{svc: svc, db: db, fra: fra, jfk: jfk, airline: airline, airplane: airplane}
}

func (f flightServiceFixture) validInput() FlightInput {
	return FlightInput{
		FlightNo:   "LH400",
		FromID:     f.fra.ID,
		ToID:       f.jfk.ID,
		Departure:  "10:30",
		Arrival:    "13:15",
		AirlineID:  f.airline.ID,
		AirplaneID: f.airplane.ID,
	}
}

func TestFlightCreateNormalizesFlightNo(t *testing.T) {
	fixture := setupFlightServiceTest(t)

	input := fixture.validInput()
	input.FlightNo = " lh400 "
	flight, err := fixture.svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if flight.FlightNo != "LH400" {
		t.Fatalf("expected uppercased flightno, got %s", flight.FlightNo)
	}
}

func TestFlightCreateValidation(t *testing.T) {
	fixture := setupFlightServiceTest(t)

	sameAirport := fixture.validInput()
	sameAirport.ToID = sameAirport.FromID
	if _, err := fixture.svc.Create(sameAirport); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for same from/to, got %v", err)
	}

	badTime := fixture.validInput()
	badTime.Departure = "25:99"
	if _, err := fixture.svc.Create(badTime); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad time, got %v", err)
	}

	ghostAirport := fixture.validInput()
	ghostAirport.ToID = 9999
	if _, err := fixture.svc.Create(ghostAirport); !errors.Is(err, ErrRelatedNotFound) {
		t.Fatalf("expected related not found for missing airport, got %v", err)
	}

	ghostAirplane := fixture.validInput()
	ghostAirplane.AirplaneID = 9999
	if _, err := fixture.svc.Create(ghostAirplane); !errors.Is(err, ErrRelatedNotFound) {
		t.Fatalf("expected related not found for missing airplane, got %v", err)
	}
}

func TestFlightListByFlightNoUppercases(t *testing.T) {
	fixture := setupFlightServiceTest(t)

	if _, err := fixture.svc.Create(fixture.validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	flights, err := fixture.svc.ListByFlightNo("lh400")
	if err != nil {
		t.Fatalf("list by flightno failed: %v", err)
	}
	if len(flights) != 1 || flights[0].FlightNo != "LH400" {
		t.Fatalf("expected one LH400 flight, got %d", len(flights))
	}
}

func TestFlightUpdateAndDelete(t *testing.T) {
	fixture := setupFlightServiceTest(t)

	flight, err := fixture.svc.Create(fixture.validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := fixture.validInput()
	input.Departure = "11:00"
	updated, err := fixture.svc.Update(flight.ID, input)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Departure != "11:00" {
		t.Fatalf("expected updated departure, got %s", updated.Departure)
	}

	if _, err := fixture.svc.Update(flight.ID+999, input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := fixture.svc.Delete(flight.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := fixture.svc.Get(flight.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestFlightListFilter(t *testing.T) {
	fixture := setupFlightServiceTest(t)

	if _, err := fixture.svc.Create(fixture.validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	back := fixture.validInput()
	back.FlightNo = "LH401"
	back.FromID = fixture.jfk.ID
	back.ToID = fixture.fra.ID
	if _, err := fixture.svc.Create(back); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	flights, total, err := fixture.svc.List(repository.FlightListFilter{
		Page:     1,
		PageSize: 20,
		FromID:   fixture.fra.ID,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(flights) != 1 || flights[0].FlightNo != "LH400" {
		t.Fatalf("expected single outbound flight, got total=%d", total)
	}
}
