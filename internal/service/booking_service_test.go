package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type bookingServiceFixture struct {
	svc       *BookingService
	db        *gorm.DB
	flight    models.Flight
	passenger models.Passenger
}

func setupBookingServiceTest(t *testing.T) bookingServiceFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:booking_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Airport{}, &models.Airline{}, &models.AirplaneType{},
		&models.Airplane{}, &models.Flight{}, &models.Passenger{}, &models.Booking{},
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
	airplaneType := models.AirplaneType{Identifier: "A320-200"}
	if err := db.Create(&airplaneType).Error; err != nil {
		t.Fatalf("create airplane type failed: %v", err)
	}
	airplane := models.Airplane{Capacity: 180, TypeID: airplaneType.ID, AirlineID: airline.ID}
	if err := db.Create(&airplane).Error; err != nil {
		t.Fatalf("create airplane failed: %v", err)
	}
	flight := models.Flight{
		FlightNo: "LH400", FromID: fra.ID, ToID: jfk.ID,
		Departure: "10:30", Arrival: "13:15",
		AirlineID: airline.ID, AirplaneID: airplane.ID,
	}
	if err := db.Create(&flight).Error; err != nil {
		t.Fatalf("create flight failed: %v", err)
	}
	passenger := models.Passenger{FirstName: "Anna", LastName: "Schmidt", PassportNo: "C01X00T48"}
	if err := db.Create(&passenger).Error; err != nil {
		t.Fatalf("create passenger failed: %v", err)
	}

	svc := NewBookingService(
		repository.NewBookingRepository(db),
		repository.NewFlightRepository(db),
		repository.NewPassengerRepository(db),
	)
	return bookingServiceFixture{svc: svc, db: db, flight: flight, passenger: passenger}
}

func TestBookingCreateRoundsPriceAndUppercasesSeat(t *testing.T) {
	fixture := setupBookingServiceTest(t)

	booking, err := fixture.svc.Create(BookingInput{
		FlightID:    fixture.flight.ID,
		PassengerID: fixture.passenger.ID,
		Seat:        " 12a ",
		Price:       decimal.RequireFromString("499.999"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.Seat != "12A" {
		t.Fatalf("expected uppercased seat, got %s", booking.Seat)
	}
	if !booking.Price.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("expected price rounded to two decimals, got %s", booking.Price)
	}
}

func TestBookingCreateValidation(t *testing.T) {
	fixture := setupBookingServiceTest(t)

	negative := BookingInput{
		FlightID:    fixture.flight.ID,
		PassengerID: fixture.passenger.ID,
		Seat:        "12A",
		Price:       decimal.RequireFromString("-1"),
	}
	if _, err := fixture.svc.Create(negative); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative price, got %v", err)
	}

	longSeat := negative
	longSeat.Price = decimal.Zero
	longSeat.Seat = "123AB"
	if _, err := fixture.svc.Create(longSeat); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for long seat, got %v", err)
	}

	ghostFlight := BookingInput{
		FlightID:    9999,
		PassengerID: fixture.passenger.ID,
		Seat:        "12A",
		Price:       decimal.Zero,
	}
	if _, err := fixture.svc.Create(ghostFlight); !errors.Is(err, ErrRelatedNotFound) {
		t.Fatalf("expected related not found for missing flight, got %v", err)
	}

	ghostPassenger := BookingInput{
		FlightID:    fixture.flight.ID,
		PassengerID: 9999,
		Seat:        "12A",
		Price:       decimal.Zero,
	}
	if _, err := fixture.svc.Create(ghostPassenger); !errors.Is(err, ErrRelatedNotFound) {
		t.Fatalf("expected related not found for missing passenger, got %v", err)
	}
}

func TestBookingListFilterAndDelete(t *testing.T) {
	fixture := setupBookingServiceTest(t)

	booking, err := fixture.svc.Create(BookingInput{
		FlightID:    fixture.flight.ID,
		PassengerID: fixture.passenger.ID,
		Seat:        "14C",
		Price:       decimal.RequireFromString("129.90"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rows, total, err := fixture.svc.List(repository.BookingListFilter{
		Page: 1, PageSize: 20, FlightID: fixture.flight.ID,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].ID != booking.ID {
		t.Fatalf("expected one booking, got total=%d", total)
	}

	rows, total, err = fixture.svc.List(repository.BookingListFilter{
		Page: 1, PageSize: 20, FlightID: 9999,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(rows) != 0 {
		t.Fatalf("expected empty result, got total=%d", total)
	}

	if err := fixture.svc.Delete(booking.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := fixture.svc.Get(booking.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
