package service

import (
	"errors"
	"math"
	"testing"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
)

func TestSensorGenerateStaysInConfiguredRange(t *testing.T) {
	svc := NewSensorService(&config.SensorConfig{
		TemperatureMin: -10,
		TemperatureMax: 35,
	})

	for i := 0; i < 200; i++ {
		reading, err := svc.Generate("FRA")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if reading.AirportCode != "FRA" {
			t.Fatalf("unexpected code: %s", reading.AirportCode)
		}
		if reading.Temperature < -10 || reading.Temperature > 35 {
			t.Fatalf("temperature out of range: %v", reading.Temperature)
		}
		if rounded := math.Round(reading.Temperature*10) / 10; rounded != reading.Temperature {
			t.Fatalf("temperature not rounded to one decimal: %v", reading.Temperature)
		}
		if reading.RunwayOccupancy < 0 || reading.RunwayOccupancy > 99 {
			t.Fatalf("occupancy out of range: %d", reading.RunwayOccupancy)
		}
		if reading.RunwayStatus != constants.RunwayStatusOpen && reading.RunwayStatus != constants.RunwayStatusClosed {
			t.Fatalf("unexpected status: %s", reading.RunwayStatus)
		}
		if reading.Timestamp.IsZero() {
			t.Fatalf("expected timestamp")
		}
	}
}

func TestSensorGenerateNormalizesAndValidatesCode(t *testing.T) {
	svc := NewSensorService(nil)

	reading, err := svc.Generate(" jfk ")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if reading.AirportCode != "JFK" {
		t.Fatalf("expected uppercased trimmed code, got %s", reading.AirportCode)
	}

	if _, err := svc.Generate(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty code, got %v", err)
	}
	if _, err := svc.Generate("TOOLONG"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for long code, got %v", err)
	}
}
