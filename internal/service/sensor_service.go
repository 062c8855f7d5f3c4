package service

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
)

// SensorService produces simulated runway sensor readings. It owns its
// pseudorandom source; the mutex keeps concurrent handlers off the
// unsynchronized rand.Rand.
type SensorService struct {
	cfg *config.SensorConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSensorService creates a sensor service seeded from the clock.
func NewSensorService(cfg *config.SensorConfig) *SensorService {
	return &SensorService{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SensorReading is one simulated measurement.
type SensorReading struct {
	AirportCode     string    `json:"airport_code"`
	Temperature     float64   `json:"temperature"`
	RunwayOccupancy int       `json:"runway_occupancy"`
	RunwayStatus    string    `json:"runway_status"`
	Timestamp       time.Time `json:"timestamp"`
}

// Generate returns a fresh reading for an airport code.
func (s *SensorService) Generate(airportCode string) (*SensorReading, error) {
	code := strings.ToUpper(strings.TrimSpace(airportCode))
	if code == "" || len(code) > 4 {
		return nil, ErrInvalidInput
	}

	minTemp, maxTemp := 5.0, 30.0
	if s.cfg != nil && s.cfg.TemperatureMax > s.cfg.TemperatureMin {
		minTemp = s.cfg.TemperatureMin
		maxTemp = s.cfg.TemperatureMax
	}

	s.mu.Lock()
	temperature := s.rng.Float64()*(maxTemp-minTemp) + minTemp
	occupancy := s.rng.Intn(100)
	statusRoll := s.rng.Intn(10)
	s.mu.Unlock()

	status := constants.RunwayStatusOpen
	if statusRoll <= 1 {
		status = constants.RunwayStatusClosed
	}

	return &SensorReading{
		AirportCode:     code,
		Temperature:     math.Round(temperature*10) / 10,
		RunwayOccupancy: occupancy,
		RunwayStatus:    status,
		Timestamp:       time.Now().UTC(),
	}, nil
}
