package service

import (
	"strings"
	"time"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// FlightService manages flight legs.
type FlightService struct {
	repo         repository.FlightRepository
	airportRepo  repository.AirportRepository
	airlineRepo  repository.AirlineRepository
	airplaneRepo repository.AirplaneRepository
}

// NewFlightService creates a flight service.
func NewFlightService(repo repository.FlightRepository, airportRepo repository.AirportRepository, airlineRepo repository.AirlineRepository, airplaneRepo repository.AirplaneRepository) *FlightService {
	return &FlightService{
		repo:         repo,
		airportRepo:  airportRepo,
		airlineRepo:  airlineRepo,
		airplaneRepo: airplaneRepo,
	}
}

// List returns flights matching the filter.
func (s *FlightService) List(filter repository.FlightListFilter) ([]models.Flight, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one flight.
func (s *FlightService) Get(id uint) (*models.Flight, error) {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, ErrNotFound
	}
	return flight, nil
}

// ListByFlightNo returns all legs operated under a flight number.
func (s *FlightService) ListByFlightNo(flightNo string) ([]models.Flight, error) {
	flightNo = strings.ToUpper(strings.TrimSpace(flightNo))
	if flightNo == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByFlightNo(flightNo)
}

// FlightInput carries flight fields for create and update.
type FlightInput struct {
	FlightNo   string
	FromID     uint
	ToID       uint
	Departure  string
	Arrival    string
	AirlineID  uint
	AirplaneID uint
}

// Create inserts a new flight after validating its references.
func (s *FlightService) Create(input FlightInput) (*models.Flight, error) {
	normalized, err := s.validateFlightInput(input)
	if err != nil {
		return nil, err
	}
	flight := &models.Flight{
		FlightNo:   normalized.FlightNo,
		FromID:     normalized.FromID,
		ToID:       normalized.ToID,
		Departure:  normalized.Departure,
		Arrival:    normalized.Arrival,
		AirlineID:  normalized.AirlineID,
		AirplaneID: normalized.AirplaneID,
	}
	if err := s.repo.Create(flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Update replaces the fields of a flight.
func (s *FlightService) Update(id uint, input FlightInput) (*models.Flight, error) {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, ErrNotFound
	}
	normalized, err := s.validateFlightInput(input)
	if err != nil {
		return nil, err
	}

	flight.FlightNo = normalized.FlightNo
	flight.FromID = normalized.FromID
	flight.ToID = normalized.ToID
	flight.Departure = normalized.Departure
	flight.Arrival = normalized.Arrival
	flight.AirlineID = normalized.AirlineID
	flight.AirplaneID = normalized.AirplaneID
	if err := s.repo.Update(flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Delete removes a flight.
func (s *FlightService) Delete(id uint) error {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if flight == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *FlightService) validateFlightInput(input FlightInput) (FlightInput, error) {
	input.FlightNo = strings.ToUpper(strings.TrimSpace(input.FlightNo))
	if input.FlightNo == "" || len(input.FlightNo) > 8 {
		return input, ErrInvalidInput
	}
	if input.FromID == 0 || input.ToID == 0 || input.FromID == input.ToID {
		return input, ErrInvalidInput
	}
	departure, err := normalizeClockTime(input.Departure)
	if err != nil {
		return input, err
	}
	arrival, err := normalizeClockTime(input.Arrival)
	if err != nil {
		return input, err
	}
	input.Departure = departure
	input.Arrival = arrival
	if input.AirlineID == 0 || input.AirplaneID == 0 {
		return input, ErrInvalidInput
	}

	for _, airportID := range []uint{input.FromID, input.ToID} {
		exists, err := s.airportRepo.Exists(airportID)
		if err != nil {
			return input, err
		}
		if !exists {
			return input, ErrRelatedNotFound
		}
	}
	exists, err := s.airlineRepo.Exists(input.AirlineID)
	if err != nil {
		return input, err
	}
	if !exists {
		return input, ErrRelatedNotFound
	}
	exists, err = s.airplaneRepo.Exists(input.AirplaneID)
	if err != nil {
		return input, err
	}
	if !exists {
		return input, ErrRelatedNotFound
	}
	return input, nil
}

// normalizeClockTime validates an HH:MM local time of day.
func normalizeClockTime(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	parsed, err := time.Parse("15:04", trimmed)
	if err != nil {
		return "", ErrInvalidInput
	}
	return parsed.Format("15:04"), nil
}
