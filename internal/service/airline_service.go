package service

import (
	"strings"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// AirlineService manages airline master data.
type AirlineService struct {
	repo        repository.AirlineRepository
	airportRepo repository.AirportRepository
}

// NewAirlineService creates an airline service.
func NewAirlineService(repo repository.AirlineRepository, airportRepo repository.AirportRepository) *AirlineService {
	return &AirlineService{repo: repo, airportRepo: airportRepo}
}

// List returns all airlines.
func (s *AirlineService) List() ([]models.Airline, error) {
	return s.repo.List()
}

// Get fetches one airline.
func (s *AirlineService) Get(id uint) (*models.Airline, error) {
	airline, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airline == nil {
		return nil, ErrNotFound
	}
	return airline, nil
}

// AirlineInput carries airline fields for create and update.
type AirlineInput struct {
	IATA          string
	Name          string
	BaseAirportID uint
}

// Create inserts a new airline after validating its home airport.
func (s *AirlineService) Create(input AirlineInput) (*models.Airline, error) {
	iata, name, err := normalizeAirlineInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkBaseAirport(input.BaseAirportID); err != nil {
		return nil, err
	}

	airline := &models.Airline{IATA: iata, Name: name, BaseAirportID: input.BaseAirportID}
	if err := s.repo.Create(airline); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return airline, nil
}

// Update replaces the fields of an airline.
func (s *AirlineService) Update(id uint, input AirlineInput) (*models.Airline, error) {
	iata, name, err := normalizeAirlineInput(input)
	if err != nil {
		return nil, err
	}
	airline, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airline == nil {
		return nil, ErrNotFound
	}
	if err := s.checkBaseAirport(input.BaseAirportID); err != nil {
		return nil, err
	}

	airline.IATA = iata
	airline.Name = name
	airline.BaseAirportID = input.BaseAirportID
	if err := s.repo.Update(airline); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return airline, nil
}

// Delete removes an airline.
func (s *AirlineService) Delete(id uint) error {
	airline, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if airline == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *AirlineService) checkBaseAirport(airportID uint) error {
	if airportID == 0 {
		return ErrInvalidInput
	}
	exists, err := s.airportRepo.Exists(airportID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRelatedNotFound
	}
	return nil
}

func normalizeAirlineInput(input AirlineInput) (iata, name string, err error) {
	iata = strings.ToUpper(strings.TrimSpace(input.IATA))
	name = strings.TrimSpace(input.Name)
	if iata == "" || len(iata) > 3 || name == "" || len(name) > 30 {
		return "", "", ErrInvalidInput
	}
	return iata, name, nil
}
