package service

import (
	"strings"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// AirportService manages airport master data.
type AirportService struct {
	repo repository.AirportRepository
}

// NewAirportService creates an airport service.
func NewAirportService(repo repository.AirportRepository) *AirportService {
	return &AirportService{repo: repo}
}

// List returns all airports.
func (s *AirportService) List() ([]models.Airport, error) {
	return s.repo.List()
}

// Get fetches one airport.
func (s *AirportService) Get(id uint) (*models.Airport, error) {
	airport, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, ErrNotFound
	}
	return airport, nil
}

// AirportInput carries airport fields for create and update.
type AirportInput struct {
	IATA string
	ICAO string
	Name string
}

// Create inserts a new airport.
func (s *AirportService) Create(input AirportInput) (*models.Airport, error) {
	iata, icao, name, err := normalizeAirportInput(input)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByIATA(iata)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	airport := &models.Airport{IATA: iata, ICAO: icao, Name: name}
	if err := s.repo.Create(airport); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return airport, nil
}

// Update replaces the fields of an airport.
func (s *AirportService) Update(id uint, input AirportInput) (*models.Airport, error) {
	iata, icao, name, err := normalizeAirportInput(input)
	if err != nil {
		return nil, err
	}
	airport, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, ErrNotFound
	}
	if iata != airport.IATA {
		existing, err := s.repo.GetByIATA(iata)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != airport.ID {
			return nil, ErrConflict
		}
	}

	airport.IATA = iata
	airport.ICAO = icao
	airport.Name = name
	if err := s.repo.Update(airport); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return airport, nil
}

// Delete removes an airport.
func (s *AirportService) Delete(id uint) error {
	airport, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if airport == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func normalizeAirportInput(input AirportInput) (iata, icao, name string, err error) {
	iata = strings.ToUpper(strings.TrimSpace(input.IATA))
	icao = strings.ToUpper(strings.TrimSpace(input.ICAO))
	name = strings.TrimSpace(input.Name)
	if len(iata) != 3 || len(icao) != 4 || name == "" || len(name) > 50 {
		return "", "", "", ErrInvalidInput
	}
	return iata, icao, name, nil
}
