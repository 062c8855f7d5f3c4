package service

import (
	"strings"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// AirplaneService manages aircraft and airframe types.
type AirplaneService struct {
	repo        repository.AirplaneRepository
	typeRepo    repository.AirplaneTypeRepository
	airlineRepo repository.AirlineRepository
}

// NewAirplaneService creates an airplane service.
func NewAirplaneService(repo repository.AirplaneRepository, typeRepo repository.AirplaneTypeRepository, airlineRepo repository.AirlineRepository) *AirplaneService {
	return &AirplaneService{repo: repo, typeRepo: typeRepo, airlineRepo: airlineRepo}
}

// List returns all airplanes.
func (s *AirplaneService) List() ([]models.Airplane, error) {
	return s.repo.List()
}

// Get fetches one airplane.
func (s *AirplaneService) Get(id uint) (*models.Airplane, error) {
	airplane, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airplane == nil {
		return nil, ErrNotFound
	}
	return airplane, nil
}

// AirplaneInput carries airplane fields for create and update.
type AirplaneInput struct {
	Capacity  int
	TypeID    uint
	AirlineID uint
}

// Create inserts a new airplane after validating its references.
func (s *AirplaneService) Create(input AirplaneInput) (*models.Airplane, error) {
	if err := s.validateAirplaneInput(input); err != nil {
		return nil, err
	}
	airplane := &models.Airplane{
		Capacity:  input.Capacity,
		TypeID:    input.TypeID,
		AirlineID: input.AirlineID,
	}
	if err := s.repo.Create(airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

// Update replaces the fields of an airplane.
func (s *AirplaneService) Update(id uint, input AirplaneInput) (*models.Airplane, error) {
	airplane, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airplane == nil {
		return nil, ErrNotFound
	}
	if err := s.validateAirplaneInput(input); err != nil {
		return nil, err
	}

	airplane.Capacity = input.Capacity
	airplane.TypeID = input.TypeID
	airplane.AirlineID = input.AirlineID
	if err := s.repo.Update(airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

// Delete removes an airplane.
func (s *AirplaneService) Delete(id uint) error {
	airplane, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if airplane == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *AirplaneService) validateAirplaneInput(input AirplaneInput) error {
	if input.Capacity <= 0 || input.TypeID == 0 || input.AirlineID == 0 {
		return ErrInvalidInput
	}
	exists, err := s.typeRepo.Exists(input.TypeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRelatedNotFound
	}
	exists, err = s.airlineRepo.Exists(input.AirlineID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRelatedNotFound
	}
	return nil
}

// ListTypes returns all airframe types.
func (s *AirplaneService) ListTypes() ([]models.AirplaneType, error) {
	return s.typeRepo.List()
}

// GetType fetches one airframe type.
func (s *AirplaneService) GetType(id uint) (*models.AirplaneType, error) {
	airplaneType, err := s.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airplaneType == nil {
		return nil, ErrNotFound
	}
	return airplaneType, nil
}

// AirplaneTypeInput carries airframe type fields for create and update.
type AirplaneTypeInput struct {
	Identifier  string
	Description string
}

// CreateType inserts a new airframe type.
func (s *AirplaneService) CreateType(input AirplaneTypeInput) (*models.AirplaneType, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" || len(identifier) > 50 {
		return nil, ErrInvalidInput
	}
	airplaneType := &models.AirplaneType{
		Identifier:  identifier,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.typeRepo.Create(airplaneType); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return airplaneType, nil
}

// UpdateType replaces the fields of an airframe type.
func (s *AirplaneService) UpdateType(id uint, input AirplaneTypeInput) (*models.AirplaneType, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" || len(identifier) > 50 {
		return nil, ErrInvalidInput
	}
	airplaneType, err := s.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if airplaneType == nil {
		return nil, ErrNotFound
	}

	airplaneType.Identifier = identifier
	airplaneType.Description = strings.TrimSpace(input.Description)
	if err := s.typeRepo.Update(airplaneType); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return airplaneType, nil
}

// DeleteType removes an airframe type.
func (s *AirplaneService) DeleteType(id uint) error {
	airplaneType, err := s.typeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if airplaneType == nil {
		return ErrNotFound
	}
	return s.typeRepo.Delete(id)
}
