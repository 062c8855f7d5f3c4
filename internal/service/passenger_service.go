package service

import (
	"strings"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// PassengerService manages passenger records.
type PassengerService struct {
	repo repository.PassengerRepository
}

// NewPassengerService creates a passenger service.
func NewPassengerService(repo repository.PassengerRepository) *PassengerService {
	return &PassengerService{repo: repo}
}

// List returns all passengers.
func (s *PassengerService) List() ([]models.Passenger, error) {
	return s.repo.List()
}

// Get fetches one passenger.
func (s *PassengerService) Get(id uint) (*models.Passenger, error) {
	passenger, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, ErrNotFound
	}
	return passenger, nil
}

// PassengerInput carries passenger fields for create and update.
type PassengerInput struct {
	FirstName  string
	LastName   string
	PassportNo string
}

// Create inserts a new passenger.
func (s *PassengerService) Create(input PassengerInput) (*models.Passenger, error) {
	firstName, lastName, passportNo, err := normalizePassengerInput(input)
	if err != nil {
		return nil, err
	}
	passenger := &models.Passenger{
		FirstName:  firstName,
		LastName:   lastName,
		PassportNo: passportNo,
	}
	if err := s.repo.Create(passenger); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return passenger, nil
}

// Update replaces the fields of a passenger.
func (s *PassengerService) Update(id uint, input PassengerInput) (*models.Passenger, error) {
	firstName, lastName, passportNo, err := normalizePassengerInput(input)
	if err != nil {
		return nil, err
	}
	passenger, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, ErrNotFound
	}

	passenger.FirstName = firstName
	passenger.LastName = lastName
	passenger.PassportNo = passportNo
	if err := s.repo.Update(passenger); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return passenger, nil
}

// Delete removes a passenger.
func (s *PassengerService) Delete(id uint) error {
	passenger, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if passenger == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func normalizePassengerInput(input PassengerInput) (firstName, lastName, passportNo string, err error) {
	firstName = strings.TrimSpace(input.FirstName)
	lastName = strings.TrimSpace(input.LastName)
	passportNo = strings.ToUpper(strings.TrimSpace(input.PassportNo))
	if firstName == "" || len(firstName) > 100 ||
		lastName == "" || len(lastName) > 100 ||
		passportNo == "" || len(passportNo) > 9 {
		return "", "", "", ErrInvalidInput
	}
	return firstName, lastName, passportNo, nil
}
