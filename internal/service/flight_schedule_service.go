package service

import (
	"strings"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// FlightScheduleService manages recurring weekly schedules.
type FlightScheduleService struct {
	repo        repository.FlightScheduleRepository
	airportRepo repository.AirportRepository
	airlineRepo repository.AirlineRepository
}

// NewFlightScheduleService creates a flight schedule service.
func NewFlightScheduleService(repo repository.FlightScheduleRepository, airportRepo repository.AirportRepository, airlineRepo repository.AirlineRepository) *FlightScheduleService {
	return &FlightScheduleService{
		repo:        repo,
		airportRepo: airportRepo,
		airlineRepo: airlineRepo,
	}
}

// List returns all schedules.
func (s *FlightScheduleService) List() ([]models.FlightSchedule, error) {
	return s.repo.List()
}

// Get fetches one schedule.
func (s *FlightScheduleService) Get(id uint) (*models.FlightSchedule, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrNotFound
	}
	return schedule, nil
}

// Create inserts a schedule. The flight number is unique per schedule.
func (s *FlightScheduleService) Create(schedule *models.FlightSchedule) (*models.FlightSchedule, error) {
	if err := s.validateSchedule(schedule); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByFlightNo(schedule.FlightNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	schedule.ID = 0
	if err := s.repo.Create(schedule); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return schedule, nil
}

// Update replaces the fields of a schedule.
func (s *FlightScheduleService) Update(id uint, schedule *models.FlightSchedule) (*models.FlightSchedule, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if err := s.validateSchedule(schedule); err != nil {
		return nil, err
	}
	if schedule.FlightNo != current.FlightNo {
		existing, err := s.repo.GetByFlightNo(schedule.FlightNo)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrConflict
		}
	}

	schedule.ID = id
	if err := s.repo.Update(schedule); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return schedule, nil
}

// Delete removes a schedule.
func (s *FlightScheduleService) Delete(id uint) error {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *FlightScheduleService) validateSchedule(schedule *models.FlightSchedule) error {
	schedule.FlightNo = strings.ToUpper(strings.TrimSpace(schedule.FlightNo))
	if schedule.FlightNo == "" || len(schedule.FlightNo) > 8 {
		return ErrInvalidInput
	}
	if schedule.FromID == 0 || schedule.ToID == 0 || schedule.FromID == schedule.ToID {
		return ErrInvalidInput
	}
	if schedule.Departure.IsZero() || schedule.Arrival.IsZero() {
		return ErrInvalidInput
	}
	if schedule.AirlineID == 0 {
		return ErrInvalidInput
	}

	for _, airportID := range []uint{schedule.FromID, schedule.ToID} {
		exists, err := s.airportRepo.Exists(airportID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrRelatedNotFound
		}
	}
	exists, err := s.airlineRepo.Exists(schedule.AirlineID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRelatedNotFound
	}
	return nil
}
