package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// FlightScheduleRepository is the flight schedule data access interface.
type FlightScheduleRepository interface {
	List() ([]models.FlightSchedule, error)
	GetByID(id uint) (*models.FlightSchedule, error)
	GetByFlightNo(flightNo string) (*models.FlightSchedule, error)
	Create(schedule *models.FlightSchedule) error
	Update(schedule *models.FlightSchedule) error
	Delete(id uint) error
}

// GormFlightScheduleRepository is the GORM implementation.
type GormFlightScheduleRepository struct {
	db *gorm.DB
}

// NewFlightScheduleRepository creates a flight schedule repository.
func NewFlightScheduleRepository(db *gorm.DB) *GormFlightScheduleRepository {
	return &GormFlightScheduleRepository{db: db}
}

// List returns all schedules.
func (r *GormFlightScheduleRepository) List() ([]models.FlightSchedule, error) {
	var schedules []models.FlightSchedule
	if err := r.db.Order("id ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetByID fetches a schedule by primary key.
func (r *GormFlightScheduleRepository) GetByID(id uint) (*models.FlightSchedule, error) {
	var schedule models.FlightSchedule
	if err := r.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// GetByFlightNo fetches a schedule by flight number.
func (r *GormFlightScheduleRepository) GetByFlightNo(flightNo string) (*models.FlightSchedule, error) {
	var schedule models.FlightSchedule
	if err := r.db.Where("flightno = ?", flightNo).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// Create inserts a schedule.
func (r *GormFlightScheduleRepository) Create(schedule *models.FlightSchedule) error {
	return r.db.Create(schedule).Error
}

// Update persists all fields of a schedule.
func (r *GormFlightScheduleRepository) Update(schedule *models.FlightSchedule) error {
	return r.db.Save(schedule).Error
}

// Delete removes a schedule.
func (r *GormFlightScheduleRepository) Delete(id uint) error {
	return r.db.Delete(&models.FlightSchedule{}, id).Error
}
