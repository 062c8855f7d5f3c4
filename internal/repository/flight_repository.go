package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// FlightRepository is the flight data access interface.
type FlightRepository interface {
	List(filter FlightListFilter) ([]models.Flight, int64, error)
	GetByID(id uint) (*models.Flight, error)
	ListByFlightNo(flightNo string) ([]models.Flight, error)
	Exists(id uint) (bool, error)
	Create(flight *models.Flight) error
	Update(flight *models.Flight) error
	Delete(id uint) error
}

// GormFlightRepository is the GORM implementation.
type GormFlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a flight repository.
func NewFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

// List returns flights matching the filter.
func (r *GormFlightRepository) List(filter FlightListFilter) ([]models.Flight, int64, error) {
	query := r.db.Model(&models.Flight{})

	if filter.FlightNo != "" {
		query = query.Where("flightno = ?", filter.FlightNo)
	}
	if filter.FromID != 0 {
		query = query.Where("from_airport = ?", filter.FromID)
	}
	if filter.ToID != 0 {
		query = query.Where("to_airport = ?", filter.ToID)
	}
	if filter.AirlineID != 0 {
		query = query.Where("airline_id = ?", filter.AirlineID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var flights []models.Flight
	if err := query.Order("id ASC").Find(&flights).Error; err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

// GetByID fetches a flight by primary key.
func (r *GormFlightRepository) GetByID(id uint) (*models.Flight, error) {
	var flight models.Flight
	if err := r.db.First(&flight, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

// ListByFlightNo returns all flights with a given flight number.
func (r *GormFlightRepository) ListByFlightNo(flightNo string) ([]models.Flight, error) {
	var flights []models.Flight
	if err := r.db.Where("flightno = ?", flightNo).Order("id ASC").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// Exists reports whether a flight id exists.
func (r *GormFlightRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Flight{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a flight.
func (r *GormFlightRepository) Create(flight *models.Flight) error {
	return r.db.Create(flight).Error
}

// Update persists all fields of a flight.
func (r *GormFlightRepository) Update(flight *models.Flight) error {
	return r.db.Save(flight).Error
}

// Delete removes a flight.
func (r *GormFlightRepository) Delete(id uint) error {
	return r.db.Delete(&models.Flight{}, id).Error
}
