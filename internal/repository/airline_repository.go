package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// AirlineRepository is the airline data access interface.
type AirlineRepository interface {
	List() ([]models.Airline, error)
	GetByID(id uint) (*models.Airline, error)
	Exists(id uint) (bool, error)
	Create(airline *models.Airline) error
	Update(airline *models.Airline) error
	Delete(id uint) error
}

// GormAirlineRepository is the GORM implementation.
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewAirlineRepository creates an airline repository.
func NewAirlineRepository(db *gorm.DB) *GormAirlineRepository {
	return &GormAirlineRepository{db: db}
}

// List returns all airlines.
func (r *GormAirlineRepository) List() ([]models.Airline, error) {
	var airlines []models.Airline
	if err := r.db.Order("id ASC").Find(&airlines).Error; err != nil {
		return nil, err
	}
	return airlines, nil
}

// GetByID fetches an airline by primary key.
func (r *GormAirlineRepository) GetByID(id uint) (*models.Airline, error) {
	var airline models.Airline
	if err := r.db.First(&airline, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airline, nil
}

// Exists reports whether an airline id exists.
func (r *GormAirlineRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Airline{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an airline.
func (r *GormAirlineRepository) Create(airline *models.Airline) error {
	return r.db.Create(airline).Error
}

// Update persists all fields of an airline.
func (r *GormAirlineRepository) Update(airline *models.Airline) error {
	return r.db.Save(airline).Error
}

// Delete removes an airline.
func (r *GormAirlineRepository) Delete(id uint) error {
	return r.db.Delete(&models.Airline{}, id).Error
}
