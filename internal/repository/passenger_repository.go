package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// PassengerRepository is the passenger data access interface.
type PassengerRepository interface {
	List() ([]models.Passenger, error)
	GetByID(id uint) (*models.Passenger, error)
	Exists(id uint) (bool, error)
	Create(passenger *models.Passenger) error
	Update(passenger *models.Passenger) error
	Delete(id uint) error
}

// GormPassengerRepository is the GORM implementation.
type GormPassengerRepository struct {
	db *gorm.DB
}

// NewPassengerRepository creates a passenger repository.
func NewPassengerRepository(db *gorm.DB) *GormPassengerRepository {
	return &GormPassengerRepository{db: db}
}

// List returns all passengers.
func (r *GormPassengerRepository) List() ([]models.Passenger, error) {
	var passengers []models.Passenger
	if err := r.db.Order("id ASC").Find(&passengers).Error; err != nil {
		return nil, err
	}
	return passengers, nil
}

// GetByID fetches a passenger by primary key.
func (r *GormPassengerRepository) GetByID(id uint) (*models.Passenger, error) {
	var passenger models.Passenger
	if err := r.db.First(&passenger, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &passenger, nil
}

// Exists reports whether a passenger id exists.
func (r *GormPassengerRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Passenger{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a passenger.
func (r *GormPassengerRepository) Create(passenger *models.Passenger) error {
	return r.db.Create(passenger).Error
}

// Update persists all fields of a passenger.
func (r *GormPassengerRepository) Update(passenger *models.Passenger) error {
	return r.db.Save(passenger).Error
}

// Delete removes a passenger.
func (r *GormPassengerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Passenger{}, id).Error
}
