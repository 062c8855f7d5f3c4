package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// AirportRepository is the airport data access interface.
type AirportRepository interface {
	List() ([]models.Airport, error)
	GetByID(id uint) (*models.Airport, error)
	GetByIATA(iata string) (*models.Airport, error)
	Exists(id uint) (bool, error)
	Create(airport *models.Airport) error
	Update(airport *models.Airport) error
	Delete(id uint) error
}

// GormAirportRepository is the GORM implementation.
type GormAirportRepository struct {
	db *gorm.DB
}

// NewAirportRepository creates an airport repository.
func NewAirportRepository(db *gorm.DB) *GormAirportRepository {
	return &GormAirportRepository{db: db}
}

// List returns all airports.
func (r *GormAirportRepository) List() ([]models.Airport, error) {
	var airports []models.Airport
	if err := r.db.Order("id ASC").Find(&airports).Error; err != nil {
		return nil, err
	}
	return airports, nil
}

// GetByID fetches an airport by primary key.
func (r *GormAirportRepository) GetByID(id uint) (*models.Airport, error) {
	var airport models.Airport
	if err := r.db.First(&airport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airport, nil
}

// GetByIATA fetches an airport by its IATA code.
func (r *GormAirportRepository) GetByIATA(iata string) (*models.Airport, error) {
	var airport models.Airport
	if err := r.db.Where("iata = ?", iata).First(&airport).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airport, nil
}

// Exists reports whether an airport id exists.
func (r *GormAirportRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Airport{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an airport.
func (r *GormAirportRepository) Create(airport *models.Airport) error {
	return r.db.Create(airport).Error
}

// Update persists all fields of an airport.
func (r *GormAirportRepository) Update(airport *models.Airport) error {
	return r.db.Save(airport).Error
}

// Delete removes an airport.
func (r *GormAirportRepository) Delete(id uint) error {
	return r.db.Delete(&models.Airport{}, id).Error
}
