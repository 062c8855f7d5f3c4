package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// AirplaneRepository is the airplane data access interface.
type AirplaneRepository interface {
	List() ([]models.Airplane, error)
	GetByID(id uint) (*models.Airplane, error)
	Exists(id uint) (bool, error)
	Create(airplane *models.Airplane) error
	Update(airplane *models.Airplane) error
	Delete(id uint) error
}

// GormAirplaneRepository is the GORM implementation.
type GormAirplaneRepository struct {
	db *gorm.DB
}

// NewAirplaneRepository creates an airplane repository.
func NewAirplaneRepository(db *gorm.DB) *GormAirplaneRepository {
	return &GormAirplaneRepository{db: db}
}

// List returns all airplanes.
func (r *GormAirplaneRepository) List() ([]models.Airplane, error) {
	var airplanes []models.Airplane
	if err := r.db.Order("id ASC").Find(&airplanes).Error; err != nil {
		return nil, err
	}
	return airplanes, nil
}

// GetByID fetches an airplane by primary key.
func (r *GormAirplaneRepository) GetByID(id uint) (*models.Airplane, error) {
	var airplane models.Airplane
	if err := r.db.First(&airplane, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airplane, nil
}

// Exists reports whether an airplane id exists.
func (r *GormAirplaneRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Airplane{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an airplane.
func (r *GormAirplaneRepository) Create(airplane *models.Airplane) error {
	return r.db.Create(airplane).Error
}

// Update persists all fields of an airplane.
func (r *GormAirplaneRepository) Update(airplane *models.Airplane) error {
	return r.db.Save(airplane).Error
}

// Delete removes an airplane.
func (r *GormAirplaneRepository) Delete(id uint) error {
	return r.db.Delete(&models.Airplane{}, id).Error
}

// AirplaneTypeRepository is the airplane type data access interface.
type AirplaneTypeRepository interface {
	List() ([]models.AirplaneType, error)
	GetByID(id uint) (*models.AirplaneType, error)
	Exists(id uint) (bool, error)
	Create(airplaneType *models.AirplaneType) error
	Update(airplaneType *models.AirplaneType) error
	Delete(id uint) error
}

// GormAirplaneTypeRepository is the GORM implementation.
type GormAirplaneTypeRepository struct {
	db *gorm.DB
}

// NewAirplaneTypeRepository creates an airplane type repository.
func NewAirplaneTypeRepository(db *gorm.DB) *GormAirplaneTypeRepository {
	return &GormAirplaneTypeRepository{db: db}
}

// List returns all airplane types.
func (r *GormAirplaneTypeRepository) List() ([]models.AirplaneType, error) {
	var types []models.AirplaneType
	if err := r.db.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetByID fetches an airplane type by primary key.
func (r *GormAirplaneTypeRepository) GetByID(id uint) (*models.AirplaneType, error) {
	var airplaneType models.AirplaneType
	if err := r.db.First(&airplaneType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airplaneType, nil
}

// Exists reports whether an airplane type id exists.
func (r *GormAirplaneTypeRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.AirplaneType{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an airplane type.
func (r *GormAirplaneTypeRepository) Create(airplaneType *models.AirplaneType) error {
	return r.db.Create(airplaneType).Error
}

// Update persists all fields of an airplane type.
func (r *GormAirplaneTypeRepository) Update(airplaneType *models.AirplaneType) error {
	return r.db.Save(airplaneType).Error
}

// Delete removes an airplane type.
func (r *GormAirplaneTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.AirplaneType{}, id).Error
}
