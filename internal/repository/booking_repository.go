package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// BookingRepository is the booking data access interface.
type BookingRepository interface {
	List(filter BookingListFilter) ([]models.Booking, int64, error)
	GetByID(id uint) (*models.Booking, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	Delete(id uint) error
}

// GormBookingRepository is the GORM implementation.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// List returns bookings matching the filter.
func (r *GormBookingRepository) List(filter BookingListFilter) ([]models.Booking, int64, error) {
	query := r.db.Model(&models.Booking{})

	if filter.FlightID != 0 {
		query = query.Where("flight_id = ?", filter.FlightID)
	}
	if filter.PassengerID != 0 {
		query = query.Where("passenger_id = ?", filter.PassengerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var bookings []models.Booking
	if err := query.Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// GetByID fetches a booking by primary key.
func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// Create inserts a booking.
func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// Update persists all fields of a booking.
func (r *GormBookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

// Delete removes a booking.
func (r *GormBookingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Booking{}, id).Error
}
