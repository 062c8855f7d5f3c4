package service

import (
	"strings"

	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"

	"github.com/shopspring/decimal"
)

// BookingService manages seat bookings.
type BookingService struct {
	repo          repository.BookingRepository
	flightRepo    repository.FlightRepository
	passengerRepo repository.PassengerRepository
}

// NewBookingService creates a booking service.
func NewBookingService(repo repository.BookingRepository, flightRepo repository.FlightRepository, passengerRepo repository.PassengerRepository) *BookingService {
	return &BookingService{
		repo:          repo,
		flightRepo:    flightRepo,
		passengerRepo: passengerRepo,
	}
}

// List returns bookings matching the filter.
func (s *BookingService) List(filter repository.BookingListFilter) ([]models.Booking, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one booking.
func (s *BookingService) Get(id uint) (*models.Booking, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

// BookingInput carries booking fields for create and update. Price is
// an exact decimal amount.
type BookingInput struct {
	FlightID    uint
	PassengerID uint
	Seat        string
	Price       decimal.Decimal
}

// Create inserts a booking after validating its references.
func (s *BookingService) Create(input BookingInput) (*models.Booking, error) {
	seat, err := s.validateBookingInput(&input)
	if err != nil {
		return nil, err
	}
	booking := &models.Booking{
		FlightID:    input.FlightID,
		PassengerID: input.PassengerID,
		Seat:        seat,
		Price:       input.Price,
	}
	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Update replaces the fields of a booking.
func (s *BookingService) Update(id uint, input BookingInput) (*models.Booking, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	seat, err := s.validateBookingInput(&input)
	if err != nil {
		return nil, err
	}

	booking.FlightID = input.FlightID
	booking.PassengerID = input.PassengerID
	booking.Seat = seat
	booking.Price = input.Price
	if err := s.repo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete removes a booking.
func (s *BookingService) Delete(id uint) error {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *BookingService) validateBookingInput(input *BookingInput) (string, error) {
	seat := strings.ToUpper(strings.TrimSpace(input.Seat))
	if seat == "" || len(seat) > 4 {
		return "", ErrInvalidInput
	}
	if input.FlightID == 0 || input.PassengerID == 0 {
		return "", ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return "", ErrInvalidInput
	}
	input.Price = input.Price.Round(2)

	exists, err := s.flightRepo.Exists(input.FlightID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrRelatedNotFound
	}
	exists, err = s.passengerRepo.Exists(input.PassengerID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrRelatedNotFound
	}
	return seat, nil
}
