package service

import (
	"strings"

	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/repository"
)

// StaffService manages staff accounts. Accounts are never hard-deleted;
// deactivation flips is_active.
type StaffService struct {
	staffRepo   repository.StaffRepository
	airportRepo repository.AirportRepository
	airlineRepo repository.AirlineRepository
}

// NewStaffService creates a staff service.
func NewStaffService(staffRepo repository.StaffRepository, airportRepo repository.AirportRepository, airlineRepo repository.AirlineRepository) *StaffService {
	return &StaffService{
		staffRepo:   staffRepo,
		airportRepo: airportRepo,
		airlineRepo: airlineRepo,
	}
}

// List returns staff accounts matching the filter.
func (s *StaffService) List(filter repository.StaffListFilter) ([]models.Staff, int64, error) {
	return s.staffRepo.List(filter)
}

// Get fetches one staff account.
func (s *StaffService) Get(id uint) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrNotFound
	}
	return staff, nil
}

// UpdateStaffInput carries optional staff profile changes. Nil fields
// are left untouched.
type UpdateStaffInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	AirportID *uint
	AirlineID *uint
	Role      *string
	IsActive  *bool
}

// Update applies profile changes. Non-administrators may only edit
// their own account and may never touch role or is_active.
func (s *StaffService) Update(actorID uint, actorRole string, id uint, input UpdateStaffInput) (*models.Staff, error) {
	isAdmin := actorRole == constants.RoleAdmin
	if !isAdmin && actorID != id {
		return nil, ErrForbidden
	}
	if !isAdmin && (input.Role != nil || input.IsActive != nil) {
		return nil, ErrForbidden
	}

	staff, err := s.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrNotFound
	}

	if input.Email != nil {
		email, err := normalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if email != staff.Email {
			existing, err := s.staffRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != staff.ID {
				return nil, ErrEmailExists
			}
			staff.Email = email
		}
	}
	if input.FirstName != nil {
		staff.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		staff.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.AirportID != nil {
		if *input.AirportID != 0 {
			exists, err := s.airportRepo.Exists(*input.AirportID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, ErrRelatedNotFound
			}
			staff.AirportID = input.AirportID
		} else {
			staff.AirportID = nil
		}
	}
	if input.AirlineID != nil {
		if *input.AirlineID != 0 {
			exists, err := s.airlineRepo.Exists(*input.AirlineID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, ErrRelatedNotFound
			}
			staff.AirlineID = input.AirlineID
		} else {
			staff.AirlineID = nil
		}
	}
	if input.Role != nil {
		role := strings.TrimSpace(*input.Role)
		if !isKnownRole(role) {
			return nil, ErrInvalidInput
		}
		staff.Role = role
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := s.staffRepo.Update(staff); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return staff, nil
}

// Deactivate disables an account so it can no longer authenticate.
func (s *StaffService) Deactivate(id uint) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrNotFound
	}
	if staff.IsActive {
		staff.IsActive = false
		if err := s.staffRepo.Update(staff); err != nil {
			return nil, err
		}
	}
	return staff, nil
}

func isKnownRole(role string) bool {
	for _, known := range constants.Roles {
		if role == known {
			return true
		}
	}
	return false
}
