package repository

import (
	"errors"

	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// StaffRepository is the staff data access interface.
type StaffRepository interface {
	GetByID(id uint) (*models.Staff, error)
	GetByUsername(username string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	List(filter StaffListFilter) ([]models.Staff, int64, error)
}

// GormStaffRepository is the GORM implementation.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a staff repository.
func NewStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetByID fetches a staff member by primary key.
func (r *GormStaffRepository) GetByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// GetByUsername fetches a staff member by exact username.
func (r *GormStaffRepository) GetByUsername(username string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.Where("username = ?", username).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// GetByEmail fetches a staff member by email.
func (r *GormStaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.Where("email = ?", email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// Create inserts a staff member.
func (r *GormStaffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// Update persists all fields of a staff member.
func (r *GormStaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

// List returns staff members matching the filter.
func (r *GormStaffRepository) List(filter StaffListFilter) ([]models.Staff, int64, error) {
	query := r.db.Model(&models.Staff{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.AirportID != 0 {
		query = query.Where("airport_id = ?", filter.AirportID)
	}
	if filter.AirlineID != 0 {
		query = query.Where("airline_id = ?", filter.AirlineID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var staff []models.Staff
	if err := query.Order("id ASC").Find(&staff).Error; err != nil {
		return nil, 0, err
	}
	return staff, total, nil
}
