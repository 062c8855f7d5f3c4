package repository

import (
	"github.com/flightbase-api/internal/models"

	"gorm.io/gorm"
)

// StaffLoginLogRepository is the login log data access interface.
type StaffLoginLogRepository interface {
	Create(log *models.StaffLoginLog) error
	List(filter StaffLoginLogListFilter) ([]models.StaffLoginLog, int64, error)
}

// GormStaffLoginLogRepository is the GORM implementation.
type GormStaffLoginLogRepository struct {
	db *gorm.DB
}

// NewStaffLoginLogRepository creates a login log repository.
func NewStaffLoginLogRepository(db *gorm.DB) *GormStaffLoginLogRepository {
	return &GormStaffLoginLogRepository{db: db}
}

// Create inserts a login log entry.
func (r *GormStaffLoginLogRepository) Create(log *models.StaffLoginLog) error {
	return r.db.Create(log).Error
}

// List returns login log entries matching the filter, newest first.
func (r *GormStaffLoginLogRepository) List(filter StaffLoginLogListFilter) ([]models.StaffLoginLog, int64, error) {
	query := r.db.Model(&models.StaffLoginLog{})

	if filter.StaffID != 0 {
		query = query.Where("staff_id = ?", filter.StaffID)
	}
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FailReason != "" {
		query = query.Where("fail_reason = ?", filter.FailReason)
	}
	if filter.ClientIP != "" {
		query = query.Where("client_ip = ?", filter.ClientIP)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var logs []models.StaffLoginLog
	if err := query.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
