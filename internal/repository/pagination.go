package repository

import "gorm.io/gorm"

// applyPagination normalizes page arguments and applies limit/offset.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	return query.Limit(pageSize).Offset(offset)
}
