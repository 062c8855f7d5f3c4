package models

import "time"

// StaffLoginLog records each staff login attempt for audit.
// Written asynchronously by the worker.
type StaffLoginLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	StaffID    uint      `gorm:"index" json:"staff_id"` // 0 for unknown usernames
	Username   string    `gorm:"size:50;index;not null" json:"username"`
	Status     string    `gorm:"size:16;index;not null" json:"status"`
	FailReason string    `gorm:"size:32;index" json:"fail_reason"`
	ClientIP   string    `gorm:"type:varchar(64);index" json:"client_ip"`
	UserAgent  string    `gorm:"type:text" json:"user_agent"`
	RequestID  string    `gorm:"type:varchar(64);index" json:"request_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (StaffLoginLog) TableName() string {
	return "staff_login_logs"
}
