package models

import "time"

// Staff is an airport staff account. Accounts are never hard-deleted:
// deactivation flips IsActive instead.
type Staff struct {
	ID                  uint       `gorm:"primarykey" json:"staff_id"`
	Username            string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email               string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"size:255;not null" json:"-"` // never serialized
	FirstName           string     `gorm:"size:50" json:"first_name"`
	LastName            string     `gorm:"size:50" json:"last_name"`
	Role                string     `gorm:"size:20;not null;default:'Operator'" json:"role"`
	AirportID           *uint      `gorm:"index" json:"airport_id"`
	AirlineID           *uint      `gorm:"index" json:"airline_id"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	FailedLoginAttempts int        `gorm:"not null;default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `gorm:"index" json:"created_at"`
	LastLogin           *time.Time `json:"last_login"`

	Airport *Airport `gorm:"foreignKey:AirportID" json:"-"`
	Airline *Airline `gorm:"foreignKey:AirlineID" json:"-"`
}

// TableName sets the table name.
func (Staff) TableName() string {
	return "airport_staff"
}
