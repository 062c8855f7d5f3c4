package repository

import "time"

// StaffListFilter filters staff listings.
type StaffListFilter struct {
	Page       int
	PageSize   int
	Keyword    string
	Role       string
	AirportID  uint
	AirlineID  uint
	ActiveOnly bool
}

// FlightListFilter filters flight listings.
type FlightListFilter struct {
	Page      int
	PageSize  int
	FlightNo  string
	FromID    uint
	ToID      uint
	AirlineID uint
}

// BookingListFilter filters booking listings.
type BookingListFilter struct {
	Page        int
	PageSize    int
	FlightID    uint
	PassengerID uint
}

// StaffLoginLogListFilter filters login-log listings.
type StaffLoginLogListFilter struct {
	Page        int
	PageSize    int
	StaffID     uint
	Username    string
	Status      string
	FailReason  string
	ClientIP    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
