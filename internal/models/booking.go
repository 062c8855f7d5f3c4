package models

import "github.com/shopspring/decimal"

// Booking links a passenger to a flight seat.
type Booking struct {
	ID          uint            `gorm:"primarykey" json:"booking_id"`
	FlightID    uint            `gorm:"not null;index" json:"flight_id"`
	PassengerID uint            `gorm:"not null;index" json:"passenger_id"`
	Seat        string          `gorm:"size:4;not null" json:"seat"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	Flight    *Flight    `gorm:"foreignKey:FlightID" json:"-"`
	Passenger *Passenger `gorm:"foreignKey:PassengerID" json:"-"`
}

// TableName sets the table name.
func (Booking) TableName() string {
	return "bookings"
}
