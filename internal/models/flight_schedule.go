package models

import "time"

// FlightSchedule is a recurring weekly schedule entry for a route.
type FlightSchedule struct {
	ID        uint      `gorm:"primarykey" json:"schedule_id"`
	FlightNo  string    `gorm:"size:8;uniqueIndex;not null" json:"flightno"`
	FromID    uint      `gorm:"column:from_airport;not null;index" json:"from"`
	ToID      uint      `gorm:"column:to_airport;not null;index" json:"to"`
	Departure time.Time `gorm:"not null" json:"departure"`
	Arrival   time.Time `gorm:"not null" json:"arrival"`
	AirlineID uint      `gorm:"not null;index" json:"airline_id"`
	Monday    bool      `gorm:"not null;default:false" json:"monday"`
	Tuesday   bool      `gorm:"not null;default:false" json:"tuesday"`
	Wednesday bool      `gorm:"not null;default:false" json:"wednesday"`
	Thursday  bool      `gorm:"not null;default:false" json:"thursday"`
	Friday    bool      `gorm:"not null;default:false" json:"friday"`
	Saturday  bool      `gorm:"not null;default:false" json:"saturday"`
	Sunday    bool      `gorm:"not null;default:false" json:"sunday"`

	FromAirport *Airport `gorm:"foreignKey:FromID" json:"-"`
	ToAirport   *Airport `gorm:"foreignKey:ToID" json:"-"`
	Airline     *Airline `gorm:"foreignKey:AirlineID" json:"-"`
}

// TableName sets the table name.
func (FlightSchedule) TableName() string {
	return "flight_schedules"
}
