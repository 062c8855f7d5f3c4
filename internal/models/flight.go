package models

// Flight is a single operated flight leg. Departure and arrival are
// local times of day in HH:MM format.
type Flight struct {
	ID         uint   `gorm:"primarykey" json:"flight_id"`
	FlightNo   string `gorm:"size:8;index;not null" json:"flightno"`
	FromID     uint   `gorm:"column:from_airport;not null;index" json:"from"`
	ToID       uint   `gorm:"column:to_airport;not null;index" json:"to"`
	Departure  string `gorm:"size:5;not null" json:"departure"`
	Arrival    string `gorm:"size:5;not null" json:"arrival"`
	AirlineID  uint   `gorm:"not null;index" json:"airline_id"`
	AirplaneID uint   `gorm:"not null;index" json:"airplane_id"`

	FromAirport *Airport  `gorm:"foreignKey:FromID" json:"-"`
	ToAirport   *Airport  `gorm:"foreignKey:ToID" json:"-"`
	Airline     *Airline  `gorm:"foreignKey:AirlineID" json:"-"`
	Airplane    *Airplane `gorm:"foreignKey:AirplaneID" json:"-"`
}

// TableName sets the table name.
func (Flight) TableName() string {
	return "flights"
}
