package models

// Airline is an airline master record. BaseAirportID references the
// airline's home airport.
type Airline struct {
	ID            uint   `gorm:"primarykey" json:"airline_id"`
	IATA          string `gorm:"size:3;uniqueIndex;not null" json:"iata"`
	Name          string `gorm:"size:30;not null" json:"airline_name"`
	BaseAirportID uint   `gorm:"not null;index" json:"base_airport"`

	BaseAirport *Airport `gorm:"foreignKey:BaseAirportID" json:"-"`
}

// TableName sets the table name.
func (Airline) TableName() string {
	return "airlines"
}
