package models

// Airport is an airport master record.
type Airport struct {
	ID   uint   `gorm:"primarykey" json:"airport_id"`
	IATA string `gorm:"size:3;uniqueIndex;not null" json:"iata"`
	ICAO string `gorm:"size:4;uniqueIndex;not null" json:"icao"`
	Name string `gorm:"size:50;not null" json:"name"`
}

// TableName sets the table name.
func (Airport) TableName() string {
	return "airports"
}
