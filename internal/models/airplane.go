package models

// Airplane is a single aircraft owned by an airline.
type Airplane struct {
	ID        uint `gorm:"primarykey" json:"airplane_id"`
	Capacity  int  `gorm:"not null" json:"capacity"`
	TypeID    uint `gorm:"not null;index" json:"type_id"`
	AirlineID uint `gorm:"not null;index" json:"airline_id"`

	Type    *AirplaneType `gorm:"foreignKey:TypeID" json:"-"`
	Airline *Airline      `gorm:"foreignKey:AirlineID" json:"-"`
}

// TableName sets the table name.
func (Airplane) TableName() string {
	return "airplanes"
}
