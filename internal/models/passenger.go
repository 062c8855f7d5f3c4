package models

// Passenger is a booked traveller.
type Passenger struct {
	ID         uint   `gorm:"primarykey" json:"passenger_id"`
	FirstName  string `gorm:"size:100;not null" json:"firstname"`
	LastName   string `gorm:"size:100;not null" json:"lastname"`
	PassportNo string `gorm:"size:9;uniqueIndex;not null" json:"passportno"`

	Bookings []Booking `gorm:"foreignKey:PassengerID" json:"-"`
}

// TableName sets the table name.
func (Passenger) TableName() string {
	return "passengers"
}
