package models

// AirplaneType describes an airframe model.
type AirplaneType struct {
	ID          uint   `gorm:"primarykey" json:"type_id"`
	Identifier  string `gorm:"size:50;uniqueIndex;not null" json:"identifier"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName sets the table name.
func (AirplaneType) TableName() string {
	return "airplane_types"
}
