package gorm

import "time"

// AffiliatedSeating records that two travellers on a flight want to sit together.
// Informational only; the allocator does not read it.
type AffiliatedSeating struct {
	ID                    int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MainPassengerID       int64     `gorm:"column:main_passenger_id;not null"`
	AffiliatedPassengerID int64     `gorm:"column:affiliated_passenger_id;not null"`
	FlightNumber          string    `gorm:"column:flight_number;type:varchar(6);index;not null"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AffiliatedSeating) TableName() string {
	return "affiliated_seating"
}

// InfantParentRelationship links an infant to the adult travelling with it
type InfantParentRelationship struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	InfantPassengerID int64     `gorm:"column:infant_passenger_id;not null"`
	ParentPassengerID int64     `gorm:"column:parent_passenger_id;not null"`
	FlightNumber      string    `gorm:"column:flight_number;type:varchar(6);index;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (InfantParentRelationship) TableName() string {
	return "infant_parent_relationship"
}
