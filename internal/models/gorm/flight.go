package gorm

import "time"

type Flight struct {
	ID                   int64      `gorm:"column:id;primaryKey;autoIncrement"`
	FlightNumber         string     `gorm:"column:flight_number;type:varchar(6);uniqueIndex;not null"`
	VehicleTypeID        int64      `gorm:"column:vehicle_type_id;not null"`
	SourceAirportID      int64      `gorm:"column:source_airport_id"`
	DestinationAirportID int64      `gorm:"column:destination_airport_id"`
	DepartureTime        *time.Time `gorm:"column:departure_time"`
	ArrivalTime          *time.Time `gorm:"column:arrival_time"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	VehicleType VehicleType `gorm:"foreignKey:VehicleTypeID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flight"
}
