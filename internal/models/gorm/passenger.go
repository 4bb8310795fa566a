package gorm

import "time"

type Passenger struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	Age         int       `gorm:"column:age"`
	Gender      string    `gorm:"column:gender"`
	Nationality string    `gorm:"column:nationality"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Passenger) TableName() string {
	return "passenger"
}

// SeatType is a class label ("Business", "Economy"), not a physical seat
type SeatType struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;uniqueIndex;not null"`
}

// TableName specifies the table name for GORM
func (SeatType) TableName() string {
	return "seat_type"
}

// PassengerAssignment joins a passenger to a flight. A nil SeatNumber means unseated.
// (flight_id, seat_number) is unique so two passengers can never share a seat.
type PassengerAssignment struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PassengerID int64     `gorm:"column:passenger_id;not null;uniqueIndex:idx_fpa_passenger_flight"`
	FlightID    int64     `gorm:"column:flight_id;not null;uniqueIndex:idx_fpa_passenger_flight;uniqueIndex:idx_fpa_flight_seat"`
	SeatTypeID  *int64    `gorm:"column:seat_type_id"`
	SeatNumber  *string   `gorm:"column:seat_number;type:varchar(8);uniqueIndex:idx_fpa_flight_seat"`
	IsInfant    bool      `gorm:"column:is_infant;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Passenger Passenger `gorm:"foreignKey:PassengerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PassengerAssignment) TableName() string {
	return "flight_passenger_assignment"
}
