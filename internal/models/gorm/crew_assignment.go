package gorm

import (
	"time"

	"github.com/lib/pq"
)

// CrewAssignment is the single crew roster of a flight
type CrewAssignment struct {
	ID           int64         `gorm:"column:id;primaryKey;autoIncrement"`
	FlightID     int64         `gorm:"column:flight_id;uniqueIndex;not null"`
	PilotIDs     pq.Int64Array `gorm:"column:pilot_ids;type:integer[]"`
	CabinCrewIDs pq.Int64Array `gorm:"column:cabin_crew_ids;type:integer[]"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CrewAssignment) TableName() string {
	return "flight_crew_assignment"
}
