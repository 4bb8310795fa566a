package gorm

import (
	"encoding/json"
	"time"
)

// VehicleType is aircraft reference data. The engine only reads it.
type VehicleType struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TypeName      string          `gorm:"column:type_name;uniqueIndex;not null"`
	TotalSeats    int             `gorm:"column:total_seats;not null"`
	SeatingPlan   json.RawMessage `gorm:"column:seating_plan;type:jsonb"`
	MaxCrew       int             `gorm:"column:max_crew"`
	MaxPassengers int             `gorm:"column:max_passengers"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (VehicleType) TableName() string {
	return "vehicle_type"
}
