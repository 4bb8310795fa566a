package repositories

import (
	"context"
	"errors"

	"airline-ops/seatcrew/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// FlightRepo reads flights and their vehicle type. Flight CRUD lives elsewhere.
type FlightRepo struct {
	db *gormlib.DB
}

func NewFlightRepo(db *gormlib.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// WithTx returns a copy bound to an open transaction
func (r *FlightRepo) WithTx(tx *gormlib.DB) *FlightRepo {
	return &FlightRepo{db: tx}
}

// FindByNumber returns nil, nil when no flight carries the number
func (r *FlightRepo) FindByNumber(ctx context.Context, flightNumber string) (*gorm.Flight, error) {
	var flight gorm.Flight

	err := r.db.WithContext(ctx).
		Preload("VehicleType").
		Where("flight_number = ?", flightNumber).
		First(&flight).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &flight, nil
}
