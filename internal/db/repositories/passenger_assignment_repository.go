package repositories

import (
	"context"
	"errors"

	"airline-ops/seatcrew/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PassengerAssignmentRepo handles flight_passenger_assignment rows
type PassengerAssignmentRepo struct {
	db *gormlib.DB
}

func NewPassengerAssignmentRepo(db *gormlib.DB) *PassengerAssignmentRepo {
	return &PassengerAssignmentRepo{db: db}
}

// WithTx returns a copy bound to an open transaction
func (r *PassengerAssignmentRepo) WithTx(tx *gormlib.DB) *PassengerAssignmentRepo {
	return &PassengerAssignmentRepo{db: tx}
}

// LockByFlight reads every assignment row of a flight in id order and holds
// row locks on them until the surrounding transaction ends.
// SELECT ... WHERE flight_id = $1 ORDER BY id FOR UPDATE
func (r *PassengerAssignmentRepo) LockByFlight(ctx context.Context, flightID int64) ([]gorm.PassengerAssignment, error) {
	var rows []gorm.PassengerAssignment

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("flight_id = ?", flightID).
		Order("id ASC").
		Find(&rows).Error

	return rows, err
}

// FindByPassenger returns nil, nil when the passenger was never added to the flight
func (r *PassengerAssignmentRepo) FindByPassenger(ctx context.Context, flightID, passengerID int64) (*gorm.PassengerAssignment, error) {
	var row gorm.PassengerAssignment

	err := r.db.WithContext(ctx).
		Where("flight_id = ? AND passenger_id = ?", flightID, passengerID).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// FindSeatHolder returns the row of any passenger other than excludePassengerID
// holding seatNumber on the flight, or nil, nil when the seat is free for them.
// seatNumber must be upper case; stored values are compared case-insensitively.
func (r *PassengerAssignmentRepo) FindSeatHolder(ctx context.Context, flightID int64, seatNumber string, excludePassengerID int64) (*gorm.PassengerAssignment, error) {
	var row gorm.PassengerAssignment

	err := r.db.WithContext(ctx).
		Where("flight_id = ? AND UPPER(TRIM(seat_number)) = ? AND passenger_id <> ?", flightID, seatNumber, excludePassengerID).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// UpdateSeat writes seat_number on a single assignment row
func (r *PassengerAssignmentRepo) UpdateSeat(ctx context.Context, assignmentID int64, seatNumber string) error {
	res := r.db.WithContext(ctx).
		Model(&gorm.PassengerAssignment{}).
		Where("id = ?", assignmentID).
		Update("seat_number", seatNumber)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gormlib.ErrRecordNotFound
	}
	return nil
}
