package repositories

import (
	"context"
	"errors"

	"airline-ops/seatcrew/internal/models/gorm"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CrewAssignmentRepo handles flight_crew_assignment, one row per flight
type CrewAssignmentRepo struct {
	db *gormlib.DB
}

func NewCrewAssignmentRepo(db *gormlib.DB) *CrewAssignmentRepo {
	return &CrewAssignmentRepo{db: db}
}

// Upsert inserts the roster or overwrites the existing one for the flight.
// ON CONFLICT (flight_id) DO UPDATE pilot_ids, cabin_crew_ids, updated_at
func (r *CrewAssignmentRepo) Upsert(ctx context.Context, crew *gorm.CrewAssignment) (*gorm.CrewAssignment, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"pilot_ids", "cabin_crew_ids", "updated_at"}),
		}).
		Create(crew).Error
	if err != nil {
		return nil, err
	}

	// on conflict the returned id is not reliable across drivers, read the stored row back
	return r.FindByFlight(ctx, crew.FlightID)
}

// FindByFlight returns nil, nil when the flight has no roster yet
func (r *CrewAssignmentRepo) FindByFlight(ctx context.Context, flightID int64) (*gorm.CrewAssignment, error) {
	var crew gorm.CrewAssignment

	err := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		First(&crew).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &crew, nil
}
