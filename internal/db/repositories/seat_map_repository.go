package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// SeatMapRepo is the read side of the seat map, plain SQL over sqlx
type SeatMapRepo struct {
	db *sqlx.DB
}

func NewSeatMapRepo(db *sqlx.DB) *SeatMapRepo {
	return &SeatMapRepo{db}
}

// GetFlightLayout returns nil, nil for an unknown flight number
func (r *SeatMapRepo) GetFlightLayout(ctx context.Context, flightNumber string) (*entities.FlightLayout, error) {
	var layout entities.FlightLayout

	err := r.db.QueryRowxContext(ctx, constants.GetFlightLayoutByNumber, flightNumber).StructScan(&layout)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &layout, nil
}

func (r *SeatMapRepo) ListManifest(ctx context.Context, flightID int64) ([]entities.ManifestRow, error) {
	rows := []entities.ManifestRow{}
	if err := r.db.SelectContext(ctx, &rows, constants.ListFlightManifest, flightID); err != nil {
		return nil, err
	}
	return rows, nil
}
