package repositories

import (
	"context"

	"airline-ops/seatcrew/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

type SeatTypeRepo struct {
	db *gormlib.DB
}

func NewSeatTypeRepo(db *gormlib.DB) *SeatTypeRepo {
	return &SeatTypeRepo{db: db}
}

func (r *SeatTypeRepo) List(ctx context.Context) ([]gorm.SeatType, error) {
	var types []gorm.SeatType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}
