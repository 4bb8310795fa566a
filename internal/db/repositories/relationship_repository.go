package repositories

import (
	"context"

	"airline-ops/seatcrew/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// RelationshipRepo stores affiliated-seating and infant-parent pairs
type RelationshipRepo struct {
	db *gormlib.DB
}

func NewRelationshipRepo(db *gormlib.DB) *RelationshipRepo {
	return &RelationshipRepo{db: db}
}

func (r *RelationshipRepo) CreateAffiliated(ctx context.Context, rel *gorm.AffiliatedSeating) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *RelationshipRepo) ListAffiliated(ctx context.Context, flightNumber string) ([]gorm.AffiliatedSeating, error) {
	var rels []gorm.AffiliatedSeating
	err := r.db.WithContext(ctx).
		Where("flight_number = ?", flightNumber).
		Order("id ASC").
		Find(&rels).Error
	return rels, err
}

// DeleteAffiliated reports false when no row had the id
func (r *RelationshipRepo) DeleteAffiliated(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&gorm.AffiliatedSeating{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *RelationshipRepo) CreateInfantParent(ctx context.Context, rel *gorm.InfantParentRelationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *RelationshipRepo) ListInfantParent(ctx context.Context, flightNumber string) ([]gorm.InfantParentRelationship, error) {
	var rels []gorm.InfantParentRelationship
	err := r.db.WithContext(ctx).
		Where("flight_number = ?", flightNumber).
		Order("id ASC").
		Find(&rels).Error
	return rels, err
}

// DeleteInfantParent reports false when no row had the id
func (r *RelationshipRepo) DeleteInfantParent(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&gorm.InfantParentRelationship{}, id)
	return res.RowsAffected > 0, res.Error
}
