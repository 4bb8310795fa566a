package services

import (
	"context"
	"fmt"

	gormlib "gorm.io/gorm"

	"airline-ops/seatcrew/internal/db/repositories"
	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/models/dtos"
	"airline-ops/seatcrew/internal/models/gorm"
)

// RelationshipService stores advisory passenger pairs per flight.
// It does not check that either passenger is on the flight, and the seat
// allocator does not read these pairs.
type RelationshipService struct {
	repo *repositories.RelationshipRepo
}

func NewRelationshipService(db *gormlib.DB) *RelationshipService {
	return &RelationshipService{repo: repositories.NewRelationshipRepo(db)}
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: field, Msg: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

func (s *RelationshipService) CreateAffiliated(ctx context.Context, flightNumber string, mainID, affiliatedID int64) (*dtos.AffiliatedSeatingResponse, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}
	if err := requireID("main_passenger_id", mainID); err != nil {
		return nil, err
	}
	if err := requireID("affiliated_passenger_id", affiliatedID); err != nil {
		return nil, err
	}

	rel := gorm.AffiliatedSeating{
		MainPassengerID:       mainID,
		AffiliatedPassengerID: affiliatedID,
		FlightNumber:          fn,
	}
	if err := s.repo.CreateAffiliated(ctx, &rel); err != nil {
		return nil, domain.Internal("failed to create affiliated seating", err)
	}

	logging.Info("Affiliated seating created", "flight_number", fn, "id", rel.ID)
	return toAffiliatedResponse(rel), nil
}

func (s *RelationshipService) ListAffiliated(ctx context.Context, flightNumber string) ([]dtos.AffiliatedSeatingResponse, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}

	rels, err := s.repo.ListAffiliated(ctx, fn)
	if err != nil {
		return nil, domain.Internal("failed to list affiliated seating", err)
	}

	out := make([]dtos.AffiliatedSeatingResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, *toAffiliatedResponse(rel))
	}
	return out, nil
}

func (s *RelationshipService) DeleteAffiliated(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteAffiliated(ctx, id)
	if err != nil {
		return domain.Internal("failed to delete affiliated seating", err)
	}
	if !deleted {
		return domain.NotFoundError{Resource: "Affiliated seating"}
	}
	return nil
}

func (s *RelationshipService) CreateInfantParent(ctx context.Context, flightNumber string, infantID, parentID int64) (*dtos.InfantParentResponse, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}
	if err := requireID("infant_passenger_id", infantID); err != nil {
		return nil, err
	}
	if err := requireID("parent_passenger_id", parentID); err != nil {
		return nil, err
	}

	rel := gorm.InfantParentRelationship{
		InfantPassengerID: infantID,
		ParentPassengerID: parentID,
		FlightNumber:      fn,
	}
	if err := s.repo.CreateInfantParent(ctx, &rel); err != nil {
		return nil, domain.Internal("failed to create infant-parent relationship", err)
	}

	logging.Info("Infant-parent relationship created", "flight_number", fn, "id", rel.ID)
	return toInfantParentResponse(rel), nil
}

func (s *RelationshipService) ListInfantParent(ctx context.Context, flightNumber string) ([]dtos.InfantParentResponse, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}

	rels, err := s.repo.ListInfantParent(ctx, fn)
	if err != nil {
		return nil, domain.Internal("failed to list infant-parent relationships", err)
	}

	out := make([]dtos.InfantParentResponse, 0, len(rels))
	for _, rel := range rels {
		out = append(out, *toInfantParentResponse(rel))
	}
	return out, nil
}

func (s *RelationshipService) DeleteInfantParent(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteInfantParent(ctx, id)
	if err != nil {
		return domain.Internal("failed to delete infant-parent relationship", err)
	}
	if !deleted {
		return domain.NotFoundError{Resource: "Infant-parent relationship"}
	}
	return nil
}

func toAffiliatedResponse(rel gorm.AffiliatedSeating) *dtos.AffiliatedSeatingResponse {
	return &dtos.AffiliatedSeatingResponse{
		ID:                    rel.ID,
		MainPassengerID:       rel.MainPassengerID,
		AffiliatedPassengerID: rel.AffiliatedPassengerID,
		FlightNumber:          rel.FlightNumber,
		CreatedAt:             rel.CreatedAt,
	}
}

func toInfantParentResponse(rel gorm.InfantParentRelationship) *dtos.InfantParentResponse {
	return &dtos.InfantParentResponse{
		ID:                rel.ID,
		InfantPassengerID: rel.InfantPassengerID,
		ParentPassengerID: rel.ParentPassengerID,
		FlightNumber:      rel.FlightNumber,
		CreatedAt:         rel.CreatedAt,
	}
}
