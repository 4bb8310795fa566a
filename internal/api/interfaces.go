package api

import (
	"context"

	"airline-ops/seatcrew/internal/models/dtos"
	"airline-ops/seatcrew/internal/services"
)

type SeatAssigner interface {
	AutoAssign(ctx context.Context, flightNumber string) (*dtos.AutoAssignResult, error)
	AssignSeat(ctx context.Context, in services.ManualAssignment) (*dtos.SeatAssignmentResult, error)
	SeatMap(ctx context.Context, flightNumber string) (*dtos.SeatMapResponse, error)
}

type CrewRoster interface {
	SaveCrew(ctx context.Context, flightNumber string, pilotIDs, cabinCrewIDs []int64) (*dtos.CrewAssignmentResponse, error)
	GetCrew(ctx context.Context, flightNumber string) (*dtos.CrewAssignmentResponse, error)
}

type RelationshipRegistry interface {
	CreateAffiliated(ctx context.Context, flightNumber string, mainID, affiliatedID int64) (*dtos.AffiliatedSeatingResponse, error)
	ListAffiliated(ctx context.Context, flightNumber string) ([]dtos.AffiliatedSeatingResponse, error)
	DeleteAffiliated(ctx context.Context, id int64) error
	CreateInfantParent(ctx context.Context, flightNumber string, infantID, parentID int64) (*dtos.InfantParentResponse, error)
	ListInfantParent(ctx context.Context, flightNumber string) ([]dtos.InfantParentResponse, error)
	DeleteInfantParent(ctx context.Context, id int64) error
}

var (
	_ SeatAssigner         = (*services.SeatAssignmentService)(nil)
	_ CrewRoster           = (*services.CrewService)(nil)
	_ RelationshipRegistry = (*services.RelationshipService)(nil)
)
