package services

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	gormlib "gorm.io/gorm"

	"airline-ops/seatcrew/internal/db/repositories"
	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/metrics"
	"airline-ops/seatcrew/internal/models/dtos"
	"airline-ops/seatcrew/internal/models/gorm"
)

// CrewService keeps at most one crew roster per flight. Saves overwrite, they never merge.
type CrewService struct {
	flights *repositories.FlightRepo
	crew    *repositories.CrewAssignmentRepo
	metrics *metrics.MetricsRegistry
}

func NewCrewService(db *gormlib.DB, metricsReg *metrics.MetricsRegistry) *CrewService {
	return &CrewService{
		flights: repositories.NewFlightRepo(db),
		crew:    repositories.NewCrewAssignmentRepo(db),
		metrics: metricsReg,
	}
}

func validateCrewIDs(field string, ids []int64) error {
	if len(ids) == 0 {
		return domain.ValidationError{Field: field, Msg: fmt.Sprintf("%s must not be empty", field)}
	}
	for i, id := range ids {
		if id <= 0 {
			return domain.ValidationError{Field: field, Msg: fmt.Sprintf("%s[%d] must be a positive id", field, i)}
		}
	}
	return nil
}

func (s *CrewService) findFlight(ctx context.Context, flightNumber string) (*gorm.Flight, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}
	flight, err := s.flights.FindByNumber(ctx, fn)
	if err != nil {
		return nil, domain.Internal("failed to load flight", err)
	}
	if flight == nil {
		return nil, domain.NotFoundError{Resource: "Flight"}
	}
	return flight, nil
}

// SaveCrew replaces the flight's roster with exactly the given ids
func (s *CrewService) SaveCrew(ctx context.Context, flightNumber string, pilotIDs, cabinCrewIDs []int64) (*dtos.CrewAssignmentResponse, error) {
	if err := validateCrewIDs("pilot_ids", pilotIDs); err != nil {
		return nil, err
	}
	if err := validateCrewIDs("cabin_crew_ids", cabinCrewIDs); err != nil {
		return nil, err
	}

	flight, err := s.findFlight(ctx, flightNumber)
	if err != nil {
		return nil, err
	}

	stored, err := s.crew.Upsert(ctx, &gorm.CrewAssignment{
		FlightID:     flight.ID,
		PilotIDs:     pq.Int64Array(pilotIDs),
		CabinCrewIDs: pq.Int64Array(cabinCrewIDs),
	})
	if err != nil {
		return nil, domain.Internal("failed to save crew assignment", err)
	}
	if stored == nil {
		return nil, domain.InternalError{Msg: "crew assignment vanished after save"}
	}

	if s.metrics != nil {
		s.metrics.CrewAssignmentsSavedTotal.Inc()
	}
	logging.Info("Crew assignment saved",
		"flight_number", flight.FlightNumber,
		"pilots", len(pilotIDs),
		"cabin_crew", len(cabinCrewIDs),
	)

	return toCrewResponse(flight.FlightNumber, stored), nil
}

// GetCrew returns the current roster so callers can append and resubmit the full set
func (s *CrewService) GetCrew(ctx context.Context, flightNumber string) (*dtos.CrewAssignmentResponse, error) {
	flight, err := s.findFlight(ctx, flightNumber)
	if err != nil {
		return nil, err
	}

	stored, err := s.crew.FindByFlight(ctx, flight.ID)
	if err != nil {
		return nil, domain.Internal("failed to load crew assignment", err)
	}
	if stored == nil {
		return nil, domain.NotFoundError{Resource: "Crew assignment"}
	}

	return toCrewResponse(flight.FlightNumber, stored), nil
}

func toCrewResponse(flightNumber string, c *gorm.CrewAssignment) *dtos.CrewAssignmentResponse {
	return &dtos.CrewAssignmentResponse{
		ID:           c.ID,
		FlightID:     c.FlightID,
		FlightNumber: flightNumber,
		PilotIDs:     []int64(c.PilotIDs),
		CabinCrewIDs: []int64(c.CabinCrewIDs),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
