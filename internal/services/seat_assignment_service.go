package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gormlib "gorm.io/gorm"

	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/db/repositories"
	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/metrics"
	"airline-ops/seatcrew/internal/models/dtos"
	"airline-ops/seatcrew/internal/models/entities"
	"airline-ops/seatcrew/internal/models/gorm"
	"airline-ops/seatcrew/internal/seating"
)

const maxSeatNumberLen = 8

// SeatMapReader is the read model behind the seat map
type SeatMapReader interface {
	GetFlightLayout(ctx context.Context, flightNumber string) (*entities.FlightLayout, error)
	ListManifest(ctx context.Context, flightID int64) ([]entities.ManifestRow, error)
}

// ManualAssignment is an operator's request to put one passenger in one seat
type ManualAssignment struct {
	FlightNumber string
	PassengerID  int64
	SeatNumber   string
	// SkipPlanValidation accepts seat numbers the aircraft's plan does not contain
	SkipPlanValidation bool
}

type SeatAssignmentService struct {
	db          *gormlib.DB
	flights     *repositories.FlightRepo
	assignments *repositories.PassengerAssignmentRepo
	classes     ClassSource
	seatMap     SeatMapReader
	metrics     *metrics.MetricsRegistry
}

func NewSeatAssignmentService(
	db *gormlib.DB,
	classes ClassSource,
	seatMap SeatMapReader,
	metricsReg *metrics.MetricsRegistry,
) *SeatAssignmentService {
	return &SeatAssignmentService{
		db:          db,
		flights:     repositories.NewFlightRepo(db),
		assignments: repositories.NewPassengerAssignmentRepo(db),
		classes:     classes,
		seatMap:     seatMap,
		metrics:     metricsReg,
	}
}

func normalizeFlightNumber(flightNumber string) (string, error) {
	fn := strings.ToUpper(strings.TrimSpace(flightNumber))
	if fn == "" {
		return "", domain.ValidationError{Field: "flight_number", Msg: "flight_number is required"}
	}
	return fn, nil
}

func (s *SeatAssignmentService) findFlight(ctx context.Context, flightNumber string) (*gorm.Flight, error) {
	flight, err := s.flights.FindByNumber(ctx, flightNumber)
	if err != nil {
		return nil, domain.Internal("failed to load flight", err)
	}
	if flight == nil {
		return nil, domain.NotFoundError{Resource: "Flight"}
	}
	return flight, nil
}

// planSeats expands the flight's plan. A broken plan means no seats, never an error.
func planSeats(flight *gorm.Flight) (seating.Plan, []seating.Seat) {
	plan, err := seating.ParsePlan(flight.VehicleType.SeatingPlan)
	if err != nil {
		logging.Warn("Unusable seating plan, treating aircraft as having no seats",
			"flight_number", flight.FlightNumber,
			"vehicle_type", flight.VehicleType.TypeName,
			"error", err.Error(),
		)
		return seating.Plan{}, nil
	}
	if total := flight.VehicleType.TotalSeats; total > 0 && plan.Capacity() > total {
		logging.Warn("Seating plan exceeds the aircraft's seat count, treating aircraft as having no seats",
			"flight_number", flight.FlightNumber,
			"vehicle_type", flight.VehicleType.TypeName,
			"plan_capacity", plan.Capacity(),
			"total_seats", total,
		)
		return seating.Plan{}, nil
	}
	return plan, plan.Expand()
}

func toSeating(rows []gorm.PassengerAssignment) []seating.Assignment {
	out := make([]seating.Assignment, 0, len(rows))
	for _, r := range rows {
		out = append(out, seating.Assignment{
			ID:          r.ID,
			PassengerID: r.PassengerID,
			SeatTypeID:  r.SeatTypeID,
			SeatNumber:  r.SeatNumber,
		})
	}
	return out
}

// AutoAssign seats every unseated passenger of the flight whose class has a free seat.
// Reading occupancy, choosing seats and writing them happen in one transaction
// with the flight's assignment rows locked.
func (s *SeatAssignmentService) AutoAssign(ctx context.Context, flightNumber string) (*dtos.AutoAssignResult, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}

	flight, err := s.findFlight(ctx, fn)
	if err != nil {
		return nil, err
	}

	classOf, err := s.classes.Resolver(ctx)
	if err != nil {
		return nil, domain.Internal("failed to load seat types", err)
	}

	_, seats := planSeats(flight)
	start := time.Now()

	result := &dtos.AutoAssignResult{
		FlightNumber: flight.FlightNumber,
		Placements:   []seating.Placement{},
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		repo := s.assignments.WithTx(tx)

		rows, err := repo.LockByFlight(ctx, flight.ID)
		if err != nil {
			return fmt.Errorf("failed to read assignments: %w", err)
		}

		current := toSeating(rows)
		unseated := seating.Unseated(current)
		result.Unseated = len(unseated)
		if len(unseated) == 0 {
			return nil
		}

		outcome := seating.AutoAssign(seats, seating.IndexOccupancy(current), unseated, classOf)
		for _, p := range outcome.Placements {
			if err := repo.UpdateSeat(ctx, p.AssignmentID, p.SeatNumber); err != nil {
				return fmt.Errorf("failed to seat passenger %d in %s: %w", p.PassengerID, p.SeatNumber, err)
			}
		}

		result.Assigned = outcome.Assigned()
		result.Remaining = len(outcome.Unplaced)
		result.Placements = outcome.Placements
		return nil
	})
	if err != nil {
		if errors.Is(err, gormlib.ErrDuplicatedKey) {
			// only reachable if a writer bypassed the row locks
			return nil, domain.ConflictError{Resource: "seat", Msg: "Seat assignments changed during auto-assignment, retry the request.", Err: err}
		}
		return nil, domain.Internal("failed to auto-assign seats", err)
	}

	if s.metrics != nil {
		s.metrics.AutoAssignDuration.Observe(time.Since(start).Seconds())
		s.metrics.SeatsAutoAssignedTotal.Add(float64(result.Assigned))
		s.metrics.PassengersLeftUnseated.Add(float64(result.Remaining))
	}

	if result.Remaining > 0 {
		logging.Warn("Auto-assignment left passengers unseated",
			"flight_number", result.FlightNumber,
			"assigned", result.Assigned,
			"remaining", result.Remaining,
			"plan_capacity", len(seats),
		)
	} else {
		logging.Info("Auto-assignment finished",
			"flight_number", result.FlightNumber,
			"assigned", result.Assigned,
		)
	}

	return result, nil
}

func validateManual(in ManualAssignment) (ManualAssignment, error) {
	fn, err := normalizeFlightNumber(in.FlightNumber)
	if err != nil {
		return in, err
	}
	in.FlightNumber = fn

	if in.PassengerID <= 0 {
		return in, domain.ValidationError{Field: "passenger_id", Msg: "passenger_id is required"}
	}

	in.SeatNumber = seating.NormalizeSeatID(in.SeatNumber)
	if in.SeatNumber == "" {
		return in, domain.ValidationError{Field: "seat_number", Msg: "seat_number is required"}
	}
	if len(in.SeatNumber) > maxSeatNumberLen {
		return in, domain.ValidationError{Field: "seat_number", Msg: fmt.Sprintf("seat_number must be at most %d characters", maxSeatNumberLen)}
	}
	return in, nil
}

// AssignSeat puts one passenger in one seat. Class preference is never consulted.
// With SkipPlanValidation the seat need not exist in the aircraft's plan either.
func (s *SeatAssignmentService) AssignSeat(ctx context.Context, in ManualAssignment) (*dtos.SeatAssignmentResult, error) {
	in, err := validateManual(in)
	if err != nil {
		return nil, err
	}

	flight, err := s.findFlight(ctx, in.FlightNumber)
	if err != nil {
		return nil, err
	}

	if !in.SkipPlanValidation {
		plan, _ := planSeats(flight)
		if !plan.Contains(in.SeatNumber) {
			s.countManual("off_plan")
			return nil, domain.ValidationError{
				Field: "seat_number",
				Msg:   fmt.Sprintf("Seat %s does not exist on this aircraft.", in.SeatNumber),
			}
		}
	}

	result := &dtos.SeatAssignmentResult{
		FlightNumber: flight.FlightNumber,
		PassengerID:  in.PassengerID,
		SeatNumber:   in.SeatNumber,
		Validated:    !in.SkipPlanValidation,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		repo := s.assignments.WithTx(tx)

		// serialises with auto-assignment and other manual writes on this flight
		if _, err := repo.LockByFlight(ctx, flight.ID); err != nil {
			return fmt.Errorf("failed to lock assignments: %w", err)
		}

		target, err := repo.FindByPassenger(ctx, flight.ID, in.PassengerID)
		if err != nil {
			return fmt.Errorf("failed to read passenger assignment: %w", err)
		}
		if target == nil {
			return domain.NotFoundError{Resource: "Passenger on flight"}
		}
		result.Previous = target.SeatNumber

		holder, err := repo.FindSeatHolder(ctx, flight.ID, in.SeatNumber, in.PassengerID)
		if err != nil {
			return fmt.Errorf("failed to check seat occupancy: %w", err)
		}
		if holder != nil {
			return domain.ConflictError{Resource: "seat", Msg: constants.MsgSeatTaken(in.SeatNumber)}
		}

		if target.SeatNumber != nil && *target.SeatNumber == in.SeatNumber {
			return nil
		}

		if err := repo.UpdateSeat(ctx, target.ID, in.SeatNumber); err != nil {
			if errors.Is(err, gormlib.ErrDuplicatedKey) {
				return domain.ConflictError{Resource: "seat", Msg: constants.MsgSeatTaken(in.SeatNumber), Err: err}
			}
			return fmt.Errorf("failed to write seat: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case domain.IsConflict(err):
			s.countManual("conflict")
			if s.metrics != nil {
				s.metrics.SeatConflictsTotal.Inc()
			}
			logging.Info("Seat already taken",
				"flight_number", flight.FlightNumber,
				"passenger_id", in.PassengerID,
				"seat_number", in.SeatNumber,
			)
		case domain.IsNotFound(err):
			s.countManual("not_found")
		default:
			s.countManual("error")
		}
		return nil, domain.Internal("failed to assign seat", err)
	}

	s.countManual("assigned")
	logging.Info("Seat assigned manually",
		"flight_number", flight.FlightNumber,
		"passenger_id", in.PassengerID,
		"seat_number", in.SeatNumber,
		"plan_validated", result.Validated,
	)
	return result, nil
}

func (s *SeatAssignmentService) countManual(outcome string) {
	if s.metrics != nil {
		s.metrics.ManualAssignmentsTotal.WithLabelValues(outcome).Inc()
	}
}

// SeatMap renders the flight's plan with each seat's occupant. Recomputed on every call.
func (s *SeatAssignmentService) SeatMap(ctx context.Context, flightNumber string) (*dtos.SeatMapResponse, error) {
	fn, err := normalizeFlightNumber(flightNumber)
	if err != nil {
		return nil, err
	}

	layout, err := s.seatMap.GetFlightLayout(ctx, fn)
	if err != nil {
		return nil, domain.Internal("failed to load flight", err)
	}
	if layout == nil {
		return nil, domain.NotFoundError{Resource: "Flight"}
	}

	manifest, err := s.seatMap.ListManifest(ctx, layout.FlightID)
	if err != nil {
		return nil, domain.Internal("failed to load passengers", err)
	}

	return buildSeatMap(layout, manifest), nil
}

func buildSeatMap(layout *entities.FlightLayout, manifest []entities.ManifestRow) *dtos.SeatMapResponse {
	seats := seating.ExpandRaw(layout.SeatingPlan)

	bySeat := make(map[string]entities.ManifestRow, len(manifest))
	resp := &dtos.SeatMapResponse{
		FlightNumber: layout.FlightNumber,
		VehicleType:  layout.TypeName,
		Capacity:     len(seats),
		Seats:        make([]dtos.SeatMapEntry, 0, len(seats)),
		OffPlan:      []dtos.SeatMapEntry{},
		Unseated:     []dtos.UnseatedPassenger{},
	}

	for _, row := range manifest {
		if row.SeatNumber == nil || seating.NormalizeSeatID(*row.SeatNumber) == "" {
			resp.Unseated = append(resp.Unseated, dtos.UnseatedPassenger{
				PassengerID: row.PassengerID,
				Name:        row.Name,
				SeatType:    row.SeatType,
				IsInfant:    row.IsInfant,
			})
			continue
		}
		bySeat[seating.NormalizeSeatID(*row.SeatNumber)] = row
	}

	onPlan := make(map[string]struct{}, len(seats))
	for _, seat := range seats {
		onPlan[seat.ID] = struct{}{}
		entry := dtos.SeatMapEntry{
			SeatNumber: seat.ID,
			Cabin:      seat.Cabin,
			Row:        seat.Row,
			Column:     seat.Column,
		}
		if row, ok := bySeat[seat.ID]; ok {
			entry.Occupied = true
			entry.PassengerID = &row.PassengerID
			entry.PassengerName = &row.Name
			resp.Occupied++
		}
		resp.Seats = append(resp.Seats, entry)
	}

	// operator overrides may point at seats the plan does not have
	for _, row := range manifest {
		if row.SeatNumber == nil {
			continue
		}
		seat := seating.NormalizeSeatID(*row.SeatNumber)
		if _, ok := onPlan[seat]; ok || seat == "" {
			continue
		}
		resp.OffPlan = append(resp.OffPlan, dtos.SeatMapEntry{
			SeatNumber:    seat,
			Occupied:      true,
			PassengerID:   &row.PassengerID,
			PassengerName: &row.Name,
		})
	}

	return resp
}
