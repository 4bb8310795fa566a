package dtos

import (
	"time"

	"airline-ops/seatcrew/internal/seating"
)

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ---- SEATS ----
type AutoAssignResult struct {
	FlightNumber string `json:"flight_number"`
	// Unseated is how many passengers had no seat before this run
	Unseated int `json:"unseated"`
	Assigned int `json:"assigned"`
	// Remaining passengers are still without a seat: class full or no usable preference
	Remaining  int                 `json:"remaining"`
	Placements []seating.Placement `json:"placements"`
}

// NothingToDo is true when every passenger already had a seat
func (r *AutoAssignResult) NothingToDo() bool {
	return r.Unseated == 0
}

type SeatAssignmentResult struct {
	FlightNumber string  `json:"flight_number"`
	PassengerID  int64   `json:"passenger_id"`
	SeatNumber   string  `json:"seat_number"`
	Previous     *string `json:"previous_seat_number,omitempty"`
	Validated    bool    `json:"validated"`
}

type SeatMapEntry struct {
	SeatNumber    string  `json:"seat_number"`
	Cabin         string  `json:"cabin,omitempty"`
	Row           int     `json:"row,omitempty"`
	Column        int     `json:"column,omitempty"`
	Occupied      bool    `json:"occupied"`
	PassengerID   *int64  `json:"passenger_id,omitempty"`
	PassengerName *string `json:"passenger_name,omitempty"`
}

type UnseatedPassenger struct {
	PassengerID int64   `json:"passenger_id"`
	Name        string  `json:"name"`
	SeatType    *string `json:"seat_type,omitempty"`
	IsInfant    bool    `json:"is_infant"`
}

type SeatMapResponse struct {
	FlightNumber string         `json:"flight_number"`
	VehicleType  string         `json:"vehicle_type"`
	Capacity     int            `json:"capacity"`
	Occupied     int            `json:"occupied"`
	Seats        []SeatMapEntry `json:"seats"`
	// OffPlan lists manually assigned seat numbers the aircraft's plan does not contain
	OffPlan  []SeatMapEntry      `json:"off_plan"`
	Unseated []UnseatedPassenger `json:"unseated"`
}

// ---- CREW ----
type CrewAssignmentResponse struct {
	ID           int64     `json:"id"`
	FlightID     int64     `json:"flight_id"`
	FlightNumber string    `json:"flight_number"`
	PilotIDs     []int64   `json:"pilot_ids"`
	CabinCrewIDs []int64   `json:"cabin_crew_ids"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ---- RELATIONSHIPS ----
type AffiliatedSeatingResponse struct {
	ID                    int64     `json:"id"`
	MainPassengerID       int64     `json:"main_passenger_id"`
	AffiliatedPassengerID int64     `json:"affiliated_passenger_id"`
	FlightNumber          string    `json:"flight_number"`
	CreatedAt             time.Time `json:"created_at"`
}

type InfantParentResponse struct {
	ID                int64     `json:"id"`
	InfantPassengerID int64     `json:"infant_passenger_id"`
	ParentPassengerID int64     `json:"parent_passenger_id"`
	FlightNumber      string    `json:"flight_number"`
	CreatedAt         time.Time `json:"created_at"`
}
