package entities

// FlightLayout is the flight row joined with its vehicle type
type FlightLayout struct {
	FlightID     int64  `db:"flight_id"`
	FlightNumber string `db:"flight_number"`
	TypeName     string `db:"type_name"`
	SeatingPlan  []byte `db:"seating_plan"`
}

// ManifestRow is one passenger on a flight with their seat state
type ManifestRow struct {
	AssignmentID int64   `db:"assignment_id"`
	PassengerID  int64   `db:"passenger_id"`
	Name         string  `db:"name"`
	SeatType     *string `db:"seat_type"`
	SeatNumber   *string `db:"seat_number"`
	IsInfant     bool    `db:"is_infant"`
}
