package constants

const (
	GetFlightLayoutByNumber = `
	SELECT f.id AS flight_id, f.flight_number, vt.type_name, vt.seating_plan
	FROM flight f
	JOIN vehicle_type vt ON vt.id = f.vehicle_type_id
	WHERE f.flight_number = $1
	`

	ListFlightManifest = `
	SELECT fpa.id AS assignment_id, fpa.passenger_id, p.name, st.name AS seat_type,
	       fpa.seat_number, fpa.is_infant
	FROM flight_passenger_assignment fpa
	JOIN passenger p ON p.id = fpa.passenger_id
	LEFT JOIN seat_type st ON st.id = fpa.seat_type_id
	WHERE fpa.flight_id = $1
	ORDER BY fpa.id
	`
)
