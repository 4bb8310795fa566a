package seating

import "strings"

// NormalizeSeatID is the canonical form seat numbers are compared in: trimmed, upper case
func NormalizeSeatID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Assignment is the allocator's view of a passenger's row on a flight
type Assignment struct {
	ID          int64
	PassengerID int64
	SeatTypeID  *int64
	SeatNumber  *string
}

// Seated reports whether the row carries a seat number
func (a Assignment) Seated() bool {
	return a.SeatNumber != nil && NormalizeSeatID(*a.SeatNumber) != ""
}

// Occupancy is the set of taken seat identifiers on one flight
type Occupancy map[string]struct{}

// IndexOccupancy projects the non-null seat numbers of rows into a set, in canonical form.
// Build it from a fresh read every time; it is never shared between calls.
func IndexOccupancy(rows []Assignment) Occupancy {
	occ := make(Occupancy, len(rows))
	for _, r := range rows {
		if r.Seated() {
			occ[NormalizeSeatID(*r.SeatNumber)] = struct{}{}
		}
	}
	return occ
}

func (o Occupancy) Has(seatID string) bool {
	_, ok := o[NormalizeSeatID(seatID)]
	return ok
}

func (o Occupancy) Mark(seatID string) {
	o[NormalizeSeatID(seatID)] = struct{}{}
}

func (o Occupancy) Len() int {
	return len(o)
}

// Unseated filters rows without a seat, keeping their order
func Unseated(rows []Assignment) []Assignment {
	out := make([]Assignment, 0, len(rows))
	for _, r := range rows {
		if !r.Seated() {
			out = append(out, r)
		}
	}
	return out
}
