package seating

import "strings"

// ClassResolver maps a seat type id to its class name ("Business", "Economy", ...)
type ClassResolver func(seatTypeID int64) (string, bool)

// ClassMap adapts a lookup table to a ClassResolver
func ClassMap(classes map[int64]string) ClassResolver {
	return func(id int64) (string, bool) {
		name, ok := classes[id]
		return name, ok
	}
}

// Placement is one seat chosen for one passenger
type Placement struct {
	AssignmentID int64  `json:"assignment_id"`
	PassengerID  int64  `json:"passenger_id"`
	SeatNumber   string `json:"seat_number"`
	Cabin        string `json:"cabin"`
}

// Outcome of one auto-assignment pass
type Outcome struct {
	Placements []Placement
	// Unplaced holds passenger ids left without a seat, in processing order
	Unplaced []int64
}

func (o Outcome) Assigned() int {
	return len(o.Placements)
}

// Complete is true when every unseated passenger received a seat
func (o Outcome) Complete() bool {
	return len(o.Unplaced) == 0
}

// AutoAssign seats unseated passengers in the order given. Each passenger gets the first
// free seat, in seat order, whose cabin matches their class preference. Passengers without a
// resolvable preference are left unplaced. occupied is updated in place as seats are taken.
func AutoAssign(seats []Seat, occupied Occupancy, unseated []Assignment, classOf ClassResolver) Outcome {
	out := Outcome{
		Placements: make([]Placement, 0, len(unseated)),
	}

	// first free index per cabin; seats before it are known taken
	cursor := make(map[string]int)

	for _, a := range unseated {
		class, ok := resolveClass(a, classOf)
		if !ok {
			out.Unplaced = append(out.Unplaced, a.PassengerID)
			continue
		}

		seat, found := nextFreeSeat(seats, occupied, class, cursor)
		if !found {
			out.Unplaced = append(out.Unplaced, a.PassengerID)
			continue
		}

		occupied.Mark(seat.ID)
		out.Placements = append(out.Placements, Placement{
			AssignmentID: a.ID,
			PassengerID:  a.PassengerID,
			SeatNumber:   seat.ID,
			Cabin:        seat.Cabin,
		})
	}

	return out
}

func resolveClass(a Assignment, classOf ClassResolver) (string, bool) {
	if a.SeatTypeID == nil || classOf == nil {
		return "", false
	}
	name, ok := classOf(*a.SeatTypeID)
	if !ok {
		return "", false
	}
	name = strings.ToLower(strings.TrimSpace(name))
	return name, name != ""
}

func nextFreeSeat(seats []Seat, occupied Occupancy, class string, cursor map[string]int) (Seat, bool) {
	for i := cursor[class]; i < len(seats); i++ {
		s := seats[i]
		if s.Cabin != class || occupied.Has(s.ID) {
			continue
		}
		cursor[class] = i + 1
		return s, true
	}
	cursor[class] = len(seats)
	return Seat{}, false
}
