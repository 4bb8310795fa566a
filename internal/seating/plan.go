package seating

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Cabin names as stored in a vehicle type's seating plan
const (
	CabinBusiness = "business"
	CabinEconomy  = "economy"
)

// seatLetters is indexed by column offset within a row
const seatLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxSeatsPerRow is the widest row a plan may describe
const MaxSeatsPerRow = len(seatLetters)

// Plans beyond these bounds are treated as malformed
const (
	MaxRowsPerCabin = 200
	MaxSeats        = 1000
)

// cabinRank fixes the expansion order. Cabins not listed here follow in lexical order.
var cabinRank = map[string]int{
	CabinBusiness: 0,
	CabinEconomy:  1,
}

// Cabin is one named section of an aircraft
type Cabin struct {
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
}

// Plan is an ordered list of cabins
type Plan []Cabin

// Seat is a single addressable seat of an expanded plan
type Seat struct {
	ID     string `json:"id"`
	Cabin  string `json:"cabin"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

type cabinLayout struct {
	Rows        int `json:"rows"`
	SeatsPerRow int `json:"seats_per_row"`
}

// ParsePlan decodes a seating plan JSON object keyed by cabin name,
// e.g. {"business":{"rows":2,"seats_per_row":4},"economy":{"rows":20,"seats_per_row":6}}.
// A missing plan parses to an empty Plan without error.
func ParsePlan(raw []byte) (Plan, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Plan{}, nil
	}

	var layouts map[string]cabinLayout
	if err := json.Unmarshal(trimmed, &layouts); err != nil {
		return nil, fmt.Errorf("failed to decode seating plan: %w", err)
	}

	plan := make(Plan, 0, len(layouts))
	seen := make(map[string]struct{}, len(layouts))
	total := 0
	for name, l := range layouts {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return nil, fmt.Errorf("seating plan has a cabin with no name")
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("seating plan lists cabin %q more than once", key)
		}
		seen[key] = struct{}{}

		if l.Rows <= 0 || l.Rows > MaxRowsPerCabin {
			return nil, fmt.Errorf("cabin %q: rows must be between 1 and %d, got %d", key, MaxRowsPerCabin, l.Rows)
		}
		if l.SeatsPerRow <= 0 || l.SeatsPerRow > MaxSeatsPerRow {
			return nil, fmt.Errorf("cabin %q: seats_per_row must be between 1 and %d, got %d", key, MaxSeatsPerRow, l.SeatsPerRow)
		}
		total += l.Rows * l.SeatsPerRow
		if total > MaxSeats {
			return nil, fmt.Errorf("seating plan exceeds %d seats", MaxSeats)
		}
		plan = append(plan, Cabin{Name: key, Rows: l.Rows, SeatsPerRow: l.SeatsPerRow})
	}

	sort.Slice(plan, func(i, j int) bool {
		ri, iKnown := cabinRank[plan[i].Name]
		rj, jKnown := cabinRank[plan[j].Name]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return plan[i].Name < plan[j].Name
		}
	})

	return plan, nil
}

// Expand lays the plan out as seats. Row numbers continue across cabins.
// A plan outside the size bounds expands to no seats.
func (p Plan) Expand() []Seat {
	total := p.Capacity()
	if total == 0 {
		return []Seat{}
	}

	seats := make([]Seat, 0, total)
	row := 0
	for _, c := range p {
		for r := 0; r < c.Rows; r++ {
			row++
			for col := 0; col < c.SeatsPerRow && col < MaxSeatsPerRow; col++ {
				seats = append(seats, Seat{
					ID:     strconv.Itoa(row) + seatLetters[col:col+1],
					Cabin:  c.Name,
					Row:    row,
					Column: col + 1,
				})
			}
		}
	}
	return seats
}

// ExpandRaw parses and expands in one step. Missing or malformed input yields no seats.
func ExpandRaw(raw []byte) []Seat {
	plan, err := ParsePlan(raw)
	if err != nil {
		return []Seat{}
	}
	return plan.Expand()
}

// CabinOf reports the cabin that holds seatID
func (p Plan) CabinOf(seatID string) (string, bool) {
	row, col, ok := splitSeatID(seatID)
	if !ok {
		return "", false
	}

	first := 1
	for _, c := range p {
		last := first + c.Rows - 1
		if row >= first && row <= last {
			if col < c.SeatsPerRow {
				return c.Name, true
			}
			return "", false
		}
		first = last + 1
	}
	return "", false
}

// Contains reports whether seatID exists in the expanded plan
func (p Plan) Contains(seatID string) bool {
	_, ok := p.CabinOf(seatID)
	return ok
}

// Capacity is the total number of seats, 0 for a plan outside the size bounds
func (p Plan) Capacity() int {
	n := 0
	for _, c := range p {
		if c.Rows <= 0 || c.Rows > MaxRowsPerCabin || c.SeatsPerRow <= 0 || c.SeatsPerRow > MaxSeatsPerRow {
			return 0
		}
		n += c.Rows * c.SeatsPerRow
		if n > MaxSeats {
			return 0
		}
	}
	return n
}

func splitSeatID(seatID string) (row int, col int, ok bool) {
	id := strings.ToUpper(strings.TrimSpace(seatID))
	if len(id) < 2 {
		return 0, 0, false
	}

	letter := id[len(id)-1:]
	col = strings.Index(seatLetters, letter)
	if col < 0 {
		return 0, 0, false
	}

	row, err := strconv.Atoi(id[:len(id)-1])
	if err != nil || row <= 0 {
		return 0, 0, false
	}
	return row, col, true
}
