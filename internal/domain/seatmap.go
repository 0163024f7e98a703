package domain

import (
	"fmt"
	"math/rand"
	"strings"
)

// SpecialNeed restricts which seats a passenger may select.
type SpecialNeed string

const (
	NeedNone         SpecialNeed = ""
	NeedWheelchair   SpecialNeed = "wheelchair"
	NeedExtraLegroom SpecialNeed = "extra_legroom"
	NeedNearExit     SpecialNeed = "near_exit"
)

// ParseSpecialNeed normalizes a user-supplied need selector.
func ParseSpecialNeed(s string) (SpecialNeed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NeedNone, nil
	case "wheelchair":
		return NeedWheelchair, nil
	case "extra_legroom", "extra-legroom", "legroom":
		return NeedExtraLegroom, nil
	case "near_exit", "near-exit", "exit":
		return NeedNearExit, nil
	default:
		return NeedNone, ValidationError{Field: "need", Msg: "unknown special need"}
	}
}

// Standard ZuGo city bus layout: 10 rows of 4 seats (A..D) across one aisle.
const (
	LayoutRows = 10
	LayoutCols = 4

	premiumRowMax = 3 // rows 1..3 are premium
	legroomRowMax = 2 // rows 1..2 have extra legroom
	middleExitRow = 5 // middle emergency exit
	wheelchairRow = 1 // aisle seats on row 1 keep the wheelchair bay clear
)

var colLabels = [LayoutCols]string{"A", "B", "C", "D"}

// Seat is one slot in a generated seat map. Classification is derived purely
// from position so the same layout always yields the same seats.
type Seat struct {
	Code         string `json:"code"`
	Row          int    `json:"row"`
	Col          int    `json:"col"`
	Window       bool   `json:"window"`
	Aisle        bool   `json:"aisle"`
	Premium      bool   `json:"premium"`
	Wheelchair   bool   `json:"wheelchair"`
	ExtraLegroom bool   `json:"extraLegroom"`
	NearExit     bool   `json:"nearExit"`
	Available    bool   `json:"available"`
	Price        int64  `json:"price"`
}

// Satisfies reports whether the seat meets a special need constraint.
func (s Seat) Satisfies(need SpecialNeed) bool {
	switch need {
	case NeedWheelchair:
		return s.Wheelchair
	case NeedExtraLegroom:
		return s.ExtraLegroom
	case NeedNearExit:
		return s.NearExit
	default:
		return true
	}
}

// AvailabilitySource decides per-seat availability at generation time.
// Injected instead of an inline random call so seat maps are reproducible.
type AvailabilitySource func(row, col int) bool

// AllAvailable marks every seat available.
func AllAvailable(row, col int) bool { return true }

// SeededAvailability returns a deterministic pseudo-random source where each
// seat is available with roughly the given ratio.
func SeededAvailability(seed int64, ratio float64) AvailabilitySource {
	rng := rand.New(rand.NewSource(seed))
	return func(row, col int) bool {
		return rng.Float64() < ratio
	}
}

// SeatMap is a generated seat grid with code lookup.
type SeatMap struct {
	Seats  []Seat
	byCode map[string]int
}

// GenerateSeatMap builds the fixed 10x4 layout. Prices are two-tier:
// premium rows use premiumPrice, the rest standardPrice.
func GenerateSeatMap(standardPrice, premiumPrice int64, avail AvailabilitySource) *SeatMap {
	if avail == nil {
		avail = AllAvailable
	}

	m := &SeatMap{
		Seats:  make([]Seat, 0, LayoutRows*LayoutCols),
		byCode: make(map[string]int, LayoutRows*LayoutCols),
	}

	for row := 1; row <= LayoutRows; row++ {
		for col := 0; col < LayoutCols; col++ {
			window := col == 0 || col == LayoutCols-1
			premium := row <= premiumRowMax
			price := standardPrice
			if premium {
				price = premiumPrice
			}

			seat := Seat{
				Code:         fmt.Sprintf("%d%s", row, colLabels[col]),
				Row:          row,
				Col:          col,
				Window:       window,
				Aisle:        !window,
				Premium:      premium,
				Wheelchair:   row == wheelchairRow && !window,
				ExtraLegroom: row <= legroomRowMax,
				NearExit:     row == 1 || row == middleExitRow || row == LayoutRows,
				Available:    avail(row, col),
				Price:        price,
			}
			m.byCode[seat.Code] = len(m.Seats)
			m.Seats = append(m.Seats, seat)
		}
	}

	return m
}

// Get returns the seat with the given code.
func (m *SeatMap) Get(code string) (Seat, bool) {
	idx, ok := m.byCode[normalizeSeatCode(code)]
	if !ok {
		return Seat{}, false
	}
	return m.Seats[idx], true
}

// MarkBooked flips the given seat codes to unavailable. Unknown codes are
// ignored; they belong to other layouts or stale data.
func (m *SeatMap) MarkBooked(codes []string) {
	for _, code := range codes {
		if idx, ok := m.byCode[normalizeSeatCode(code)]; ok {
			m.Seats[idx].Available = false
		}
	}
}

// Eligible returns the available seats that satisfy the given need.
// An empty result means the caller must surface ErrNoMatchingSeats.
func (m *SeatMap) Eligible(need SpecialNeed) []Seat {
	out := []Seat{}
	for _, s := range m.Seats {
		if s.Available && s.Satisfies(need) {
			out = append(out, s)
		}
	}
	return out
}

func normalizeSeatCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
