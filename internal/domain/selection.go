package domain

// SeatSelection accumulates seat picks for an in-progress booking. Membership
// toggles on repeated picks, the size is bounded by the passenger count, and
// an active special need restricts which seats may join.
type SeatSelection struct {
	layout         *SeatMap
	need           SpecialNeed
	passengerCount int
	codes          []string
}

func NewSeatSelection(layout *SeatMap, passengerCount int) *SeatSelection {
	if passengerCount < 1 {
		passengerCount = 1
	}
	return &SeatSelection{
		layout:         layout,
		passengerCount: passengerCount,
		codes:          []string{},
	}
}

// Toggle adds the seat to the selection, or removes it when already selected.
// Removal is always allowed; adding is gated on availability, the passenger
// count bound, and the active special need.
func (s *SeatSelection) Toggle(code string) error {
	code = normalizeSeatCode(code)

	if idx := s.indexOf(code); idx >= 0 {
		s.codes = append(s.codes[:idx], s.codes[idx+1:]...)
		return nil
	}

	seat, ok := s.layout.Get(code)
	if !ok {
		return ErrUnknownSeat
	}
	if !seat.Available {
		return ErrSeatUnavailable
	}
	if len(s.codes) >= s.passengerCount {
		return ErrSelectionLimitReached
	}
	if !seat.Satisfies(s.need) {
		return ErrInvalidSelectionForNeed
	}

	s.codes = append(s.codes, code)
	return nil
}

// SetNeed switches the active special need. Any change, including switching a
// need off, clears the whole selection so stale picks never survive a
// constraint change.
func (s *SeatSelection) SetNeed(need SpecialNeed) {
	if s.need == need {
		return
	}
	s.need = need
	s.codes = s.codes[:0]
}

// SetPassengerCount adjusts the selection bound. Lowering it below the
// current selection size clamps the selection by dropping the most recently
// selected seats.
func (s *SeatSelection) SetPassengerCount(n int) {
	if n < 1 {
		n = 1
	}
	s.passengerCount = n
	if len(s.codes) > n {
		s.codes = s.codes[:n]
	}
}

// Clear empties the selection.
func (s *SeatSelection) Clear() {
	s.codes = s.codes[:0]
}

// Codes returns the selected seat codes in selection order.
func (s *SeatSelection) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s *SeatSelection) Count() int { return len(s.codes) }

func (s *SeatSelection) Need() SpecialNeed { return s.need }

func (s *SeatSelection) indexOf(code string) int {
	for i, c := range s.codes {
		if c == code {
			return i
		}
	}
	return -1
}
