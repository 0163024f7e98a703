package domain

import "strings"

// BoardingStatus is the tri-state boarding state of a roster entry.
// PENDING may move to BOARDED or MISSED; both of those are final.
type BoardingStatus string

const (
	BoardingPending BoardingStatus = "PENDING"
	BoardingBoarded BoardingStatus = "BOARDED"
	BoardingMissed  BoardingStatus = "MISSED"
)

// ParseBoardingStatus validates a status filter value. Empty means no filter.
func ParseBoardingStatus(s string) (BoardingStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ALL":
		return "", nil
	case "PENDING":
		return BoardingPending, nil
	case "BOARDED":
		return BoardingBoarded, nil
	case "MISSED":
		return BoardingMissed, nil
	default:
		return "", ValidationError{Field: "status", Msg: "unknown boarding status"}
	}
}

// RosterEntry is one passenger on a trip's boarding roster.
type RosterEntry struct {
	ID            int64          `json:"id"`
	TripID        int64          `json:"tripId"`
	TicketNo      string         `json:"ticketNo"`
	PassengerName string         `json:"passengerName"`
	FromStop      string         `json:"fromStop"`
	ToStop        string         `json:"toStop"`
	SeatCode      string         `json:"seatCode"`
	Status        BoardingStatus `json:"status"`
}

// RosterCounts summarizes a roster per status.
type RosterCounts struct {
	Pending int `json:"pending"`
	Boarded int `json:"boarded"`
	Missed  int `json:"missed"`
	Total   int `json:"total"`
}

// Roster reconciles boarding state for a single trip.
type Roster struct {
	TripID  int64
	Entries []RosterEntry
}

func (r *Roster) find(ticketNo string) *RosterEntry {
	ticketNo = strings.ToUpper(strings.TrimSpace(ticketNo))
	for i := range r.Entries {
		if strings.EqualFold(r.Entries[i].TicketNo, ticketNo) {
			return &r.Entries[i]
		}
	}
	return nil
}

// Lookup returns a copy of the entry for a ticket.
func (r *Roster) Lookup(ticketNo string) (RosterEntry, error) {
	e := r.find(ticketNo)
	if e == nil {
		return RosterEntry{}, ErrTicketNotFound
	}
	return *e, nil
}

// ConfirmBoarding moves a PENDING passenger to BOARDED.
func (r *Roster) ConfirmBoarding(ticketNo string) error {
	return r.transition(ticketNo, BoardingBoarded)
}

// MarkMissed moves a PENDING passenger to MISSED.
func (r *Roster) MarkMissed(ticketNo string) error {
	return r.transition(ticketNo, BoardingMissed)
}

func (r *Roster) transition(ticketNo string, to BoardingStatus) error {
	e := r.find(ticketNo)
	if e == nil {
		return ErrTicketNotFound
	}
	if e.Status != BoardingPending {
		return ErrStatusFinal
	}
	e.Status = to
	return nil
}

// CloseDoors marks every currently PENDING passenger MISSED in one step and
// returns how many were affected. BOARDED and MISSED entries are untouched.
// Closing doors with nothing pending is an error the driver should see.
func (r *Roster) CloseDoors() (int, error) {
	affected := 0
	for i := range r.Entries {
		if r.Entries[i].Status == BoardingPending {
			r.Entries[i].Status = BoardingMissed
			affected++
		}
	}
	if affected == 0 {
		return 0, ErrNoPendingPassengers
	}
	return affected, nil
}

// Filter returns entries matching a status; empty status returns everything.
func (r *Roster) Filter(status BoardingStatus) []RosterEntry {
	if status == "" {
		out := make([]RosterEntry, len(r.Entries))
		copy(out, r.Entries)
		return out
	}
	out := []RosterEntry{}
	for _, e := range r.Entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// Counts tallies the roster per status.
func (r *Roster) Counts() RosterCounts {
	c := RosterCounts{Total: len(r.Entries)}
	for _, e := range r.Entries {
		switch e.Status {
		case BoardingPending:
			c.Pending++
		case BoardingBoarded:
			c.Boarded++
		case BoardingMissed:
			c.Missed++
		}
	}
	return c
}
