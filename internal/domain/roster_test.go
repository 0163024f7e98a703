package domain

import (
	"errors"
	"testing"
)

func sampleRoster() *Roster {
	return &Roster{
		TripID: 7,
		Entries: []RosterEntry{
			{TicketNo: "ZG-1001", PassengerName: "Ayesha", SeatCode: "2A", Status: BoardingPending},
			{TicketNo: "ZG-1002", PassengerName: "Bilal", SeatCode: "2B", Status: BoardingPending},
			{TicketNo: "ZG-1003", PassengerName: "Hira", SeatCode: "3C", Status: BoardingPending},
			{TicketNo: "ZG-1004", PassengerName: "Daniyal", SeatCode: "4D", Status: BoardingBoarded},
			{TicketNo: "ZG-1005", PassengerName: "Sana", SeatCode: "5A", Status: BoardingBoarded},
			{TicketNo: "ZG-1006", PassengerName: "Usman", SeatCode: "6B", Status: BoardingMissed},
		},
	}
}

func TestConfirmBoarding(t *testing.T) {
	r := sampleRoster()

	if err := r.ConfirmBoarding("ZG-1001"); err != nil {
		t.Fatalf("confirm pending passenger: %v", err)
	}
	e, _ := r.Lookup("ZG-1001")
	if e.Status != BoardingBoarded {
		t.Fatalf("status=%s, want BOARDED", e.Status)
	}

	// BOARDED is terminal.
	if err := r.ConfirmBoarding("ZG-1001"); !errors.Is(err, ErrStatusFinal) {
		t.Fatalf("expected ErrStatusFinal on re-confirm, got %v", err)
	}
}

func TestMarkMissedTerminal(t *testing.T) {
	r := sampleRoster()

	if err := r.MarkMissed("ZG-1002"); err != nil {
		t.Fatalf("mark missed: %v", err)
	}
	if err := r.ConfirmBoarding("ZG-1002"); !errors.Is(err, ErrStatusFinal) {
		t.Fatalf("MISSED must not transition back, got %v", err)
	}
	if err := r.MarkMissed("ZG-9999"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestCloseDoorsBulkTransition(t *testing.T) {
	r := sampleRoster()

	affected, err := r.CloseDoors()
	if err != nil {
		t.Fatalf("close doors: %v", err)
	}
	if affected != 3 {
		t.Fatalf("affected=%d, want 3", affected)
	}

	c := r.Counts()
	if c.Pending != 0 || c.Boarded != 2 || c.Missed != 4 {
		t.Fatalf("counts after close doors = %+v, want 0 pending / 2 boarded / 4 missed", c)
	}
}

func TestCloseDoorsWithNoPending(t *testing.T) {
	r := sampleRoster()
	if _, err := r.CloseDoors(); err != nil {
		t.Fatalf("first close doors: %v", err)
	}

	if _, err := r.CloseDoors(); !errors.Is(err, ErrNoPendingPassengers) {
		t.Fatalf("expected ErrNoPendingPassengers, got %v", err)
	}
}

func TestFilterByStatus(t *testing.T) {
	r := sampleRoster()

	if got := len(r.Filter(BoardingPending)); got != 3 {
		t.Fatalf("pending filter size=%d, want 3", got)
	}
	if got := len(r.Filter(BoardingBoarded)); got != 2 {
		t.Fatalf("boarded filter size=%d, want 2", got)
	}
	if got := len(r.Filter("")); got != 6 {
		t.Fatalf("unfiltered size=%d, want 6", got)
	}
}
