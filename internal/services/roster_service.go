package services

import (
	"fmt"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// RosterService is the driver-side boarding workflow: load the roster for a
// trip, board or miss individual passengers, close the doors.
type RosterService struct {
	TripRepo   repositories.TripRepository
	RosterRepo repositories.RosterRepository
	RequestID  string
}

// RosterView is the roster plus its per-status tallies.
type RosterView struct {
	TripID  int64                `json:"tripId"`
	Entries []domain.RosterEntry `json:"entries"`
	Counts  domain.RosterCounts  `json:"counts"`
}

// Load seeds the roster from paid bookings and returns it, optionally
// filtered by boarding status.
func (s RosterService) Load(tripID int64, status domain.BoardingStatus) (RosterView, error) {
	var out RosterView

	if _, err := s.TripRepo.GetByID(tripID); err != nil {
		return out, err
	}
	if err := s.RosterRepo.SeedFromBookings(tripID); err != nil {
		return out, err
	}

	entries, err := s.RosterRepo.ListByTrip(tripID)
	if err != nil {
		return out, err
	}

	roster := domain.Roster{TripID: tripID, Entries: entries}
	out = RosterView{
		TripID:  tripID,
		Entries: roster.Filter(status),
		Counts:  roster.Counts(),
	}
	return out, nil
}

// ConfirmBoarding moves one PENDING passenger to BOARDED.
func (s RosterService) ConfirmBoarding(tripID int64, ticketNo string) (domain.RosterEntry, error) {
	return s.transition(tripID, ticketNo, domain.BoardingBoarded)
}

// MarkMissed moves one PENDING passenger to MISSED.
func (s RosterService) MarkMissed(tripID int64, ticketNo string) (domain.RosterEntry, error) {
	return s.transition(tripID, ticketNo, domain.BoardingMissed)
}

func (s RosterService) transition(tripID int64, ticketNo string, to domain.BoardingStatus) (domain.RosterEntry, error) {
	entries, err := s.RosterRepo.ListByTrip(tripID)
	if err != nil {
		return domain.RosterEntry{}, err
	}
	roster := domain.Roster{TripID: tripID, Entries: entries}

	// in-memory check first so callers get the precise domain error
	var applyErr error
	if to == domain.BoardingBoarded {
		applyErr = roster.ConfirmBoarding(ticketNo)
	} else {
		applyErr = roster.MarkMissed(ticketNo)
	}
	if applyErr != nil {
		return domain.RosterEntry{}, applyErr
	}

	ok, err := s.RosterRepo.UpdateStatus(tripID, ticketNo, to)
	if err != nil {
		return domain.RosterEntry{}, err
	}
	if !ok {
		// raced with another device between list and update
		return domain.RosterEntry{}, domain.ErrStatusFinal
	}

	entry, err := roster.Lookup(ticketNo)
	if err != nil {
		return domain.RosterEntry{}, err
	}
	utils.LogEvent(s.RequestID, "roster", "transition",
		fmt.Sprintf("trip_id=%d ticket=%s status=%s", tripID, entry.TicketNo, to))
	return entry, nil
}

// CloseDoors bulk-marks every remaining PENDING passenger MISSED and returns
// the updated roster.
func (s RosterService) CloseDoors(tripID int64) (RosterView, int64, error) {
	affected, err := s.RosterRepo.CloseDoors(tripID)
	if err != nil {
		return RosterView{}, 0, err
	}
	if affected == 0 {
		return RosterView{}, 0, domain.ErrNoPendingPassengers
	}

	utils.LogEvent(s.RequestID, "roster", "close_doors",
		fmt.Sprintf("trip_id=%d missed=%d", tripID, affected))

	view, err := s.Load(tripID, "")
	return view, affected, err
}

// Scan runs one ticket through the scan flow: a pending ticket boards and the
// session ends in SUCCESS; anything else cancels the session and the cause
// comes back alongside it.
func (s RosterService) Scan(tripID int64, ticketNo string) (*domain.ScanSession, error) {
	entries, err := s.RosterRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	roster := domain.Roster{TripID: tripID, Entries: entries}

	session := domain.NewScanSession()
	if err := session.Start(ticketNo); err != nil {
		return nil, err
	}

	// Persist the boarding before resolving so the session outcome matches
	// the database even when two devices scan the same ticket.
	if entry, err := roster.Lookup(ticketNo); err == nil && entry.Status == domain.BoardingPending {
		ok, err := s.RosterRepo.UpdateStatus(tripID, ticketNo, domain.BoardingBoarded)
		if err != nil {
			_ = session.Cancel()
			return session, err
		}
		if !ok {
			// lost the race; refresh so the session sees the final status
			if entries, err := s.RosterRepo.ListByTrip(tripID); err == nil {
				roster = domain.Roster{TripID: tripID, Entries: entries}
			}
		}
	}

	if err := session.Resolve(&roster); err != nil {
		utils.LogEvent(s.RequestID, "roster", "scan",
			fmt.Sprintf("trip_id=%d ticket=%s cancelled: %v", tripID, ticketNo, err))
		return session, err
	}

	utils.LogEvent(s.RequestID, "roster", "scan",
		fmt.Sprintf("trip_id=%d ticket=%s boarded", tripID, session.Result.TicketNo))
	return session, nil
}
