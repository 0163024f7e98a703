package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/utils"
)

// premiumUplift is added to the route base fare for seats in the premium rows.
const premiumUplift int64 = 300

// TripService answers trip search and per-trip seat map queries.
type TripService struct {
	TripRepo    repositories.TripRepository
	BookingRepo repositories.BookingRepository
	RequestID   string
}

// TripSearchInput carries a normalized search request.
type TripSearchInput struct {
	From      string
	To        string
	Date      string
	TimeAfter string
	SortBy    string
}

// Search lists scheduled trips between two stops, with remaining seat counts
// and the requested ordering applied.
func (s TripService) Search(in TripSearchInput) ([]models.Trip, error) {
	fromDisplay, fromKey, ok := utils.CanonicalStop(in.From)
	if !ok {
		return nil, domain.ValidationError{Field: "from", Msg: "unknown stop"}
	}
	toDisplay, toKey, ok := utils.CanonicalStop(in.To)
	if !ok {
		return nil, domain.ValidationError{Field: "to", Msg: "unknown stop"}
	}
	if fromKey == toKey {
		return nil, domain.ValidationError{Field: "to", Msg: "origin and destination must differ"}
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD"}
	}

	timeAfter := ""
	if strings.TrimSpace(in.TimeAfter) != "" {
		hhmm, err := utils.NormalizeTimeStr(in.TimeAfter)
		if err != nil {
			return nil, domain.ValidationError{Field: "timeAfter", Msg: err.Error()}
		}
		timeAfter = hhmm
	}

	trips, err := s.TripRepo.Search(fromDisplay, toDisplay, strings.TrimSpace(in.Date), timeAfter)
	if err != nil {
		return nil, err
	}

	for i := range trips {
		booked, err := s.BookingRepo.BookedSeatCodes(trips[i].ID)
		if err != nil {
			return nil, err
		}
		trips[i].SeatsLeft = domain.LayoutRows*domain.LayoutCols - len(booked)
		if trips[i].SeatsLeft < 0 {
			trips[i].SeatsLeft = 0
		}
	}

	if err := sortTrips(trips, in.SortBy); err != nil {
		return nil, err
	}

	utils.LogEvent(s.RequestID, "trips", "search",
		fmt.Sprintf("%s->%s %s results=%d", fromKey, toKey, in.Date, len(trips)))
	return trips, nil
}

// sortTrips orders search results in place. Ties keep the repository's
// departure-time ordering.
func sortTrips(trips []models.Trip, sortBy string) error {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "", "time":
		// repository already orders by trip_time
		return nil
	case "price":
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].PricePerSeat < trips[j].PricePerSeat
		})
		return nil
	case "rating":
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].Rating > trips[j].Rating
		})
		return nil
	default:
		return domain.ValidationError{Field: "sortBy", Msg: "expected price, time or rating"}
	}
}

// SeatMapForTrip builds the trip's seat map with booked seats marked and
// returns the seats a passenger with the given need may pick. An empty
// eligible set for a concrete need is ErrNoMatchingSeats.
func (s TripService) SeatMapForTrip(tripID int64, need domain.SpecialNeed) (*domain.SeatMap, []domain.Seat, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, nil, err
	}

	base := tripBaseFare(trip)
	layout := domain.GenerateSeatMap(base, base+premiumUplift, domain.AllAvailable)

	booked, err := s.BookingRepo.BookedSeatCodes(tripID)
	if err != nil {
		return nil, nil, err
	}
	layout.MarkBooked(booked)

	eligible := layout.Eligible(need)
	if len(eligible) == 0 && need != domain.NeedNone {
		return layout, nil, domain.ErrNoMatchingSeats
	}
	return layout, eligible, nil
}

// tripBaseFare resolves the per-seat fare for a trip's route, falling back to
// the trip's stored price when the pair has no fare rule.
func tripBaseFare(trip models.Trip) int64 {
	_, fromKey, _ := utils.CanonicalStop(trip.RouteFrom)
	_, toKey, _ := utils.CanonicalStop(trip.RouteTo)
	return utils.RouteFare(fromKey, toKey, trip.PricePerSeat)
}
