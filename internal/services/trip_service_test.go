package services

import (
	"testing"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

func sampleTrips() []models.Trip {
	return []models.Trip{
		{ID: 1, TripTime: "08:00", PricePerSeat: 1500, Rating: 4.2},
		{ID: 2, TripTime: "09:30", PricePerSeat: 1200, Rating: 4.8},
		{ID: 3, TripTime: "11:00", PricePerSeat: 1200, Rating: 3.9},
	}
}

func ids(trips []models.Trip) []int64 {
	out := make([]int64, len(trips))
	for i, t := range trips {
		out[i] = t.ID
	}
	return out
}

func TestSortTrips(t *testing.T) {
	cases := []struct {
		sortBy string
		want   []int64
	}{
		{"", []int64{1, 2, 3}},
		{"time", []int64{1, 2, 3}},
		{"price", []int64{2, 3, 1}}, // stable: equal prices keep time order
		{"rating", []int64{2, 1, 3}},
	}

	for _, tc := range cases {
		trips := sampleTrips()
		if err := sortTrips(trips, tc.sortBy); err != nil {
			t.Fatalf("sortBy=%q: %v", tc.sortBy, err)
		}
		got := ids(trips)
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("sortBy=%q order=%v, want %v", tc.sortBy, got, tc.want)
			}
		}
	}
}

func TestSortTripsRejectsUnknownKey(t *testing.T) {
	trips := sampleTrips()
	if err := sortTrips(trips, "distance"); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestTripBaseFareUsesRouteRules(t *testing.T) {
	trip := models.Trip{RouteFrom: "Saddar", RouteTo: "Airport", PricePerSeat: 999}
	if got := tripBaseFare(trip); got != 1500 {
		t.Fatalf("fare=%d, want route-rule 1500", got)
	}

	// unknown pair falls back to the trip's own price
	trip = models.Trip{RouteFrom: "Gulberg", RouteTo: "DHA Phase 2", PricePerSeat: 999}
	if got := tripBaseFare(trip); got != 999 {
		t.Fatalf("fare=%d, want fallback 999", got)
	}
}
