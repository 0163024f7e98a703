package domain

import "testing"

func TestGenerateSeatMapUniqueSeats(t *testing.T) {
	m := GenerateSeatMap(1200, 1500, AllAvailable)

	if len(m.Seats) != 40 {
		t.Fatalf("expected 40 seats for 10x4 layout, got %d", len(m.Seats))
	}

	seenCode := map[string]bool{}
	seenPos := map[[2]int]bool{}
	for _, s := range m.Seats {
		if seenCode[s.Code] {
			t.Fatalf("duplicate seat code %s", s.Code)
		}
		seenCode[s.Code] = true

		pos := [2]int{s.Row, s.Col}
		if seenPos[pos] {
			t.Fatalf("duplicate seat position row=%d col=%d", s.Row, s.Col)
		}
		seenPos[pos] = true
	}
}

func TestGenerateSeatMapClassification(t *testing.T) {
	m := GenerateSeatMap(1200, 1500, AllAvailable)

	cases := []struct {
		code                           string
		window, premium, legroom, exit bool
	}{
		{"1A", true, true, true, true},
		{"1B", false, true, true, true},
		{"3D", true, true, false, false},
		{"4A", true, false, false, false},
		{"5C", false, false, false, true},
		{"10D", true, false, false, true},
	}

	for _, tc := range cases {
		seat, ok := m.Get(tc.code)
		if !ok {
			t.Fatalf("seat %s missing from layout", tc.code)
		}
		if seat.Window != tc.window {
			t.Fatalf("%s window=%v, want %v", tc.code, seat.Window, tc.window)
		}
		if seat.Aisle == tc.window {
			t.Fatalf("%s aisle flag should be the inverse of window", tc.code)
		}
		if seat.Premium != tc.premium {
			t.Fatalf("%s premium=%v, want %v", tc.code, seat.Premium, tc.premium)
		}
		if seat.ExtraLegroom != tc.legroom {
			t.Fatalf("%s extraLegroom=%v, want %v", tc.code, seat.ExtraLegroom, tc.legroom)
		}
		if seat.NearExit != tc.exit {
			t.Fatalf("%s nearExit=%v, want %v", tc.code, seat.NearExit, tc.exit)
		}
	}
}

func TestGenerateSeatMapPricing(t *testing.T) {
	m := GenerateSeatMap(1200, 1500, AllAvailable)

	premium, _ := m.Get("2B")
	if premium.Price != 1500 {
		t.Fatalf("premium seat price=%d, want 1500", premium.Price)
	}
	standard, _ := m.Get("7C")
	if standard.Price != 1200 {
		t.Fatalf("standard seat price=%d, want 1200", standard.Price)
	}
}

func TestSeededAvailabilityDeterministic(t *testing.T) {
	a := GenerateSeatMap(1200, 1500, SeededAvailability(42, 0.7))
	b := GenerateSeatMap(1200, 1500, SeededAvailability(42, 0.7))

	for i := range a.Seats {
		if a.Seats[i].Available != b.Seats[i].Available {
			t.Fatalf("seed 42 produced different availability at seat %s", a.Seats[i].Code)
		}
	}
}

func TestEligibleFiltersByNeed(t *testing.T) {
	m := GenerateSeatMap(1200, 1500, AllAvailable)

	wheelchair := m.Eligible(NeedWheelchair)
	if len(wheelchair) != 2 {
		t.Fatalf("expected 2 wheelchair seats (1B, 1C), got %d", len(wheelchair))
	}
	for _, s := range wheelchair {
		if !s.Wheelchair {
			t.Fatalf("seat %s in wheelchair subset without the flag", s.Code)
		}
	}

	legroom := m.Eligible(NeedExtraLegroom)
	if len(legroom) != 8 {
		t.Fatalf("expected 8 extra-legroom seats (rows 1-2), got %d", len(legroom))
	}

	exit := m.Eligible(NeedNearExit)
	if len(exit) != 12 {
		t.Fatalf("expected 12 near-exit seats (rows 1, 5, 10), got %d", len(exit))
	}

	all := m.Eligible(NeedNone)
	if len(all) != 40 {
		t.Fatalf("no need should keep all 40 seats eligible, got %d", len(all))
	}
}

func TestEligibleExcludesBookedSeats(t *testing.T) {
	m := GenerateSeatMap(1200, 1500, AllAvailable)
	m.MarkBooked([]string{"1B", "1C"})

	if got := m.Eligible(NeedWheelchair); len(got) != 0 {
		t.Fatalf("booked wheelchair seats should leave the subset empty, got %d", len(got))
	}
}
