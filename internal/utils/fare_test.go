package utils

import "testing"

func TestRouteFare(t *testing.T) {
	cases := []struct {
		from, to string
		want     int64
	}{
		{"saddar", "airport", 1500},
		{"airport", "saddar", 1500}, // bidirectional
		{"bluearea", "bahriatown", 1300},
		{"zeropoint", "dhaphase2", 1300},
		{"faizabad", "gulberg", 1200},
		{"saddar", "committeechowk", 1200}, // intra-downtown flat fare
		{"gulberg", "airport", 1000},
		{"bahriatown", "dhaphase2", 800},
		{"gulberg", "dhaphase2", 750}, // no rule, fallback
	}

	for _, tc := range cases {
		got := RouteFare(tc.from, tc.to, 750)
		if got != tc.want {
			t.Fatalf("RouteFare(%s, %s)=%d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRouteFareDegenerateInput(t *testing.T) {
	if got := RouteFare("saddar", "saddar", 750); got != 750 {
		t.Fatalf("same stop must fall back, got %d", got)
	}
	if got := RouteFare("", "airport", 750); got != 750 {
		t.Fatalf("empty stop must fall back, got %d", got)
	}
}

func TestCanonicalStop(t *testing.T) {
	display, key, ok := CanonicalStop("  Committee Chowk ")
	if !ok || key != "committeechowk" || display != "Committee Chowk" {
		t.Fatalf("got (%q, %q, %v)", display, key, ok)
	}

	if _, key, ok := CanonicalStop("dha"); !ok || key != "dhaphase2" {
		t.Fatalf("alias dha -> %q ok=%v", key, ok)
	}

	if _, _, ok := CanonicalStop("nowhere"); ok {
		t.Fatal("unknown stop must not resolve")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "Rs 0.00"},
		{2500, "Rs 25.00"},
		{125000, "Rs 1,250.00"},
		{-9950, "-Rs 99.50"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.cents); got != tc.want {
			t.Fatalf("FormatAmount(%d)=%q, want %q", tc.cents, got, tc.want)
		}
	}
}
