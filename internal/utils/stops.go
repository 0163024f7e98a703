package utils

import "strings"

// StopItem is a canonical city stop served by ZuGo buses.
type StopItem struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}

// Stops returns the supported stop list in route order.
func Stops() []StopItem {
	return []StopItem{
		{Key: "saddar", Display: "Saddar"},
		{Key: "committeechowk", Display: "Committee Chowk"},
		{Key: "faizabad", Display: "Faizabad"},
		{Key: "zeropoint", Display: "Zero Point"},
		{Key: "bluearea", Display: "Blue Area"},
		{Key: "secretariat", Display: "Secretariat"},
		{Key: "airport", Display: "Airport"},
		{Key: "gulberg", Display: "Gulberg"},
		{Key: "bahriatown", Display: "Bahria Town"},
		{Key: "dhaphase2", Display: "DHA Phase 2"},
	}
}

func normalizeStopKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

// CanonicalStop resolves user input to the canonical display name and key.
func CanonicalStop(s string) (display, key string, ok bool) {
	k := normalizeStopKey(s)
	for _, stop := range Stops() {
		if stop.Key == k {
			return stop.Display, stop.Key, true
		}
	}
	// common aliases
	switch k {
	case "cmtchowk":
		return "Committee Chowk", "committeechowk", true
	case "isbairport", "iia":
		return "Airport", "airport", true
	case "dha", "dha2":
		return "DHA Phase 2", "dhaphase2", true
	}
	return "", "", false
}
