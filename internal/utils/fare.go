package utils

// Route fares in cents, matched bidirectionally by stop key.
// Longer corridors (airport, Bahria Town) price above the city base.

func isPair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}

// downtown cluster shares one fare band against each outer terminus
var downtown = map[string]bool{
	"saddar":         true,
	"committeechowk": true,
	"faizabad":       true,
	"zeropoint":      true,
	"bluearea":       true,
	"secretariat":    true,
}

// RouteFare returns the per-seat fare for a stop pair (case handled by the
// caller via CanonicalStop). Unmatched pairs fall back to fallbackPrice,
// typically the trip's own price_per_seat.
func RouteFare(fromKey, toKey string, fallbackPrice int64) int64 {
	if fromKey == "" || toKey == "" || fromKey == toKey {
		return fallbackPrice
	}

	if isPair(fromKey, toKey, "gulberg", "airport") {
		return 1000
	}
	if isPair(fromKey, toKey, "bahriatown", "dhaphase2") {
		return 800
	}
	if isPair(fromKey, toKey, "gulberg", "bahriatown") {
		return 1000
	}

	if downtown[fromKey] || downtown[toKey] {
		other := toKey
		if downtown[toKey] {
			other = fromKey
		}
		switch other {
		case "airport":
			return 1500
		case "bahriatown":
			return 1300
		case "dhaphase2":
			return 1300
		case "gulberg":
			return 1200
		default:
			// two downtown stops share the flat city fare
			if downtown[fromKey] && downtown[toKey] {
				return 1200
			}
		}
	}

	return fallbackPrice
}
