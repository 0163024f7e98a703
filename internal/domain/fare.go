package domain

import "strings"

// ServiceFee is a flat per-booking fee in cents.
const ServiceFee int64 = 100

// discountCodes maps promo codes to their percentage off the seat subtotal.
var discountCodes = map[string]int{
	"ZUGO10": 10,
	"CITY5":  5,
}

// FareBreakdown is derived state, recomputed per request, never stored.
type FareBreakdown struct {
	SeatCount      int    `json:"seatCount"`
	BaseFare       int64  `json:"baseFare"`
	Subtotal       int64  `json:"subtotal"`
	ServiceFee     int64  `json:"serviceFee"`
	DiscountCode   string `json:"discountCode,omitempty"`
	DiscountPct    int    `json:"discountPct,omitempty"`
	DiscountAmount int64  `json:"discountAmount"`
	Total          int64  `json:"total"`
}

// QuoteFare computes seatCount*baseFare + ServiceFee - discount, with the
// discount applied to the pre-fee seat subtotal. An unknown code yields the
// undiscounted breakdown together with ErrInvalidDiscountCode so callers can
// show the user both. The total never goes below zero.
func QuoteFare(seatCount int, baseFare int64, discountCode string) (FareBreakdown, error) {
	if seatCount < 0 {
		seatCount = 0
	}

	subtotal := int64(seatCount) * baseFare
	out := FareBreakdown{
		SeatCount:  seatCount,
		BaseFare:   baseFare,
		Subtotal:   subtotal,
		ServiceFee: ServiceFee,
		Total:      clampMoney(subtotal + ServiceFee),
	}

	code := strings.ToUpper(strings.TrimSpace(discountCode))
	if code == "" {
		return out, nil
	}

	pct, ok := discountCodes[code]
	if !ok {
		return out, ErrInvalidDiscountCode
	}

	out.DiscountCode = code
	out.DiscountPct = pct
	out.DiscountAmount = subtotal * int64(pct) / 100
	out.Total = clampMoney(subtotal + ServiceFee - out.DiscountAmount)
	return out, nil
}

func clampMoney(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
