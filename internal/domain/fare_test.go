package domain

import (
	"errors"
	"testing"
)

func TestQuoteFareNoDiscount(t *testing.T) {
	// 2 seats at $12.00 plus $1.00 service fee = $25.00
	q, err := QuoteFare(2, 1200, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Subtotal != 2400 {
		t.Fatalf("subtotal=%d, want 2400", q.Subtotal)
	}
	if q.Total != 2500 {
		t.Fatalf("total=%d, want 2500", q.Total)
	}
	if q.DiscountAmount != 0 {
		t.Fatalf("discount=%d, want 0", q.DiscountAmount)
	}
}

func TestQuoteFareTenPercentCode(t *testing.T) {
	// 10 percent off a $24.00 subtotal: discount $2.40, total $22.60
	q, err := QuoteFare(2, 1200, "ZUGO10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DiscountAmount != 240 {
		t.Fatalf("discount=%d, want 240", q.DiscountAmount)
	}
	if q.Total != 2260 {
		t.Fatalf("total=%d, want 2260", q.Total)
	}
}

func TestQuoteFareFivePercentCode(t *testing.T) {
	q, err := QuoteFare(2, 1200, "city5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DiscountPct != 5 {
		t.Fatalf("pct=%d, want 5 (codes are case-insensitive)", q.DiscountPct)
	}
	if q.DiscountAmount != 120 {
		t.Fatalf("discount=%d, want 120", q.DiscountAmount)
	}
}

func TestQuoteFareUnknownCode(t *testing.T) {
	q, err := QuoteFare(2, 1200, "NOPE99")
	if !errors.Is(err, ErrInvalidDiscountCode) {
		t.Fatalf("expected ErrInvalidDiscountCode, got %v", err)
	}
	// Breakdown stays identical to the no-discount case.
	if q.DiscountAmount != 0 {
		t.Fatalf("discount=%d, want 0 for unknown code", q.DiscountAmount)
	}
	if q.Total != 2500 {
		t.Fatalf("total=%d, want 2500 for unknown code", q.Total)
	}
}

func TestQuoteFareNeverNegative(t *testing.T) {
	q, err := QuoteFare(0, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != ServiceFee {
		t.Fatalf("empty selection should cost just the fee, got %d", q.Total)
	}

	// A generalized discount table must never drive the total below zero.
	if got := clampMoney(-500); got != 0 {
		t.Fatalf("clampMoney(-500)=%d, want 0", got)
	}
}
