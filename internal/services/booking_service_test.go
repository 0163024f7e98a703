package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
)

func quoteFixture(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		TripRepo:    repositories.TripRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectTrip(mock sqlmock.Sqlmock, tripID int64) {
	rows := sqlmock.NewRows([]string{
		"id", "bus_code", "route_from", "route_to", "trip_date", "trip_time",
		"price_per_seat", "rating", "status",
	}).AddRow(tripID, "ZB-07", "Saddar", "Airport", "2026-09-01", "08:00", 999, 4.5, models.TripScheduled)
	mock.ExpectQuery("SELECT (.+) FROM trips").WithArgs(tripID).WillReturnRows(rows)
}

func expectBookedSeats(mock sqlmock.Sqlmock, tripID int64, codes ...string) {
	rows := sqlmock.NewRows([]string{"seat_code"})
	for _, c := range codes {
		rows.AddRow(c)
	}
	mock.ExpectQuery("SELECT bs.seat_code").WithArgs(tripID, models.BookingCancelled).WillReturnRows(rows)
}

func TestQuoteAppliesRouteFareAndDiscount(t *testing.T) {
	svc, mock, done := quoteFixture(t)
	defer done()

	expectTrip(mock, 9)
	expectBookedSeats(mock, 9, "1A")

	// Saddar-Airport fare rule is 1500 per seat, overriding the stored 999.
	fare, err := svc.Quote(QuoteInput{TripID: 9, SeatCodes: []string{"2A", "2B"}, DiscountCode: "ZUGO10"})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if fare.BaseFare != 1500 {
		t.Fatalf("base=%d, want 1500", fare.BaseFare)
	}
	if fare.Subtotal != 3000 || fare.DiscountAmount != 300 {
		t.Fatalf("subtotal=%d discount=%d, want 3000/300", fare.Subtotal, fare.DiscountAmount)
	}
	if fare.Total != 3000+domain.ServiceFee-300 {
		t.Fatalf("total=%d", fare.Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteRejectsBookedSeat(t *testing.T) {
	svc, mock, done := quoteFixture(t)
	defer done()

	expectTrip(mock, 9)
	expectBookedSeats(mock, 9, "2A")

	_, err := svc.Quote(QuoteInput{TripID: 9, SeatCodes: []string{"2A"}})
	if !errors.Is(err, domain.ErrSeatUnavailable) {
		t.Fatalf("want ErrSeatUnavailable, got %v", err)
	}
}

func TestQuoteRejectsSeatOutsideNeed(t *testing.T) {
	svc, mock, done := quoteFixture(t)
	defer done()

	expectTrip(mock, 9)
	expectBookedSeats(mock, 9)

	// 4A is not a wheelchair seat; the selection must refuse it.
	_, err := svc.Quote(QuoteInput{TripID: 9, SeatCodes: []string{"4A"}, Need: domain.NeedWheelchair})
	if !errors.Is(err, domain.ErrInvalidSelectionForNeed) {
		t.Fatalf("want ErrInvalidSelectionForNeed, got %v", err)
	}
}

func TestNewTicketCodeShape(t *testing.T) {
	re := regexp.MustCompile(`^ZG-[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		code := newTicketCode()
		if !re.MatchString(code) {
			t.Fatalf("ticket code %q does not match ZG-XXXXXXXX", code)
		}
		if seen[code] {
			t.Fatalf("duplicate ticket code %q", code)
		}
		seen[code] = true
	}
}
