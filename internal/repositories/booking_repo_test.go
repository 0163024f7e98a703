package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

var errDuplicateSeat = errors.New("Error 1062: Duplicate entry")

func TestBookingCreateRollsBackOnSeatError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WillReturnError(errDuplicateSeat)
	mock.ExpectRollback()

	repo := BookingRepository{DB: db}
	_, err = repo.Create(models.Booking{TicketCode: "ZG-AB12CD34", Status: models.BookingPending},
		[]models.BookingSeat{{SeatCode: "2A"}})
	if err == nil {
		t.Fatal("expected seat insert error to surface")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateCommitsSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(int64(10), "2A", "Ayesha").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(int64(10), "2B", "").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	repo := BookingRepository{DB: db}
	id, err := repo.Create(models.Booking{TicketCode: "ZG-AB12CD34", Status: models.BookingPending},
		[]models.BookingSeat{{SeatCode: "2a", PassengerName: "Ayesha"}, {SeatCode: "2B"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 10 {
		t.Fatalf("id=%d, want 10", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookedSeatCodesSkipsCancelledBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"seat_code"}).AddRow("2a").AddRow("3C")
	mock.ExpectQuery("SELECT bs.seat_code").
		WithArgs(int64(9), models.BookingCancelled).
		WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	codes, err := repo.BookedSeatCodes(9)
	if err != nil {
		t.Fatalf("booked seats: %v", err)
	}
	if len(codes) != 2 || codes[0] != "2A" || codes[1] != "3C" {
		t.Fatalf("codes=%v, want normalized [2A 3C]", codes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
