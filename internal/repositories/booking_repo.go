package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts the booking and its seats in one transaction so a failed
// seat insert never leaves a half-written booking behind.
func (r BookingRepository) Create(b models.Booking, seats []models.BookingSeat) (int64, error) {
	db := r.db()

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO bookings
			(ticket_code, user_id, trip_id, route_from, route_to, trip_date, trip_time,
			 passenger_count, price_per_seat, service_fee, discount_code, discount_amount,
			 total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		b.TicketCode, b.UserID, b.TripID, b.RouteFrom, b.RouteTo, b.TripDate, b.TripTime,
		b.PassengerCount, b.PricePerSeat, b.ServiceFee, b.DiscountCode, b.DiscountAmount,
		b.Total, b.Status,
	)
	if err != nil {
		return 0, err
	}

	bookingID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, seat := range seats {
		if _, err := tx.Exec(`
			INSERT INTO booking_seats (booking_id, seat_code, passenger_name)
			VALUES (?, ?, ?)`,
			bookingID, strings.ToUpper(strings.TrimSpace(seat.SeatCode)), strings.TrimSpace(seat.PassengerName),
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return bookingID, nil
}

const bookingColumns = `id, ticket_code, user_id, trip_id, route_from, route_to, trip_date, trip_time,
	passenger_count, price_per_seat, service_fee, COALESCE(discount_code,''), discount_amount,
	total, status, COALESCE(cancel_reason,'')`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.TicketCode,
		&b.UserID,
		&b.TripID,
		&b.RouteFrom,
		&b.RouteTo,
		&b.TripDate,
		&b.TripTime,
		&b.PassengerCount,
		&b.PricePerSeat,
		&b.ServiceFee,
		&b.DiscountCode,
		&b.DiscountAmount,
		&b.Total,
		&b.Status,
		&b.CancelReason,
	)
	return b, err
}

// GetByID fetches one booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

// Seats returns the seat allocation of a booking in insert order.
func (r BookingRepository) Seats(bookingID int64) ([]models.BookingSeat, error) {
	rows, err := r.db().Query(`
		SELECT seat_code, COALESCE(passenger_name,'')
		FROM booking_seats
		WHERE booking_id=?
		ORDER BY id ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingSeat{}
	for rows.Next() {
		var seat models.BookingSeat
		if err := rows.Scan(&seat.SeatCode, &seat.PassengerName); err != nil {
			return out, err
		}
		out = append(out, seat)
	}
	return out, rows.Err()
}

// BookedSeatCodes returns every seat code already taken on a trip by a
// booking that is still alive (cancelled bookings release their seats).
func (r BookingRepository) BookedSeatCodes(tripID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT bs.seat_code
		FROM booking_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE b.trip_id=? AND b.status<>?`, tripID, models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return out, err
		}
		out = append(out, strings.ToUpper(strings.TrimSpace(code)))
	}
	return out, rows.Err()
}

// UpdateStatus transitions a booking from one status to another. Returns
// false when the booking was not in the expected status.
func (r BookingRepository) UpdateStatus(id int64, from, to, cancelReason string) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE bookings SET status=?, cancel_reason=? WHERE id=? AND status=?`,
		to, strings.TrimSpace(cancelReason), id, from,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByUser returns a user's bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings WHERE user_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
