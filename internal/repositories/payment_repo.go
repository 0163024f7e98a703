package repositories

import (
	"database/sql"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert records a payment attempt against a booking.
func (r PaymentRepository) Insert(p models.Payment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payments (booking_id, method, card_last4, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		p.BookingID, p.Method, p.CardLast4, p.Amount, p.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByBooking returns payments for one booking, oldest first.
func (r PaymentRepository) ListByBooking(bookingID int64) ([]models.Payment, error) {
	rows, err := r.db().Query(`
		SELECT id, booking_id, method, COALESCE(card_last4,''), amount, status
		FROM payments
		WHERE booking_id=?
		ORDER BY id ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Method, &p.CardLast4, &p.Amount, &p.Status); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
