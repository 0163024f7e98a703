package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
)

type RosterRepository struct {
	DB *sql.DB
}

func (r RosterRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// SeedFromBookings materializes roster entries for every paid seat on the
// trip. Existing entries keep their boarding status; reseeding only picks up
// bookings made after the roster was first opened.
func (r RosterRepository) SeedFromBookings(tripID int64) error {
	_, err := r.db().Exec(`
		INSERT INTO roster_entries
			(trip_id, ticket_no, passenger_name, from_stop, to_stop, seat_code, status, updated_at)
		SELECT b.trip_id,
		       CONCAT(b.ticket_code, '-', bs.seat_code),
		       COALESCE(NULLIF(bs.passenger_name, ''), 'Passenger'),
		       b.route_from,
		       b.route_to,
		       bs.seat_code,
		       ?,
		       NOW()
		FROM bookings b
		JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE b.trip_id=? AND b.status=?
		ON DUPLICATE KEY UPDATE passenger_name=VALUES(passenger_name)`,
		string(domain.BoardingPending), tripID, "PAID",
	)
	return err
}

// ListByTrip loads the roster for a trip in seat order.
func (r RosterRepository) ListByTrip(tripID int64) ([]domain.RosterEntry, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_id, ticket_no, passenger_name, from_stop, to_stop, seat_code, status
		FROM roster_entries
		WHERE trip_id=?
		ORDER BY seat_code ASC, id ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RosterEntry{}
	for rows.Next() {
		var e domain.RosterEntry
		var status string
		if err := rows.Scan(&e.ID, &e.TripID, &e.TicketNo, &e.PassengerName, &e.FromStop, &e.ToStop, &e.SeatCode, &status); err != nil {
			return out, err
		}
		e.Status = domain.BoardingStatus(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateStatus persists a single PENDING transition. Returns false when the
// entry was missing or already in a final status, so callers can distinguish
// a lost race from success.
func (r RosterRepository) UpdateStatus(tripID int64, ticketNo string, to domain.BoardingStatus) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE roster_entries
		SET status=?, updated_at=NOW()
		WHERE trip_id=? AND ticket_no=? AND status=?`,
		string(to), tripID, strings.ToUpper(strings.TrimSpace(ticketNo)), string(domain.BoardingPending),
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

// CloseDoors marks every PENDING entry on the trip MISSED in a single
// statement, which keeps the bulk transition atomic.
func (r RosterRepository) CloseDoors(tripID int64) (int64, error) {
	res, err := r.db().Exec(`
		UPDATE roster_entries
		SET status=?, updated_at=NOW()
		WHERE trip_id=? AND status=?`,
		string(domain.BoardingMissed), tripID, string(domain.BoardingPending),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
