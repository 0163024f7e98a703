package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, bus_code, route_from, route_to, trip_date, trip_time, price_per_seat, rating, status`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID,
		&t.BusCode,
		&t.RouteFrom,
		&t.RouteTo,
		&t.TripDate,
		&t.TripTime,
		&t.PricePerSeat,
		&t.Rating,
		&t.Status,
	)
	return t, err
}

// Search lists scheduled trips for a route and date. An empty timeAfter
// returns the whole day; otherwise only departures at or after it.
func (r TripRepository) Search(routeFrom, routeTo, tripDate, timeAfter string) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE status=? AND route_from=? AND route_to=? AND trip_date=?`
	args := []any{models.TripScheduled, routeFrom, routeTo, tripDate}

	if strings.TrimSpace(timeAfter) != "" {
		query += ` AND trip_time>=?`
		args = append(args, timeAfter)
	}
	query += ` ORDER BY trip_time ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID fetches one trip.
func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=?`, id)
	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}
