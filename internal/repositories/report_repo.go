package repositories

import (
	"database/sql"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FleetReport aggregates boarding activity and revenue for a date range.
// Empty bounds widen the range to everything on file. Every aggregate is
// bounded by the same trip_date predicates.
func (r ReportRepository) FleetReport(startDate, endDate string) (models.FleetReport, error) {
	var out models.FleetReport
	db := r.db()

	bounds := func(col string) (string, []any) {
		where := ``
		args := []any{}
		if startDate != "" {
			where += ` AND ` + col + `>=?`
			args = append(args, startDate)
		}
		if endDate != "" {
			where += ` AND ` + col + `<=?`
			args = append(args, endDate)
		}
		return where, args
	}

	tripWhere, tripArgs := bounds("trip_date")
	if err := db.QueryRow(`SELECT COUNT(*) FROM trips WHERE 1=1`+tripWhere, tripArgs...).Scan(&out.Trips); err != nil {
		return out, err
	}

	// roster entries carry no date of their own, so range via the trip
	rosterWhere, rosterArgs := bounds("t.trip_date")
	args := append([]any{string(domain.BoardingBoarded), string(domain.BoardingMissed)}, rosterArgs...)
	if err := db.QueryRow(`
		SELECT
			COALESCE(SUM(re.status=?),0),
			COALESCE(SUM(re.status=?),0)
		FROM roster_entries re
		JOIN trips t ON t.id = re.trip_id
		WHERE 1=1`+rosterWhere,
		args...,
	).Scan(&out.Boarded, &out.Missed); err != nil {
		return out, err
	}

	bookingWhere, bookingArgs := bounds("trip_date")
	args = append([]any{models.BookingPaid, models.BookingCancelled}, bookingArgs...)
	if err := db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN status=? THEN total ELSE 0 END),0),
			COALESCE(SUM(status=?),0)
		FROM bookings
		WHERE 1=1`+bookingWhere,
		args...,
	).Scan(&out.Revenue, &out.Cancellations); err != nil {
		return out, err
	}

	return out, nil
}
