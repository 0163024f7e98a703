package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type IssueRepository struct {
	DB *sql.DB
}

func (r IssueRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert files a new issue report.
func (r IssueRepository) Insert(i models.Issue) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO issues (user_id, trip_id, category, description, status, created_at)
		VALUES (?, ?, ?, ?, 'OPEN', NOW())`,
		i.UserID, i.TripID, i.Category, strings.TrimSpace(i.Description),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns issues, optionally filtered by status, newest first.
func (r IssueRepository) List(status string) ([]models.Issue, error) {
	query := `SELECT id, user_id, COALESCE(trip_id,0), category, description, status FROM issues`
	args := []any{}
	if s := strings.ToUpper(strings.TrimSpace(status)); s != "" {
		query += ` WHERE status=?`
		args = append(args, s)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Issue{}
	for rows.Next() {
		var i models.Issue
		if err := rows.Scan(&i.ID, &i.UserID, &i.TripID, &i.Category, &i.Description, &i.Status); err != nil {
			return out, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}
