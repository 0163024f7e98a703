package repositories

import (
	"database/sql"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert adds a notification for a user.
func (r NotificationRepository) Insert(n models.Notification) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO notifications (user_id, title, body, read_flag, created_at)
		VALUES (?, ?, ?, 0, NOW())`,
		n.UserID, n.Title, n.Body,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByUser returns a user's notifications, newest first.
func (r NotificationRepository) ListByUser(userID int64) ([]models.Notification, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, title, body, read_flag
		FROM notifications
		WHERE user_id=?
		ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read); err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flips one of the user's notifications to read.
func (r NotificationRepository) MarkRead(id, userID int64) error {
	res, err := r.db().Exec(`
		UPDATE notifications SET read_flag=1 WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "notification"}
	}
	return nil
}
