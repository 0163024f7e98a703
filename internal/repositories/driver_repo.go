package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns drivers ordered by name.
func (r DriverRepository) List() ([]models.Driver, error) {
	rows, err := r.db().Query(`
		SELECT id, name, phone, license_no, status
		FROM drivers
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNo, &d.Status); err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Insert adds a driver.
func (r DriverRepository) Insert(d models.Driver) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO drivers (name, phone, license_no, status)
		VALUES (?, ?, ?, ?)`,
		strings.TrimSpace(d.Name), strings.TrimSpace(d.Phone), strings.TrimSpace(d.LicenseNo), d.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites a driver row.
func (r DriverRepository) Update(d models.Driver) error {
	res, err := r.db().Exec(`
		UPDATE drivers SET name=?, phone=?, license_no=?, status=? WHERE id=?`,
		strings.TrimSpace(d.Name), strings.TrimSpace(d.Phone), strings.TrimSpace(d.LicenseNo), d.Status, d.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

// Delete removes a driver.
func (r DriverRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}
