package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/config"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns the fleet ordered by code.
func (r VehicleRepository) List() ([]models.Vehicle, error) {
	rows, err := r.db().Query(`
		SELECT id, code, plate_number, capacity, status
		FROM vehicles
		ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Code, &v.PlateNumber, &v.Capacity, &v.Status); err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Insert adds a vehicle.
func (r VehicleRepository) Insert(v models.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (code, plate_number, capacity, status)
		VALUES (?, ?, ?, ?)`,
		strings.ToUpper(strings.TrimSpace(v.Code)), strings.TrimSpace(v.PlateNumber), v.Capacity, v.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites a vehicle row.
func (r VehicleRepository) Update(v models.Vehicle) error {
	res, err := r.db().Exec(`
		UPDATE vehicles SET code=?, plate_number=?, capacity=?, status=? WHERE id=?`,
		strings.ToUpper(strings.TrimSpace(v.Code)), strings.TrimSpace(v.PlateNumber), v.Capacity, v.Status, v.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// Delete removes a vehicle.
func (r VehicleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
