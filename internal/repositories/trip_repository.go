package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
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

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (name, description, start_date, end_date, transport, capacity, price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Name,
		intdb.NullIfEmpty(t.Description),
		t.StartDate,
		t.EndDate,
		intdb.NullIfEmpty(t.Transport),
		t.Capacity,
		t.Price,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT
			id,
			COALESCE(name,''),
			COALESCE(description,''),
			COALESCE(start_date,''),
			COALESCE(end_date,''),
			COALESCE(transport,''),
			COALESCE(capacity,0),
			COALESCE(price,0)
		FROM trips`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Transport, &t.Capacity, &t.Price); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns sql.ErrNoRows when no trip matches.
func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	var t models.Trip
	err := r.db().QueryRow(`
		SELECT
			id,
			COALESCE(name,''),
			COALESCE(description,''),
			COALESCE(start_date,''),
			COALESCE(end_date,''),
			COALESCE(transport,''),
			COALESCE(capacity,0),
			COALESCE(price,0)
		FROM trips WHERE id = ? LIMIT 1`, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.Transport, &t.Capacity, &t.Price)
	if err != nil {
		return models.Trip{}, err
	}
	return t, nil
}
