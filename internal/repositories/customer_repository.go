package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
)

// CustomerMatch is the slim row returned by the search endpoint.
type CustomerMatch struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
}

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ExistsByNationalID is the explicit pre-insert uniqueness check; the UNIQUE
// constraint on the column stays as a backstop.
func (r CustomerRepository) ExistsByNationalID(nationalID string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM customers WHERE national_id = ?`, nationalID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r CustomerRepository) Create(c models.Customer) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO customers (name, national_id, email, phone, notes, points)
		VALUES (?, ?, ?, ?, ?, 0)`,
		c.Name,
		c.NationalID,
		intdb.NullIfEmpty(c.Email),
		intdb.NullIfEmpty(c.Phone),
		intdb.NullIfEmpty(c.Notes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every customer without the notes column.
func (r CustomerRepository) List() ([]models.Customer, error) {
	rows, err := r.db().Query(`
		SELECT
			id,
			COALESCE(name,''),
			COALESCE(national_id,''),
			COALESCE(email,''),
			COALESCE(phone,''),
			COALESCE(points,0)
		FROM customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.NationalID, &c.Email, &c.Phone, &c.Points); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Search matches the term as a substring of name or national ID, capped at 10
// rows. Case sensitivity is whatever the store collation does with LIKE.
func (r CustomerRepository) Search(term string) ([]CustomerMatch, error) {
	like := "%" + term + "%"
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(national_id,'')
		FROM customers
		WHERE name LIKE ? OR national_id LIKE ?
		LIMIT 10`, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CustomerMatch{}
	for rows.Next() {
		var m CustomerMatch
		if err := rows.Scan(&m.ID, &m.Name, &m.NationalID); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
