package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PackageRepository) Create(p models.TravelPackage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO packages (name, destination, party_size, discount, discount_type, price)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.Destination, p.PartySize, p.Discount, p.DiscountType, p.Price,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PackageRepository) List() ([]models.TravelPackage, error) {
	rows, err := r.db().Query(`
		SELECT
			id,
			COALESCE(name,''),
			COALESCE(destination,''),
			COALESCE(party_size,0),
			COALESCE(discount,0),
			COALESCE(discount_type,''),
			COALESCE(price,0)
		FROM packages`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TravelPackage{}
	for rows.Next() {
		var p models.TravelPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Destination, &p.PartySize, &p.Discount, &p.DiscountType, &p.Price); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID returns sql.ErrNoRows when no package matches.
func (r PackageRepository) GetByID(id int64) (models.TravelPackage, error) {
	var p models.TravelPackage
	err := r.db().QueryRow(`
		SELECT
			id,
			COALESCE(name,''),
			COALESCE(destination,''),
			COALESCE(party_size,0),
			COALESCE(discount,0),
			COALESCE(discount_type,''),
			COALESCE(price,0)
		FROM packages WHERE id = ? LIMIT 1`, id).
		Scan(&p.ID, &p.Name, &p.Destination, &p.PartySize, &p.Discount, &p.DiscountType, &p.Price)
	if err != nil {
		return models.TravelPackage{}, err
	}
	return p, nil
}
