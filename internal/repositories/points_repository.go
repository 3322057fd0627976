package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
)

// PointsRepository mutates the customer balance and the points_ledger audit
// trail. Callers are responsible for pairing every balance change with a
// ledger entry.
type PointsRepository struct {
	DB *sql.DB
}

func (r PointsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Balance returns sql.ErrNoRows for unknown customers.
func (r PointsRepository) Balance(customerID int64) (int, error) {
	var points int
	err := r.db().QueryRow(`SELECT COALESCE(points,0) FROM customers WHERE id = ? LIMIT 1`, customerID).Scan(&points)
	if err != nil {
		return 0, err
	}
	return points, nil
}

// Add applies a signed delta to the customer balance.
func (r PointsRepository) Add(customerID int64, delta int) error {
	_, err := r.db().Exec(`UPDATE customers SET points = points + ? WHERE id = ?`, delta, customerID)
	return err
}

// AppendEntry records a signed delta with its reason; created_at defaults in
// the store.
func (r PointsRepository) AppendEntry(customerID int64, description string, delta int) error {
	_, err := r.db().Exec(`
		INSERT INTO points_ledger (customer_id, description, points)
		VALUES (?, ?, ?)`, customerID, description, delta)
	return err
}

// History lists a customer's ledger entries, most recent first.
func (r PointsRepository) History(customerID int64) ([]models.PointsEntry, error) {
	rows, err := r.db().Query(`
		SELECT
			id,
			COALESCE(customer_id,0),
			COALESCE(description,''),
			COALESCE(points,0),
			COALESCE(created_at,'')
		FROM points_ledger
		WHERE customer_id = ?
		ORDER BY id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PointsEntry{}
	for rows.Next() {
		var e models.PointsEntry
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.Description, &e.Points, &e.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
