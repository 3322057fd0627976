package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

type DiscountTypeRepository struct {
	DB *sql.DB
}

func (r DiscountTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create relies on the UNIQUE constraint and maps the driver's duplicate-key
// error to a domain conflict so the handler can tell it apart from a missing
// field.
func (r DiscountTypeRepository) Create(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO discount_types (name) VALUES (?)`, name)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return 0, domain.ConflictError{Resource: "discount type", Msg: "discount type already exists", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// ListNames returns the bare name list, not full rows.
func (r DiscountTypeRepository) ListNames() ([]string, error) {
	rows, err := r.db().Query(`SELECT name FROM discount_types`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return out, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
