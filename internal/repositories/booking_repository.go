package repositories

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
)

// BookingRow is a booking joined with the customer name and the resolved
// item name for list views.
type BookingRow struct {
	ID            int64  `json:"id"`
	Customer      string `json:"customer"`
	Item          string `json:"item"`
	Transport     string `json:"transport"`
	Lodging       string `json:"lodging"`
	PaymentStatus string `json:"payment_status"`
}

// BookingFilter narrows the search; empty fields are ignored.
type BookingFilter struct {
	Customer string // substring of customer name
	Item     string // substring of trip or package name
	Status   string // exact payment status
}

// BookingVoucher is everything the printable voucher needs.
type BookingVoucher struct {
	ID            int64
	Customer      string
	ItemRef       string
	ItemName      string
	Price         float64
	Transport     string
	Lodging       string
	PaymentStatus string
}

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (customer_id, item_ref, transport, lodging)
		VALUES (?, ?, ?, ?)`,
		b.CustomerID, b.ItemRef, b.Transport, b.Lodging,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// itemJoins resolves the stored "<kind>-<id>" reference against trips and
// packages. The discriminant is everything before the first '-', the id
// everything after it; exactly one of the two joins can produce a name.
const itemJoins = `
	LEFT JOIN customers c ON b.customer_id = c.id
	LEFT JOIN trips t
		ON SUBSTRING_INDEX(b.item_ref, '-', 1) = 'trip'
		AND CAST(SUBSTRING(b.item_ref, LOCATE('-', b.item_ref) + 1) AS UNSIGNED) = t.id
	LEFT JOIN packages p
		ON SUBSTRING_INDEX(b.item_ref, '-', 1) = 'package'
		AND CAST(SUBSTRING(b.item_ref, LOCATE('-', b.item_ref) + 1) AS UNSIGNED) = p.id`

// Search returns bookings most recent first. Filters are ANDed; with none,
// every booking comes back.
func (r BookingRepository) Search(f BookingFilter) ([]BookingRow, error) {
	query := `
		SELECT
			b.id,
			COALESCE(c.name,'') AS customer,
			COALESCE(t.name, p.name, '') AS item,
			COALESCE(b.transport,''),
			COALESCE(b.lodging,''),
			COALESCE(b.payment_status,'')
		FROM bookings b` + itemJoins

	where := []string{}
	args := []any{}
	if f.Customer != "" {
		where = append(where, "c.name LIKE ?")
		args = append(args, "%"+f.Customer+"%")
	}
	if f.Item != "" {
		where = append(where, "(t.name LIKE ? OR p.name LIKE ?)")
		args = append(args, "%"+f.Item+"%", "%"+f.Item+"%")
	}
	if f.Status != "" {
		where = append(where, "b.payment_status = ?")
		args = append(args, f.Status)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY b.id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookingRow{}
	for rows.Next() {
		var row BookingRow
		if err := rows.Scan(&row.ID, &row.Customer, &row.Item, &row.Transport, &row.Lodging, &row.PaymentStatus); err != nil {
			return out, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetVoucher loads one booking with the customer and resolved item joined in.
// Returns sql.ErrNoRows when the booking does not exist.
func (r BookingRepository) GetVoucher(id int64) (BookingVoucher, error) {
	var v BookingVoucher
	err := r.db().QueryRow(`
		SELECT
			b.id,
			COALESCE(c.name,''),
			COALESCE(b.item_ref,''),
			COALESCE(t.name, p.name, ''),
			COALESCE(t.price, p.price, 0),
			COALESCE(b.transport,''),
			COALESCE(b.lodging,''),
			COALESCE(b.payment_status,'')
		FROM bookings b`+itemJoins+`
		WHERE b.id = ? LIMIT 1`, id).
		Scan(&v.ID, &v.Customer, &v.ItemRef, &v.ItemName, &v.Price, &v.Transport, &v.Lodging, &v.PaymentStatus)
	if err != nil {
		return BookingVoucher{}, err
	}
	return v, nil
}
