package repositories

import (
	"testing"

	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingColumns() []string {
	return []string{"id", "customer", "item", "transport", "lodging", "payment_status"}
}

func TestBookingCreateUsesStoreDefaultStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// payment_status is absent from the insert so the store default applies
	mock.ExpectExec("INSERT INTO bookings \\(customer_id, item_ref, transport, lodging\\)").
		WithArgs(int64(3), "trip-5", "bus", "Hotel Azul").
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Create(models.Booking{
		CustomerID: 3,
		ItemRef:    "trip-5",
		Transport:  "bus",
		Lodging:    "Hotel Azul",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected id 9, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingSearchNoFiltersOrdersDescending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b(.|\\s)+ORDER BY b\\.id DESC").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(3, "Ana Torres", "Andes Trek", "bus", "Hotel Azul", "pending").
			AddRow(2, "Luis Mora", "Caribbean Combo", "plane", "Resort Sol", "paid").
			AddRow(1, "Ana Torres", "Andes Trek", "bus", "Hotel Azul", "pending"))

	repo := BookingRepository{DB: db}
	rows, err := repo.Search(BookingFilter{})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != 3 || rows[1].ID != 2 || rows[2].ID != 1 {
		t.Fatalf("rows out of order: %+v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingSearchAppliesAllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("c\\.name LIKE \\? AND \\(t\\.name LIKE \\? OR p\\.name LIKE \\?\\) AND b\\.payment_status = \\?").
		WithArgs("%ana%", "%trek%", "%trek%", "paid").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(5, "Ana Torres", "Andes Trek", "bus", "Hotel Azul", "paid"))

	repo := BookingRepository{DB: db}
	rows, err := repo.Search(BookingFilter{Customer: "ana", Item: "trek", Status: "paid"})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(rows) != 1 || rows[0].Item != "Andes Trek" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetVoucherResolvesItemName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b(.|\\s)+WHERE b\\.id = \\?").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer", "item_ref", "item", "price", "transport", "lodging", "payment_status"}).
			AddRow(7, "Ana Torres", "trip-5", "Andes Trek", 499.0, "bus", "Hotel Azul", "pending"))

	repo := BookingRepository{DB: db}
	v, err := repo.GetVoucher(7)
	if err != nil {
		t.Fatalf("voucher error: %v", err)
	}
	if v.ItemName != "Andes Trek" || v.Price != 499.0 {
		t.Fatalf("unexpected voucher: %+v", v)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
