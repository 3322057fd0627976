package repositories

import (
	"testing"

	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTripCreateThenGetByIDReturnsSameFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	in := models.Trip{
		Name:        "Andes Trek",
		Description: "Five day mountain hike",
		StartDate:   "2025-01-10",
		EndDate:     "2025-01-20",
		Transport:   "bus",
		Capacity:    20,
		Price:       499.0,
	}

	mock.ExpectExec("INSERT INTO trips").
		WithArgs(in.Name, in.Description, in.StartDate, in.EndDate, in.Transport, in.Capacity, in.Price).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("FROM trips WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "start_date", "end_date", "transport", "capacity", "price"}).
			AddRow(9, in.Name, in.Description, in.StartDate, in.EndDate, in.Transport, in.Capacity, in.Price))

	repo := TripRepository{DB: db}
	id, err := repo.Create(in)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	got, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	in.ID = id
	if got != in {
		t.Fatalf("read back %+v, want %+v", got, in)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
