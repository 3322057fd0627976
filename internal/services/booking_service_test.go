package services

import (
	"errors"
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Points:   repositories.PointsRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestBookingCreateGrantsPointsAndHistory(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(3), "trip-5", "bus", "Hotel Azul").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE customers SET points = points \\+ \\?").
		WithArgs(10, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO points_ledger").
		WithArgs(int64(3), "booking completed", 10).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := svc.Create(3, domain.ItemRef{Kind: domain.ItemKindTrip, ID: 5}, "bus", "Hotel Azul")
	if err != nil {
		t.Fatalf("expected full success, got %v", err)
	}
	if id != 7 {
		t.Fatalf("expected booking id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateInsertFailureWritesNothingElse(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errors.New("insert failed"))

	if _, err := svc.Create(3, domain.ItemRef{Kind: domain.ItemKindTrip, ID: 5}, "bus", "Hotel Azul"); err == nil {
		t.Fatal("expected error")
	} else if domain.IsPartialFailure(err) {
		t.Fatalf("step one failure is not partial: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreatePointsFailureKeepsBooking(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE customers SET points").
		WillReturnError(errors.New("update failed"))

	id, err := svc.Create(3, domain.ItemRef{Kind: domain.ItemKindTrip, ID: 5}, "bus", "Hotel Azul")
	if !domain.IsPartialFailure(err) {
		t.Fatalf("expected partial failure, got %v", err)
	}
	if err.Error() != "booking created, but failed to update points" {
		t.Fatalf("wrong tier message: %q", err.Error())
	}
	if id != 7 {
		t.Fatalf("booking id should still be returned, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateLedgerFailureKeepsPoints(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE customers SET points").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO points_ledger").
		WillReturnError(errors.New("insert failed"))

	_, err := svc.Create(3, domain.ItemRef{Kind: domain.ItemKindPackage, ID: 2}, "plane", "Resort Sol")
	if !domain.IsPartialFailure(err) {
		t.Fatalf("expected partial failure, got %v", err)
	}
	if err.Error() != "booking created, points granted, but failed to record history" {
		t.Fatalf("wrong tier message: %q", err.Error())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
