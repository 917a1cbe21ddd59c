package repositories

import (
	"testing"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingInsertDefaultsOptionalColumnsToNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("tour", nil, "Desert Safari", "Jane Doe", "jane@example.com", "+971500000000",
			nil, 2, nil, "new").
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Insert(models.Booking{
		BookingType: "tour",
		ItemTitle:   "Desert Safari",
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+971500000000",
		Travelers:   2,
		Status:      models.BookingStatusNew,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id 5, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID(404); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingListScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "booking_type", "item_id", "item_title", "full_name", "email", "phone",
		"travel_date", "travelers", "message", "status", "created_at",
	}).
		AddRow(2, "package", 9, "Bali Escape", "John Roe", "john@example.com", "+62811", "2026-09-10", 4, "window seats please", "new", "2026-08-01 09:00:00").
		AddRow(1, "custom", 0, "Honeymoon", "Ann Poe", "ann@example.com", "+62812", "", 2, "", "confirmed", "2026-07-20 10:30:00")

	mock.ExpectQuery("SELECT(.|\n)+FROM bookings").WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	list, err := repo.List(0, 0)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(list))
	}
	if list[0].ItemTitle != "Bali Escape" || list[0].Travelers != 4 {
		t.Fatalf("first row scanned wrong: %+v", list[0])
	}
	if list[1].Status != "confirmed" || list[1].ItemID != 0 {
		t.Fatalf("second row scanned wrong: %+v", list[1])
	}
}

func TestBookingUpdateStatusNoRowIsSilent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("contacted", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepository{DB: db}
	if err := repo.UpdateStatus(123, "contacted"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}
