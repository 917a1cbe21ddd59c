package services

import (
	"fmt"
	"testing"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type stubMailer struct {
	sent []models.Booking
	err  error
}

func (m *stubMailer) SendBookingNotification(b models.Booking) error {
	m.sent = append(m.sent, b)
	return m.err
}

func TestBookingCreateRejectsMissingFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	// no expectations: a validation failure must not touch the DB

	svc := BookingService{Repo: repositories.BookingRepository{DB: db}}

	valid := BookingInput{
		BookingType: "tour",
		ItemTitle:   "Desert Safari",
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+971500000000",
	}

	drop := []func(*BookingInput){
		func(in *BookingInput) { in.BookingType = "" },
		func(in *BookingInput) { in.ItemTitle = "" },
		func(in *BookingInput) { in.FullName = "" },
		func(in *BookingInput) { in.Email = "" },
		func(in *BookingInput) { in.Phone = "" },
	}
	for i, mutate := range drop {
		in := valid
		mutate(&in)
		if _, err := svc.Create(in); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("validation failures must not reach the DB: %v", err)
	}
}

func TestBookingCreateInsertsWithDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("tour", nil, "Desert Safari", "Jane Doe", "jane@example.com", "+971500000000",
			nil, 1, nil, "new").
		WillReturnResult(sqlmock.NewResult(7, 1))

	mailer := &stubMailer{}
	svc := BookingService{Repo: repositories.BookingRepository{DB: db}, Mailer: mailer}

	b, err := svc.Create(BookingInput{
		BookingType: "tour",
		ItemTitle:   "Desert Safari",
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+971500000000",
		// Travelers omitted: defaults to 1
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if b.ID != 7 || b.Status != models.BookingStatusNew || b.Travelers != 1 {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(mailer.sent))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateSurvivesMailFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(8, 1))

	mailer := &stubMailer{err: fmt.Errorf("smtp relay down")}
	svc := BookingService{Repo: repositories.BookingRepository{DB: db}, Mailer: mailer}

	b, err := svc.Create(BookingInput{
		BookingType: "package",
		ItemTitle:   "Bali Escape",
		FullName:    "John Roe",
		Email:       "john@example.com",
		Phone:       "+62811",
		Travelers:   3,
	})
	if err != nil {
		t.Fatalf("mail failure must not fail the booking, got %v", err)
	}
	if b.ID != 8 {
		t.Fatalf("expected id 8, got %d", b.ID)
	}
}

func TestBookingSetStatusRejectsUnknownValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := BookingService{Repo: repositories.BookingRepository{DB: db}}
	if err := svc.SetStatus(1, "archived"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("invalid status must not reach the DB: %v", err)
	}
}

func TestBookingTransitionGuardsGraph(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	row := func(status string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "booking_type", "item_id", "item_title", "full_name", "email", "phone",
			"travel_date", "travelers", "message", "status", "created_at",
		}).AddRow(3, "tour", 0, "Desert Safari", "Jane Doe", "jane@example.com", "+971500000000",
			"", 2, "", status, "2026-08-01 09:00:00")
	}

	// legal move: new -> contacted
	mock.ExpectQuery("SELECT").WithArgs(int64(3)).WillReturnRows(row("new"))
	mock.ExpectExec("UPDATE bookings SET status").WithArgs("contacted", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := BookingService{Repo: repositories.BookingRepository{DB: db}}
	b, err := svc.Transition(3, "contacted")
	if err != nil {
		t.Fatalf("legal transition failed: %v", err)
	}
	if b.Status != "contacted" {
		t.Fatalf("expected contacted, got %s", b.Status)
	}

	// illegal move: new -> completed, no UPDATE expected
	mock.ExpectQuery("SELECT").WithArgs(int64(3)).WillReturnRows(row("new"))
	if _, err := svc.Transition(3, "completed"); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
