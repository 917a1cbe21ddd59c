package repositories

import (
	"testing"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCategoryDeleteRefusedWhenReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs(int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"refs"}).AddRow(3))

	repo := CategoryRepository{DB: db}
	err = repo.Delete(7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCategoryDeleteUnreferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs(int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"refs"}).AddRow(0))
	mock.ExpectExec("DELETE FROM categories").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := CategoryRepository{DB: db}
	if err := repo.Delete(7); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCategoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, slug, type, status FROM categories").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "type", "status"}))

	repo := CategoryRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCategoryCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO categories").
		WithArgs("Adventure Tours", "adventure-tours", "both", "active").
		WillReturnResult(sqlmock.NewResult(12, 1))

	repo := CategoryRepository{DB: db}
	id, err := repo.Create(models.Category{
		Name: "Adventure Tours", Slug: "adventure-tours", Type: "both", Status: "active",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected id 12, got %d", id)
	}
}
