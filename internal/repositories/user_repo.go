package repositories

import (
	"database/sql"
	"errors"

	"travelapi/internal/config"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

// UserRepository looks up admin accounts for authentication.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(
		`SELECT id, email, name, password FROM users WHERE email = ? LIMIT 1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(
		`SELECT id, email, name, password FROM users WHERE id = ? LIMIT 1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}
