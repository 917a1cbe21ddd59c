package models

// User is an admin account. Only used for authentication; there is no API
// surface that mutates users.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
