package repositories

import (
	"database/sql"
	"errors"

	"travelapi/internal/config"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

// BookingRepository wraps DB access for the bookings table. Bookings are never
// deleted; admins only move them through the status lifecycle.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r BookingRepository) Insert(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings
		(booking_type, item_id, item_title, full_name, email, phone, travel_date, travelers, message, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.BookingType, NullIfZero(b.ItemID), b.ItemTitle, b.FullName, b.Email, b.Phone,
		NullIfEmpty(b.TravelDate), b.Travelers, NullIfEmpty(b.Message), b.Status,
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to create booking", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r BookingRepository) List(page, limit int) ([]models.Booking, error) {
	query := `
		SELECT
			id, booking_type, COALESCE(item_id,0), item_title, full_name, email, phone,
			COALESCE(travel_date,''), travelers, COALESCE(message,''), status,
			DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM bookings
		ORDER BY created_at DESC`
	tail, args := limitClause(page, limit)

	rows, err := r.db().Query(query+tail, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.BookingType, &b.ItemID, &b.ItemTitle, &b.FullName, &b.Email, &b.Phone,
			&b.TravelDate, &b.Travelers, &b.Message, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan booking", Err: err}
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
		SELECT
			id, booking_type, COALESCE(item_id,0), item_title, full_name, email, phone,
			COALESCE(travel_date,''), travelers, COALESCE(message,''), status,
			DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM bookings WHERE id = ? LIMIT 1`, id,
	).Scan(
		&b.ID, &b.BookingType, &b.ItemID, &b.ItemTitle, &b.FullName, &b.Email, &b.Phone,
		&b.TravelDate, &b.Travelers, &b.Message, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return b, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return b, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	return b, nil
}

// UpdateStatus sets the status unconditionally. The legacy contract treats an
// unknown id as a silent no-op, so rows affected is not checked here.
func (r BookingRepository) UpdateStatus(id int64, status string) error {
	if _, err := r.db().Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id); err != nil {
		return domain.InternalError{Msg: "failed to update booking status", Err: err}
	}
	return nil
}
