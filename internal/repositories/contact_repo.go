package repositories

import (
	"database/sql"

	"travelapi/internal/config"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

// ContactRepository wraps DB access for contact_queries. Insert-only surface.
type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r ContactRepository) Insert(q models.ContactQuery) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO contact_queries (name, email, phone, package, message)
		VALUES (?, ?, ?, ?, ?)`,
		q.Name, q.Email, NullIfEmpty(q.Phone), NullIfEmpty(q.Package), q.Message,
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to create inquiry", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r ContactRepository) List(page, limit int) ([]models.ContactQuery, error) {
	query := `
		SELECT
			id, name, email, COALESCE(phone,''), COALESCE(package,''), message,
			DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM contact_queries
		ORDER BY created_at DESC`
	tail, args := limitClause(page, limit)

	rows, err := r.db().Query(query+tail, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list inquiries", Err: err}
	}
	defer rows.Close()

	list := []models.ContactQuery{}
	for rows.Next() {
		var q models.ContactQuery
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Package, &q.Message, &q.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan inquiry", Err: err}
		}
		list = append(list, q)
	}
	return list, rows.Err()
}
