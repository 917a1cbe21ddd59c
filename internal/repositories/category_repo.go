package repositories

import (
	"database/sql"
	"errors"

	"travelapi/internal/config"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// CategoryRepository wraps DB access for the categories table.
type CategoryRepository struct {
	DB *sql.DB
}

func (r CategoryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r CategoryRepository) List(page, limit int) ([]models.Category, error) {
	query := `SELECT id, name, slug, type, status FROM categories ORDER BY name ASC`
	tail, args := limitClause(page, limit)

	rows, err := r.db().Query(query+tail, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list categories", Err: err}
	}
	defer rows.Close()

	list := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &c.Status); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan category", Err: err}
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r CategoryRepository) GetByID(id int64) (models.Category, error) {
	var c models.Category
	err := r.db().QueryRow(
		`SELECT id, name, slug, type, status FROM categories WHERE id = ? LIMIT 1`, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &c.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return c, domain.NotFoundError{Resource: "category"}
	}
	if err != nil {
		return c, domain.InternalError{Msg: "failed to load category", Err: err}
	}
	return c, nil
}

func (r CategoryRepository) Create(c models.Category) (int64, error) {
	res, err := r.db().Exec(
		`INSERT INTO categories (name, slug, type, status) VALUES (?, ?, ?, ?)`,
		c.Name, c.Slug, c.Type, c.Status,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "category", Msg: "slug already exists"}
		}
		return 0, domain.InternalError{Msg: "failed to create category", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r CategoryRepository) Update(c models.Category) error {
	_, err := r.db().Exec(
		`UPDATE categories SET name=?, slug=?, type=?, status=? WHERE id=?`,
		c.Name, c.Slug, c.Type, c.Status, c.ID,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "category", Msg: "slug already exists"}
		}
		return domain.InternalError{Msg: "failed to update category", Err: err}
	}
	return nil
}

// Delete refuses to remove a category still referenced by packages or tours.
func (r CategoryRepository) Delete(id int64) error {
	var refs int
	err := r.db().QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM packages WHERE category_id = ?) +
			(SELECT COUNT(*) FROM tours WHERE category_id = ?)
	`, id, id).Scan(&refs)
	if err != nil {
		return domain.InternalError{Msg: "failed to check category references", Err: err}
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "category", Msg: "still referenced by packages or tours"}
	}

	if _, err := r.db().Exec(`DELETE FROM categories WHERE id = ?`, id); err != nil {
		// FK constraint raced past the count check.
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1451 {
			return domain.ConflictError{Resource: "category", Msg: "still referenced by packages or tours"}
		}
		return domain.InternalError{Msg: "failed to delete category", Err: err}
	}
	return nil
}

// ListPublicByType returns active categories applicable to the given kind
// (matching type or "both"), for the public filter dropdowns.
func (r CategoryRepository) ListPublicByType(kind models.ItemKind) ([]models.Category, error) {
	rows, err := r.db().Query(`
		SELECT id, name, slug, type, status
		FROM categories
		WHERE status = 'active' AND (type = ? OR type = 'both')
		ORDER BY name ASC
	`, string(kind))
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list public categories", Err: err}
	}
	defer rows.Close()

	list := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &c.Status); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan category", Err: err}
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
