package repositories

import (
	"database/sql"
	"errors"

	"travelapi/internal/config"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

// CatalogRepository serves one catalog table (packages or tours); both share
// the same columns, so the kind only picks the table name.
type CatalogRepository struct {
	Kind models.ItemKind
	DB   *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r CatalogRepository) resource() string {
	return string(r.Kind)
}

// ListAdmin returns all rows joined with the category name, newest first.
func (r CatalogRepository) ListAdmin(page, limit int) ([]models.TravelItem, error) {
	table := r.Kind.Table()
	query := `
		SELECT
			t.id, t.title, t.slug, t.category_id,
			COALESCE(t.short_description,''), COALESCE(t.description,''),
			t.price, t.duration_days, COALESCE(t.image,''), t.status,
			DATE_FORMAT(t.created_at, '%Y-%m-%d %H:%i:%s'),
			COALESCE(c.name,'')
		FROM ` + table + ` t
		LEFT JOIN categories c ON c.id = t.category_id
		ORDER BY t.created_at DESC`
	tail, args := limitClause(page, limit)

	rows, err := r.db().Query(query+tail, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list " + table, Err: err}
	}
	defer rows.Close()

	list := []models.TravelItem{}
	for rows.Next() {
		var it models.TravelItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Slug, &it.CategoryID,
			&it.ShortDescription, &it.Description,
			&it.Price, &it.DurationDays, &it.Image, &it.Status,
			&it.CreatedAt, &it.CategoryName,
		); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan " + r.resource(), Err: err}
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r CatalogRepository) GetByID(id int64) (models.TravelItem, error) {
	table := r.Kind.Table()
	var it models.TravelItem
	err := r.db().QueryRow(`
		SELECT
			id, title, slug, category_id,
			COALESCE(short_description,''), COALESCE(description,''),
			price, duration_days, COALESCE(image,''), status,
			DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM `+table+` WHERE id = ? LIMIT 1`, id,
	).Scan(
		&it.ID, &it.Title, &it.Slug, &it.CategoryID,
		&it.ShortDescription, &it.Description,
		&it.Price, &it.DurationDays, &it.Image, &it.Status,
		&it.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return it, domain.NotFoundError{Resource: r.resource()}
	}
	if err != nil {
		return it, domain.InternalError{Msg: "failed to load " + r.resource(), Err: err}
	}
	return it, nil
}

// GetBySlugActive serves the public detail page: inactive rows are invisible.
func (r CatalogRepository) GetBySlugActive(slug string) (models.TravelItem, error) {
	table := r.Kind.Table()
	var it models.TravelItem
	err := r.db().QueryRow(`
		SELECT
			t.id, t.title, t.slug, t.category_id,
			COALESCE(t.short_description,''), COALESCE(t.description,''),
			t.price, t.duration_days, COALESCE(t.image,''), t.status,
			DATE_FORMAT(t.created_at, '%Y-%m-%d %H:%i:%s'),
			COALESCE(c.name,''), COALESCE(c.slug,'')
		FROM `+table+` t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.slug = ? AND t.status = 'active'
		LIMIT 1`, slug,
	).Scan(
		&it.ID, &it.Title, &it.Slug, &it.CategoryID,
		&it.ShortDescription, &it.Description,
		&it.Price, &it.DurationDays, &it.Image, &it.Status,
		&it.CreatedAt, &it.CategoryName, &it.CategorySlug,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return it, domain.NotFoundError{Resource: r.resource()}
	}
	if err != nil {
		return it, domain.InternalError{Msg: "failed to load " + r.resource(), Err: err}
	}
	return it, nil
}

// ListPublicActive returns the active-only public projection, newest first.
// Empty tables yield an empty array, never an error.
func (r CatalogRepository) ListPublicActive() ([]models.TravelItem, error) {
	table := r.Kind.Table()
	rows, err := r.db().Query(`
		SELECT
			t.id, t.title, t.slug,
			COALESCE(t.short_description,''),
			t.price, t.duration_days, COALESCE(t.image,''),
			COALESCE(c.slug,'')
		FROM ` + table + ` t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.status = 'active'
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list " + table, Err: err}
	}
	defer rows.Close()

	list := []models.TravelItem{}
	for rows.Next() {
		var it models.TravelItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Slug,
			&it.ShortDescription,
			&it.Price, &it.DurationDays, &it.Image,
			&it.CategorySlug,
		); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan " + r.resource(), Err: err}
		}
		it.Status = models.StatusActive
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r CatalogRepository) Create(it models.TravelItem) (int64, error) {
	table := r.Kind.Table()
	res, err := r.db().Exec(`
		INSERT INTO `+table+`
		(title, slug, category_id, short_description, description, price, duration_days, image, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.Title, it.Slug, it.CategoryID,
		NullIfEmpty(it.ShortDescription), NullIfEmpty(it.Description),
		it.Price, it.DurationDays, NullIfEmpty(it.Image), it.Status,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: r.resource(), Msg: "slug already exists"}
		}
		return 0, domain.InternalError{Msg: "failed to create " + r.resource(), Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// Update overwrites the row; the image column is touched only when a new file
// was uploaded, otherwise the prior reference stays.
func (r CatalogRepository) Update(it models.TravelItem, imageChanged bool) error {
	table := r.Kind.Table()

	query := `
		UPDATE ` + table + ` SET
			title=?, slug=?, category_id=?,
			short_description=?, description=?,
			price=?, duration_days=?, status=?`
	args := []any{
		it.Title, it.Slug, it.CategoryID,
		NullIfEmpty(it.ShortDescription), NullIfEmpty(it.Description),
		it.Price, it.DurationDays, it.Status,
	}
	if imageChanged {
		query += `, image=?`
		args = append(args, NullIfEmpty(it.Image))
	}
	query += ` WHERE id=?`
	args = append(args, it.ID)

	if _, err := r.db().Exec(query, args...); err != nil {
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: r.resource(), Msg: "slug already exists"}
		}
		return domain.InternalError{Msg: "failed to update " + r.resource(), Err: err}
	}
	return nil
}

func (r CatalogRepository) Delete(id int64) error {
	table := r.Kind.Table()
	if _, err := r.db().Exec(`DELETE FROM `+table+` WHERE id = ?`, id); err != nil {
		return domain.InternalError{Msg: "failed to delete " + r.resource(), Err: err}
	}
	return nil
}
