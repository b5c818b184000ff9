package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
)

// menuColumns is the canonical select list. Prices travel as text so they
// round-trip exactly into decimals.
const menuColumns = `id, name, description, category, price::text, ingredients, is_available, preparation_time, image_url, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (*model.MenuItem, error) {
	var (
		m        model.MenuItem
		category string
		price    string
	)
	err := row.Scan(&m.ID, &m.Name, &m.Description, &category, &price, &m.Ingredients,
		&m.IsAvailable, &m.PreparationTime, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Category = model.MenuCategory(category)
	if m.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	return &m, nil
}

func (r *menuRepository) collectMenuItems(rows pgx.Rows) ([]model.MenuItem, error) {
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	b := &condBuilder{}
	if filter.Category != nil {
		b.add("category = $%d", string(*filter.Category))
	}
	if filter.Available != nil {
		b.add("is_available = $%d", *filter.Available)
	}
	if filter.MinPrice != nil {
		b.add("price >= $%d", filter.MinPrice.String())
	}
	if filter.MaxPrice != nil {
		b.add("price <= $%d", filter.MaxPrice.String())
	}

	query := `SELECT ` + menuColumns + ` FROM menu_items` + b.clause() + ` ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, b.arguments()...)
	if err != nil {
		return nil, err
	}
	return r.collectMenuItems(rows)
}

func (r *menuRepository) Search(ctx context.Context, term string) ([]model.MenuItem, error) {
	const query = `SELECT ` + menuColumns + ` FROM menu_items
                   WHERE name ILIKE $1 OR array_to_string(ingredients, ' ') ILIKE $1
                   ORDER BY name ASC`
	rows, err := r.storage.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	return r.collectMenuItems(rows)
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT ` + menuColumns + ` FROM menu_items WHERE id=$1`
	m, err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	const query = `INSERT INTO menu_items (name, description, category, price, ingredients, is_available, preparation_time, image_url)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at, updated_at`
	ingredients := item.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return r.storage.pool.QueryRow(ctx, query,
		item.Name, item.Description, string(item.Category), item.Price.String(),
		ingredients, item.IsAvailable, item.PreparationTime, item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) Update(ctx context.Context, id int64, patch model.MenuItemPatch) (*model.MenuItem, error) {
	const query = `UPDATE menu_items SET
                       name = COALESCE($2, name),
                       description = COALESCE($3, description),
                       category = COALESCE($4, category),
                       price = COALESCE($5::numeric, price),
                       ingredients = COALESCE($6, ingredients),
                       is_available = COALESCE($7, is_available),
                       preparation_time = COALESCE($8, preparation_time),
                       image_url = COALESCE($9, image_url),
                       updated_at = NOW()
                   WHERE id = $1
                   RETURNING ` + menuColumns

	var category *string
	if patch.Category != nil {
		category = strPtr(string(*patch.Category))
	}
	var price *string
	if patch.Price != nil {
		price = strPtr(patch.Price.String())
	}

	m, err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, id,
		patch.Name, patch.Description, category, price,
		patch.Ingredients, patch.IsAvailable, patch.PreparationTime, patch.ImageURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) ToggleAvailability(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `UPDATE menu_items SET is_available = NOT is_available, updated_at = NOW()
                   WHERE id = $1
                   RETURNING ` + menuColumns
	m, err := scanMenuItem(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func strPtr(s string) *string { return &s }
