package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/dbutil"
)

const (
	pantryColumns = `id, user_id, name, quantity, expiry_date, added_at, created_at`

	listPantryItemsSQL = `SELECT ` + pantryColumns + ` FROM pantry_items
WHERE user_id = $1
ORDER BY expiry_date ASC NULLS FIRST, name ASC`

	upsertPantryItemSQL = `INSERT INTO pantry_items (` + pantryColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id, name) DO UPDATE SET
    quantity    = EXCLUDED.quantity,
    expiry_date = EXCLUDED.expiry_date,
    added_at    = EXCLUDED.added_at
RETURNING ` + pantryColumns

	deletePantryItemSQL = `DELETE FROM pantry_items WHERE user_id = $1 AND name = $2`
	countPantryItemsSQL = `SELECT COUNT(*) FROM pantry_items`
)

type pantryRepo struct {
	db *sql.DB
}

func scanPantryItem(row dbutil.RowScanner) (domain.PantryItem, error) {
	var (
		it     domain.PantryItem
		expiry sql.NullTime
	)
	if err := row.Scan(&it.ID, &it.UserID, &it.Name, &it.Quantity, &expiry, &it.AddedAt, &it.CreatedAt); err != nil {
		return domain.PantryItem{}, dbutil.MapNotFound(err)
	}
	it.ExpiryDate = dbutil.NullTimePtr(expiry)
	it.AddedAt = it.AddedAt.UTC()
	it.CreatedAt = it.CreatedAt.UTC()
	return it, nil
}

func (r *pantryRepo) ListPantryItems(ctx context.Context, userID string) ([]domain.PantryItem, error) {
	rows, err := r.db.QueryContext(ctx, listPantryItemsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.PantryItem{}
	for rows.Next() {
		it, err := scanPantryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *pantryRepo) UpsertPantryItem(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error) {
	row := r.db.QueryRowContext(ctx, upsertPantryItemSQL,
		item.ID,
		item.UserID,
		item.Name,
		item.Quantity,
		dbutil.OptionalTime(item.ExpiryDate),
		item.AddedAt.UTC(),
		item.CreatedAt.UTC(),
	)
	out, err := scanPantryItem(row)
	if err != nil {
		return domain.PantryItem{}, mapWriteError(err)
	}
	return out, nil
}

func (r *pantryRepo) DeletePantryItem(ctx context.Context, userID, name string) error {
	res, err := r.db.ExecContext(ctx, deletePantryItemSQL, userID, name)
	if err != nil {
		return err
	}
	return dbutil.MapRowsAffected(res)
}

func (r *pantryRepo) CountPantryItems(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countPantryItemsSQL).Scan(&n)
	return n, err
}
