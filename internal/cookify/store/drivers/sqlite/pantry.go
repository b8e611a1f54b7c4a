package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/dbutil"
)

const (
	pantryColumns = `id, user_id, name, quantity, expiry_date, added_at, created_at`

	listPantryItemsSQL = `SELECT ` + pantryColumns + ` FROM pantry_items
WHERE user_id = ?
ORDER BY expiry_date IS NOT NULL, expiry_date ASC, name ASC`

	getPantryItemSQL = `SELECT ` + pantryColumns + ` FROM pantry_items WHERE user_id = ? AND name = ?`

	upsertPantryItemSQL = `INSERT INTO pantry_items (` + pantryColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, name) DO UPDATE SET
    quantity    = excluded.quantity,
    expiry_date = excluded.expiry_date,
    added_at    = excluded.added_at`

	deletePantryItemSQL = `DELETE FROM pantry_items WHERE user_id = ? AND name = ?`
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
	var out domain.PantryItem
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, upsertPantryItemSQL,
			item.ID,
			item.UserID,
			item.Name,
			item.Quantity,
			dbutil.OptionalTime(item.ExpiryDate),
			item.AddedAt.UTC(),
			item.CreatedAt.UTC(),
		)
		if err != nil {
			return mapWriteError(err)
		}

		out, err = scanPantryItem(tx.QueryRowContext(ctx, getPantryItemSQL, item.UserID, item.Name))
		return err
	})
	return out, err
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
