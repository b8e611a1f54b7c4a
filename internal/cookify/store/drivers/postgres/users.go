package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/dbutil"
)

const (
	userColumns = `id, email, password_hash, created_at, updated_at`

	getUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	createUserSQL     = `INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	updateUserHashSQL = `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`
	countUsersSQL     = `SELECT COUNT(*) FROM users`
)

type usersRepo struct {
	db *sql.DB
}

func scanUser(row dbutil.RowScanner) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, dbutil.MapNotFound(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByIDSQL, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByEmailSQL, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, createUserSQL,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt.UTC(), u.UpdatedAt.UTC())
	return mapWriteError(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, updateUserHashSQL, newHash, now.UTC(), userID)
	if err != nil {
		return err
	}
	return dbutil.MapRowsAffected(res)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countUsersSQL).Scan(&n)
	return n, err
}
