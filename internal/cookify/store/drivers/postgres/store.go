// Package postgres is the PostgreSQL driver for the cookify store, built on
// pgx's database/sql adapter with goose migrations.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

// NewStore opens dsn (a postgres:// URL or key=value string) with pgx.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return New(db), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users               { return &usersRepo{db: s.db} }
func (s *Store) Pantry() store.Pantry             { return &pantryRepo{db: s.db} }
func (s *Store) SavedRecipes() store.SavedRecipes { return &savedRecipesRepo{db: s.db} }

// mapWriteError turns unique violations into store.ErrAlreadyExists.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(store.ErrAlreadyExists, err)
	}
	return err
}
