package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens dsn with the modernc driver. Use ":memory:" for tests.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One writer at a time; this also keeps ":memory:" databases on a
	// single connection so every query sees the same schema.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
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

	var se *moderncsqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errors.Join(store.ErrAlreadyExists, err)
		}
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return errors.Join(store.ErrAlreadyExists, err)
	}
	return err
}
