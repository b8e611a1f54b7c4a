package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// ApplyMigrations sets up goose with the embedded migrations and runs them
// against the store's connection.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, s.db, ".")
}
