package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Pantry() Pantry
	SavedRecipes() SavedRecipes

	// ApplyMigrations brings the schema up to date using the migrations
	// embedded in the driver.
	ApplyMigrations(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the user directory.
type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up by the normalised email, used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID). A
	// duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and stamps updated_at with now.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string, now time.Time) error

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

type Pantry interface {
	// ListPantryItems returns the user's items, soonest expiry first with
	// undated items leading, ties broken by name.
	ListPantryItems(ctx context.Context, userID string) ([]domain.PantryItem, error)

	// UpsertPantryItem inserts or updates by (user_id, name) and returns the
	// stored row. Updates keep the original id and created_at.
	UpsertPantryItem(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error)

	// DeletePantryItem removes by (user_id, name), ErrNotFound when absent.
	DeletePantryItem(ctx context.Context, userID, name string) error

	CountPantryItems(ctx context.Context) (int64, error)
}

type SavedRecipes interface {
	// ListSavedRecipes returns the user's saved recipes, newest first.
	ListSavedRecipes(ctx context.Context, userID string) ([]domain.SavedRecipe, error)

	// UpsertSavedRecipe inserts or replaces by (user_id, recipe_id).
	UpsertSavedRecipe(ctx context.Context, r domain.SavedRecipe) error

	// DeleteSavedRecipe removes by (user_id, recipe_id), ErrNotFound when absent.
	DeleteSavedRecipe(ctx context.Context, userID, recipeID string) error

	CountSavedRecipes(ctx context.Context) (int64, error)
}
