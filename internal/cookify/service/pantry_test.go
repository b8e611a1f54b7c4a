package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, env *testEnv, email string) domain.User {
	t.Helper()
	u, err := env.accounts.Register(context.Background(), email, "s3cret")
	require.NoError(t, err)
	return u
}

func TestPantry_UpsertAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")

	soon := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "rice", Quantity: "1kg"})
	require.NoError(t, err)
	_, err = env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "milk", Quantity: "1L", ExpiryDate: &later})
	require.NoError(t, err)
	item, err := env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: " eggs ", Quantity: "12", ExpiryDate: &soon})
	require.NoError(t, err)
	require.Equal(t, "eggs", item.Name)
	require.Equal(t, alice.ID, item.UserID)

	items, err := env.pantry.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	// Items without an expiry sort first.
	require.Equal(t, "rice", items[0].Name)
	require.Nil(t, items[0].ExpiryDate)
	require.Equal(t, "eggs", items[1].Name)
	require.Equal(t, "milk", items[2].Name)
}

func TestPantry_UpsertReplacesByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")

	first, err := env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "eggs", Quantity: "6"})
	require.NoError(t, err)

	env.advance(time.Hour)
	second, err := env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "eggs", Quantity: "12"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "12", second.Quantity)

	items, err := env.pantry.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestPantry_Validation(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice@example.com")

	_, err := env.pantry.Upsert(context.Background(), alice.ID, service.PantryInput{Name: "   "})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPantry_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")
	bob := registerUser(t, env, "bob@example.com")

	_, err := env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "eggs"})
	require.NoError(t, err)

	// Users cannot touch each other's pantry.
	require.ErrorIs(t, env.pantry.Delete(ctx, bob.ID, "eggs"), service.ErrNotFound)

	require.NoError(t, env.pantry.Delete(ctx, alice.ID, "eggs"))
	require.ErrorIs(t, env.pantry.Delete(ctx, alice.ID, "eggs"), service.ErrNotFound)
}
