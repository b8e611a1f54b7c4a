package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/stretchr/testify/require"
)

func TestSavedRecipes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")

	err := env.saved.Save(ctx, alice.ID, "mealdb_52772", service.SaveRecipeInput{
		Title:        "Teriyaki Chicken",
		Ingredients:  []domain.Ingredient{{Name: "soy sauce", Measure: "3/4 cup"}},
		Instructions: []string{"Preheat oven"},
	})
	require.NoError(t, err)

	env.advance(time.Minute)
	thirty := 30
	err = env.saved.Save(ctx, alice.ID, "ai_1a2b3c4d", service.SaveRecipeInput{
		Title:         "Egg Fried Rice",
		Source:        domain.SourceAI,
		TimeMinutes:   &thirty,
		IsAIGenerated: true,
	})
	require.NoError(t, err)

	list, err := env.saved.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "ai_1a2b3c4d", list[0].RecipeID)
	require.True(t, list[0].IsAIGenerated)
	require.Equal(t, 30, *list[0].TimeMinutes)
	require.Equal(t, "mealdb_52772", list[1].RecipeID)
	require.Equal(t, domain.SourceMealDB, list[1].Source)
	require.Equal(t, []domain.Ingredient{{Name: "soy sauce", Measure: "3/4 cup"}}, list[1].Ingredients)
}

func TestSavedRecipes_SaveTwiceReplaces(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")

	require.NoError(t, env.saved.Save(ctx, alice.ID, "mealdb_1", service.SaveRecipeInput{Title: "Old"}))
	require.NoError(t, env.saved.Save(ctx, alice.ID, "mealdb_1", service.SaveRecipeInput{Title: "New"}))

	list, err := env.saved.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "New", list[0].Title)
}

func TestSavedRecipes_Validation(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice@example.com")

	require.ErrorIs(t, env.saved.Save(context.Background(), alice.ID, "mealdb_1", service.SaveRecipeInput{}), service.ErrInvalidInput)
	require.ErrorIs(t, env.saved.Save(context.Background(), alice.ID, " ", service.SaveRecipeInput{Title: "x"}), service.ErrInvalidInput)
}

func TestSavedRecipes_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")

	require.NoError(t, env.saved.Save(ctx, alice.ID, "mealdb_1", service.SaveRecipeInput{Title: "x"}))
	require.NoError(t, env.saved.Delete(ctx, alice.ID, "mealdb_1"))
	require.ErrorIs(t, env.saved.Delete(ctx, alice.ID, "mealdb_1"), service.ErrNotFound)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice@example.com")
	registerUser(t, env, "bob@example.com")

	require.NoError(t, env.saved.Save(ctx, alice.ID, "mealdb_1", service.SaveRecipeInput{Title: "x"}))
	_, err := env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "eggs"})
	require.NoError(t, err)
	_, err = env.pantry.Upsert(ctx, alice.ID, service.PantryInput{Name: "milk"})
	require.NoError(t, err)

	st, err := env.stats.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, service.Stats{Users: 2, SavedRecipes: 1, PantryItems: 2}, st)
}
