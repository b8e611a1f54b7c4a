package cookify_test

import (
	"testing"

	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/stretchr/testify/require"
)

func TestSavedRecipesLifecycle(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)
	alice := registerAndLogin(t, client, "alice@example.com")

	servings := 4
	err := alice.SaveRecipe(t.Context(), "mealdb_52772", cookifysdk.SaveRecipeRequest{
		Title:        "Teriyaki Chicken Casserole",
		Tags:         []string{"Meat", "Casserole"},
		Ingredients:  []cookifysdk.Ingredient{{Name: "soy sauce", Measure: "3/4 cup"}},
		Instructions: []string{"Preheat oven", "Bake"},
		Servings:     &servings,
	})
	require.NoError(t, err)

	err = alice.SaveRecipe(t.Context(), "ai_1a2b3c4d", cookifysdk.SaveRecipeRequest{
		Title:         "Pantry Fried Rice",
		Source:        "AI",
		IsAIGenerated: true,
	})
	require.NoError(t, err)

	saved, err := alice.ListSavedRecipes(t.Context())
	require.NoError(t, err)
	require.Len(t, saved, 2)

	byID := map[string]cookifysdk.SavedRecipe{}
	for _, r := range saved {
		byID[r.RecipeID] = r
	}

	mealdb := byID["mealdb_52772"]
	require.Equal(t, "TheMealDB", mealdb.Source)
	require.Equal(t, []string{"Meat", "Casserole"}, mealdb.Tags)
	require.NotNil(t, mealdb.Servings)
	require.Equal(t, 4, *mealdb.Servings)

	ai := byID["ai_1a2b3c4d"]
	require.True(t, ai.IsAIGenerated)
	require.Equal(t, "AI", ai.Source)

	require.NoError(t, alice.DeleteSavedRecipe(t.Context(), "mealdb_52772"))

	err = alice.DeleteSavedRecipe(t.Context(), "mealdb_52772")
	assertAPIError(t, err, cookifysdk.ErrNotFound)

	saved, err = alice.ListSavedRecipes(t.Context())
	require.NoError(t, err)
	require.Len(t, saved, 1)
}

func TestSaveRecipe_RequiresTitle(t *testing.T) {
	baseURL, cleanup := setupCookifyContainer(t)
	defer cleanup()

	client := cookifysdk.NewClient(baseURL)
	alice := registerAndLogin(t, client, "alice@example.com")

	err := alice.SaveRecipe(t.Context(), "mealdb_1", cookifysdk.SaveRecipeRequest{})
	assertAPIError(t, err, cookifysdk.ErrInvalidRequest)
}
