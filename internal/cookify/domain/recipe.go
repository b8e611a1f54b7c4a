package domain

import "time"

// Default recipe source for saved recipes that do not name one.
const (
	SourceMealDB = "TheMealDB"
	SourceAI     = "AI"
)

type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Recipe is a search result assembled from the upstream recipe database.
type Recipe struct {
	ID            string
	Title         string
	Image         string
	Cuisine       string
	MealType      string
	Tags          []string
	Ingredients   []Ingredient
	Instructions  []string
	MatchCount    int
	TotalSearched int
}

// AIRecipe is a recipe produced by the generative model.
type AIRecipe struct {
	Recipe

	TimeMinutes      *int
	Servings         *int
	Difficulty       string
	NutritionSummary string
	Source           string
	IsAIGenerated    bool
}

// AIRecipeFilters are free-form preferences ("cuisine": "thai") passed on
// to the model as-is.
type AIRecipeFilters map[string]string

// SavedRecipe is a recipe bookmarked by a user, unique per (UserID, RecipeID).
type SavedRecipe struct {
	ID           string
	UserID       string
	RecipeID     string
	Title        string
	Image        string
	Source       string
	Cuisine      string
	MealType     string
	Tags         []string
	Ingredients  []Ingredient
	Instructions []string

	TimeMinutes      *int
	Servings         *int
	Difficulty       string
	NutritionSummary string
	IsAIGenerated    bool

	CreatedAt time.Time
}
