package cookifysdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// CredentialsRequest is the body of /auth/register and /auth/login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the public view of a newly created user.
type RegisterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by /auth/login.
type TokenResponse struct {
	// Access is the signed bearer token.
	Access string `json:"access"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

// ProfileResponse is returned by /auth/me.
type ProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ============================================================================
// Pantry Types
// ============================================================================

type PantryItemRequest struct {
	Name       string     `json:"name"`
	Quantity   string     `json:"quantity"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

type PantryItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Quantity   string     `json:"quantity"`
	ExpiryDate *time.Time `json:"expiry_date"`
	AddedAt    time.Time  `json:"added_at"`
}

type PantryListResponse struct {
	Items []PantryItem `json:"items"`
}

// ============================================================================
// Recipe Types
// ============================================================================

type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

type RecipeSearchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// Recipe is a TheMealDB search result ranked by MatchCount.
type Recipe struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Image         string       `json:"image"`
	Cuisine       string       `json:"cuisine"`
	MealType      string       `json:"meal_type"`
	Tags          []string     `json:"tags"`
	Ingredients   []Ingredient `json:"ingredients"`
	Instructions  []string     `json:"instructions"`
	MatchCount    int          `json:"match_count"`
	TotalSearched int          `json:"total_searched"`
}

type RecipeSearchResponse struct {
	Items []Recipe `json:"items"`
}

type AIRecipeRequest struct {
	Ingredients []string          `json:"ingredients"`
	Filters     map[string]string `json:"filters,omitempty"`
}

type AIRecipe struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Image            string       `json:"image"`
	Cuisine          string       `json:"cuisine"`
	MealType         string       `json:"meal_type"`
	Tags             []string     `json:"tags"`
	Ingredients      []Ingredient `json:"ingredients"`
	Instructions     []string     `json:"instructions"`
	TimeMinutes      *int         `json:"time_minutes"`
	Servings         *int         `json:"servings"`
	Difficulty       *string      `json:"difficulty"`
	NutritionSummary *string      `json:"nutrition_summary"`
	Source           string       `json:"source"`
	IsAIGenerated    bool         `json:"is_ai_generated"`
}

type AIRecipeResponse struct {
	Items []AIRecipe `json:"items"`
}

// ============================================================================
// Saved Recipe Types
// ============================================================================

// SaveRecipeRequest carries the full recipe so it can be shown later
// without another upstream call. Source defaults to "TheMealDB".
type SaveRecipeRequest struct {
	Title            string       `json:"title"`
	Image            *string      `json:"image,omitempty"`
	Source           string       `json:"source,omitempty"`
	Cuisine          *string      `json:"cuisine,omitempty"`
	MealType         *string      `json:"meal_type,omitempty"`
	Tags             []string     `json:"tags,omitempty"`
	Ingredients      []Ingredient `json:"ingredients,omitempty"`
	Instructions     []string     `json:"instructions,omitempty"`
	TimeMinutes      *int         `json:"time_minutes,omitempty"`
	Servings         *int         `json:"servings,omitempty"`
	Difficulty       *string      `json:"difficulty,omitempty"`
	NutritionSummary *string      `json:"nutrition_summary,omitempty"`
	IsAIGenerated    bool         `json:"is_ai_generated,omitempty"`
}

type SavedRecipe struct {
	ID               string       `json:"id"`
	RecipeID         string       `json:"recipe_id"`
	Title            string       `json:"title"`
	Image            *string      `json:"image"`
	Source           string       `json:"source"`
	CreatedAt        time.Time    `json:"created_at"`
	Cuisine          *string      `json:"cuisine"`
	MealType         *string      `json:"meal_type"`
	Tags             []string     `json:"tags"`
	Ingredients      []Ingredient `json:"ingredients"`
	Instructions     []string     `json:"instructions"`
	TimeMinutes      *int         `json:"time_minutes"`
	Servings         *int         `json:"servings"`
	Difficulty       *string      `json:"difficulty"`
	NutritionSummary *string      `json:"nutrition_summary"`
	IsAIGenerated    bool         `json:"is_ai_generated"`
}

type SavedRecipeListResponse struct {
	Items []SavedRecipe `json:"items"`
}

// ============================================================================
// Common Types
// ============================================================================

// OKResponse acknowledges a mutation.
type OKResponse struct {
	OK bool `json:"ok"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	OK  bool   `json:"ok"`
	App string `json:"app"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /health, /livez and /readyz. Checks is only
// set by /readyz.
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Uptime    string        `json:"uptime,omitempty"`
	Version   string        `json:"version,omitempty"`
	Checks    *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	AI       string `json:"ai"`
}

// StatsResponse holds the public counters shown on the landing page.
type StatsResponse struct {
	Users        int64 `json:"users"`
	SavedRecipes int64 `json:"saved_recipes"`
	PantryItems  int64 `json:"pantry_items"`
}
