package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// MaxIngredients is the number of strIngredientN/strMeasureN pairs a meal carries.
const MaxIngredients = 20

// MealSummary is one entry of a filter.php result.
type MealSummary struct {
	ID    string `json:"idMeal"`
	Name  string `json:"strMeal"`
	Thumb string `json:"strMealThumb"`
}

// Meal is a full lookup.php record. TheMealDB returns a flat object with
// numbered ingredient keys and null for missing values, so it is kept as a map.
type Meal map[string]any

// Field returns the trimmed string value of key, or "" when it is null,
// absent or not a string.
func (m Meal) Field(key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func (m Meal) ID() string           { return m.Field("idMeal") }
func (m Meal) Name() string         { return m.Field("strMeal") }
func (m Meal) Thumb() string        { return m.Field("strMealThumb") }
func (m Meal) Area() string         { return m.Field("strArea") }
func (m Meal) Category() string     { return m.Field("strCategory") }
func (m Meal) Tags() string         { return m.Field("strTags") }
func (m Meal) Instructions() string { return m.Field("strInstructions") }

// Ingredient returns the n-th (1 based) ingredient and its measure.
func (m Meal) Ingredient(n int) (name, measure string) {
	return m.Field(fmt.Sprintf("strIngredient%d", n)), m.Field(fmt.Sprintf("strMeasure%d", n))
}

// mealsEnvelope matches {"meals": [...]} where meals may also be null or,
// for some misses, a plain string.
type mealsEnvelope[T any] struct {
	Meals json.RawMessage `json:"meals"`
}

func (e mealsEnvelope[T]) items() ([]T, error) {
	raw := strings.TrimSpace(string(e.Meals))
	if raw == "" || raw == "null" || strings.HasPrefix(raw, `"`) {
		return nil, nil
	}

	var out []T
	if err := json.Unmarshal(e.Meals, &out); err != nil {
		return nil, fmt.Errorf("%w: decode meals: %w", ErrUpstream, err)
	}
	return out, nil
}

// FilterByIngredient lists the meals that use ingredient. No match yields an
// empty slice and a nil error.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]MealSummary, error) {
	var env mealsEnvelope[MealSummary]
	if err := c.getJSON(ctx, "/filter.php", url.Values{"i": {ingredient}}, &env); err != nil {
		return nil, err
	}
	return env.items()
}

// Lookup fetches the full record for id. found is false when TheMealDB has
// no such meal.
func (c *Client) Lookup(ctx context.Context, id string) (meal Meal, found bool, err error) {
	var env mealsEnvelope[Meal]
	if err := c.getJSON(ctx, "/lookup.php", url.Values{"i": {id}}, &env); err != nil {
		return nil, false, err
	}

	meals, err := env.items()
	if err != nil {
		return nil, false, err
	}
	if len(meals) == 0 || meals[0] == nil {
		return nil, false, nil
	}
	return meals[0], true, nil
}
