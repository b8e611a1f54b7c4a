package http

import (
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
)

func toPantryItem(it domain.PantryItem) cookifysdk.PantryItem {
	return cookifysdk.PantryItem{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		ExpiryDate: it.ExpiryDate,
		AddedAt:    it.AddedAt,
	}
}

func toIngredients(in []domain.Ingredient) []cookifysdk.Ingredient {
	out := make([]cookifysdk.Ingredient, len(in))
	for i, ing := range in {
		out[i] = cookifysdk.Ingredient{Name: ing.Name, Measure: ing.Measure}
	}
	return out
}

func fromIngredients(in []cookifysdk.Ingredient) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(in))
	for _, ing := range in {
		out = append(out, domain.Ingredient{Name: ing.Name, Measure: ing.Measure})
	}
	return out
}

func toRecipe(r domain.Recipe) cookifysdk.Recipe {
	return cookifysdk.Recipe{
		ID:            r.ID,
		Title:         r.Title,
		Image:         r.Image,
		Cuisine:       r.Cuisine,
		MealType:      r.MealType,
		Tags:          nonNilStrings(r.Tags),
		Ingredients:   toIngredients(r.Ingredients),
		Instructions:  nonNilStrings(r.Instructions),
		MatchCount:    r.MatchCount,
		TotalSearched: r.TotalSearched,
	}
}

func toAIRecipe(r domain.AIRecipe) cookifysdk.AIRecipe {
	return cookifysdk.AIRecipe{
		ID:               r.ID,
		Title:            r.Title,
		Image:            r.Image,
		Cuisine:          r.Cuisine,
		MealType:         r.MealType,
		Tags:             nonNilStrings(r.Tags),
		Ingredients:      toIngredients(r.Ingredients),
		Instructions:     nonNilStrings(r.Instructions),
		TimeMinutes:      r.TimeMinutes,
		Servings:         r.Servings,
		Difficulty:       optional(r.Difficulty),
		NutritionSummary: optional(r.NutritionSummary),
		Source:           r.Source,
		IsAIGenerated:    r.IsAIGenerated,
	}
}

func toSavedRecipe(r domain.SavedRecipe) cookifysdk.SavedRecipe {
	return cookifysdk.SavedRecipe{
		ID:               r.ID,
		RecipeID:         r.RecipeID,
		Title:            r.Title,
		Image:            optional(r.Image),
		Source:           r.Source,
		CreatedAt:        r.CreatedAt.UTC().Truncate(time.Second),
		Cuisine:          optional(r.Cuisine),
		MealType:         optional(r.MealType),
		Tags:             nonNilStrings(r.Tags),
		Ingredients:      toIngredients(r.Ingredients),
		Instructions:     nonNilStrings(r.Instructions),
		TimeMinutes:      r.TimeMinutes,
		Servings:         r.Servings,
		Difficulty:       optional(r.Difficulty),
		NutritionSummary: optional(r.NutritionSummary),
		IsAIGenerated:    r.IsAIGenerated,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
