package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/pkg/idx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

// SaveRecipeInput carries the full recipe so saved entries render without
// another upstream call.
type SaveRecipeInput struct {
	Title        string
	Image        string
	Source       string
	Cuisine      string
	MealType     string
	Tags         []string
	Ingredients  []domain.Ingredient
	Instructions []string

	TimeMinutes      *int
	Servings         *int
	Difficulty       string
	NutritionSummary string
	IsAIGenerated    bool
}

type SavedRecipeService struct {
	Store store.Store
	Clock Clock
}

// Save bookmarks recipeID for the user, replacing an earlier save of the
// same recipe.
func (s *SavedRecipeService) Save(ctx context.Context, userID, recipeID string, in SaveRecipeInput) error {
	log := slogx.FromContext(ctx)

	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return fmt.Errorf("%w: recipe id is required", ErrInvalidInput)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = domain.SourceMealDB
	}

	now := s.Clock.Now()
	err := s.Store.SavedRecipes().UpsertSavedRecipe(ctx, domain.SavedRecipe{
		ID:               idx.NewAt(now).String(),
		UserID:           userID,
		RecipeID:         recipeID,
		Title:            title,
		Image:            in.Image,
		Source:           source,
		Cuisine:          in.Cuisine,
		MealType:         in.MealType,
		Tags:             in.Tags,
		Ingredients:      in.Ingredients,
		Instructions:     in.Instructions,
		TimeMinutes:      in.TimeMinutes,
		Servings:         in.Servings,
		Difficulty:       in.Difficulty,
		NutritionSummary: in.NutritionSummary,
		IsAIGenerated:    in.IsAIGenerated,
		CreatedAt:        now,
	})
	if err != nil {
		log.Error("failed to save recipe", slog.String("recipe_id", recipeID), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	log.Info("recipe saved", slog.String("recipe_id", recipeID))
	return nil
}

// List returns the user's saved recipes, newest first.
func (s *SavedRecipeService) List(ctx context.Context, userID string) ([]domain.SavedRecipe, error) {
	list, err := s.Store.SavedRecipes().ListSavedRecipes(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list saved recipes", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return list, nil
}

// Delete removes a saved recipe. ErrNotFound when it was never saved.
func (s *SavedRecipeService) Delete(ctx context.Context, userID, recipeID string) error {
	if err := s.Store.SavedRecipes().DeleteSavedRecipe(ctx, userID, strings.TrimSpace(recipeID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		slogx.FromContext(ctx).Error("failed to delete saved recipe", slog.String("recipe_id", recipeID), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return nil
}
