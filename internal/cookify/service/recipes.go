package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/pkg/mealdb"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// DefaultLookupConcurrency bounds parallel lookup.php calls per search.
const DefaultLookupConcurrency = 4

// RecipeSource is the subset of the TheMealDB client used by search.
type RecipeSource interface {
	FilterByIngredient(ctx context.Context, ingredient string) ([]mealdb.MealSummary, error)
	Lookup(ctx context.Context, id string) (mealdb.Meal, bool, error)
}

type RecipeService struct {
	Source      RecipeSource
	Concurrency int
}

// NormalizeIngredients trims and lower-cases ingredients and drops empties.
func NormalizeIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Search finds meals using any of the ingredients, ranked by how many of the
// searched ingredients each one contains.
func (s *RecipeService) Search(ctx context.Context, ingredients []string) ([]domain.Recipe, error) {
	log := slogx.FromContext(ctx)

	ingredients = NormalizeIngredients(ingredients)
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidInput)
	}

	// 1. One filter call per ingredient, keeping first-seen order of ids.
	var ids []string
	seen := make(map[string]struct{})
	for _, ing := range ingredients {
		meals, err := s.Source.FilterByIngredient(ctx, ing)
		if err != nil {
			log.Warn("recipe filter failed", slog.String("ingredient", ing), slog.Any("error", err))
			return nil, upstreamError(err)
		}
		for _, m := range meals {
			if m.ID == "" {
				continue
			}
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			ids = append(ids, m.ID)
		}
	}
	if len(ids) == 0 {
		return []domain.Recipe{}, nil
	}

	// 2. Fetch details concurrently; results keep the id order.
	limit := s.Concurrency
	if limit <= 0 {
		limit = DefaultLookupConcurrency
	}

	details := make([]*domain.Recipe, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range ids {
		g.Go(func() error {
			meal, found, err := s.Source.Lookup(gctx, id)
			if err != nil {
				return err
			}
			if !found {
				return nil
			}
			r := MapMeal(meal)
			details[i] = &r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("recipe lookup failed", slog.Any("error", err))
		return nil, upstreamError(err)
	}

	// 3. Score and rank.
	recipes := make([]domain.Recipe, 0, len(details))
	for _, r := range details {
		if r == nil {
			continue
		}
		r.MatchCount = countMatches(r.Ingredients, ingredients)
		r.TotalSearched = len(ingredients)
		recipes = append(recipes, *r)
	}
	slices.SortStableFunc(recipes, func(a, b domain.Recipe) int {
		return b.MatchCount - a.MatchCount
	})

	log.Debug("recipe search complete", slog.Int("ingredients", len(ingredients)), slog.Int("results", len(recipes)))
	return recipes, nil
}

// MapMeal converts a TheMealDB record into a Recipe.
func MapMeal(m mealdb.Meal) domain.Recipe {
	r := domain.Recipe{
		ID:           "mealdb_" + m.ID(),
		Title:        orDefault(m.Name(), "Unknown Recipe"),
		Image:        m.Thumb(),
		Cuisine:      orDefault(m.Area(), "Unknown"),
		MealType:     orDefault(m.Category(), "Unknown"),
		Tags:         splitNonEmpty(m.Tags(), ","),
		Ingredients:  []domain.Ingredient{},
		Instructions: splitNonEmpty(m.Instructions(), "."),
	}

	for n := 1; n <= mealdb.MaxIngredients; n++ {
		name, measure := m.Ingredient(n)
		if name == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, domain.Ingredient{Name: name, Measure: measure})
	}

	return r
}

func countMatches(have []domain.Ingredient, searched []string) int {
	names := make([]string, len(have))
	for i, ing := range have {
		names[i] = strings.ToLower(ing.Name)
	}
	joined := strings.Join(names, " ")

	n := 0
	for _, s := range searched {
		if strings.Contains(joined, s) {
			n++
		}
	}
	return n
}

func splitNonEmpty(s, sep string) []string {
	out := []string{}
	for part := range strings.SplitSeq(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func upstreamError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
