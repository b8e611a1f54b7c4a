package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
	"github.com/google/uuid"
)

// AIRecipeCount is how many recipes the model is asked for.
const AIRecipeCount = 3

// Generator produces raw model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AIRecipeService struct {
	// Generator is nil when no model is configured.
	Generator Generator

	// NewID overrides recipe id generation in tests.
	NewID func() string
}

// Generate asks the model for recipes built around ingredients.
func (s *AIRecipeService) Generate(ctx context.Context, ingredients []string, filters domain.AIRecipeFilters) ([]domain.AIRecipe, error) {
	log := slogx.FromContext(ctx)

	if s.Generator == nil {
		return nil, fmt.Errorf("%w: ai service not configured", ErrServiceUnavailable)
	}

	ingredients = NormalizeIngredients(ingredients)
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidInput)
	}

	text, err := s.Generator.Generate(ctx, BuildAIPrompt(ingredients, filters))
	if err != nil {
		log.Warn("ai generation failed", slog.Any("error", err))
		return nil, upstreamError(err)
	}

	recipes, err := s.parse(text)
	if err != nil {
		log.Warn("ai response could not be parsed", slog.Int("length", len(text)), slog.Any("error", err))
		return nil, err
	}

	log.Debug("ai recipes generated", slog.Int("count", len(recipes)))
	return recipes, nil
}

// BuildAIPrompt renders the instruction sent to the model.
func BuildAIPrompt(ingredients []string, filters domain.AIRecipeFilters) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d creative and delicious recipes using these ingredients: %s\n\n",
		AIRecipeCount, strings.Join(ingredients, ", "))

	b.WriteString(`Return the response as a JSON array with this exact structure:
[
  {
    "title": "Recipe Name",
    "cuisine": "Cuisine Type",
    "meal_type": "Meal Category",
    "tags": ["tag1", "tag2"],
    "ingredients": [
      {"name": "ingredient name", "measure": "quantity and unit"}
    ],
    "instructions": ["Step 1 instruction", "Step 2 instruction"],
    "time_minutes": 30,
    "servings": 4,
    "difficulty": "Easy/Medium/Hard",
    "nutrition_summary": "Brief nutrition info"
  }
]

Make sure to:
- Use the provided ingredients as the main components
- Add common pantry ingredients as needed
- Include realistic cooking times and serving sizes
- Provide clear, step-by-step instructions
- Return ONLY the JSON array, no other text
`)

	var prefs []string
	for _, k := range slices.Sorted(maps.Keys(filters)) {
		k2, v := strings.TrimSpace(k), strings.TrimSpace(filters[k])
		if k2 == "" || v == "" {
			continue
		}
		prefs = append(prefs, fmt.Sprintf("- %s: %s", k2, v))
	}
	if len(prefs) > 0 {
		b.WriteString("\nPreferences:\n")
		b.WriteString(strings.Join(prefs, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

// aiRecipeJSON is the loosely typed shape the model returns.
type aiRecipeJSON struct {
	Title            *string             `json:"title"`
	Cuisine          *string             `json:"cuisine"`
	MealType         *string             `json:"meal_type"`
	Tags             []string            `json:"tags"`
	Ingredients      []domain.Ingredient `json:"ingredients"`
	Instructions     []string            `json:"instructions"`
	TimeMinutes      flexInt             `json:"time_minutes"`
	Servings         flexInt             `json:"servings"`
	Difficulty       string              `json:"difficulty"`
	NutritionSummary string              `json:"nutrition_summary"`
}

// flexInt accepts 30, 30.0, "30" and "30 minutes"; anything else is unset.
type flexInt struct {
	v *int
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	f.v = nil

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		i := int(n)
		f.v = &i
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(s)
	}
	if i, err := strconv.Atoi(s[:end]); err == nil {
		f.v = &i
	}
	return nil
}

var errNoJSON = errors.New("no json array in response")

// extractJSON returns text itself when it is valid JSON, else the body of the
// first ```json fenced block.
func extractJSON(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if json.Valid([]byte(text)) {
		return []byte(text), nil
	}

	const fence = "```json"
	start := strings.Index(text, fence)
	if start == -1 {
		return nil, errNoJSON
	}
	rest := text[start+len(fence):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return nil, errNoJSON
	}

	body := bytes.TrimSpace([]byte(rest[:end]))
	if !json.Valid(body) {
		return nil, errNoJSON
	}
	return body, nil
}

func (s *AIRecipeService) parse(text string) ([]domain.AIRecipe, error) {
	body, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadAIResponse, err)
	}

	var raw []aiRecipeJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadAIResponse, err)
	}

	newID := s.NewID
	if newID == nil {
		newID = newAIRecipeID
	}

	out := make([]domain.AIRecipe, 0, len(raw))
	for _, r := range raw {
		rec := domain.AIRecipe{
			Recipe: domain.Recipe{
				ID:           newID(),
				Title:        valueOr(r.Title, "AI Generated Recipe"),
				Cuisine:      valueOr(r.Cuisine, "International"),
				MealType:     valueOr(r.MealType, "Main Course"),
				Tags:         nonNil(r.Tags),
				Ingredients:  nonNil(r.Ingredients),
				Instructions: nonNil(r.Instructions),
			},
			TimeMinutes:      r.TimeMinutes.v,
			Servings:         r.Servings.v,
			Difficulty:       r.Difficulty,
			NutritionSummary: r.NutritionSummary,
			Source:           domain.SourceAI,
			IsAIGenerated:    true,
		}
		out = append(out, rec)
	}
	return out, nil
}

// newAIRecipeID returns "ai_" followed by 8 hex characters.
func newAIRecipeID() string {
	return "ai_" + uuid.NewString()[:8]
}

func valueOr(p *string, def string) string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return def
	}
	return strings.TrimSpace(*p)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
