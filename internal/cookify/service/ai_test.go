package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

const aiResponse = `[
  {
    "title": "Egg Fried Rice",
    "cuisine": "Chinese",
    "meal_type": "Dinner",
    "tags": ["quick"],
    "ingredients": [{"name": "rice", "measure": "2 cups"}, {"name": "egg", "measure": "2"}],
    "instructions": ["Cook rice", "Fry with egg"],
    "time_minutes": 20,
    "servings": "4 people",
    "difficulty": "Easy",
    "nutrition_summary": "Carb heavy"
  },
  {"ingredients": [{"name": "egg"}]}
]`

func TestAIRecipes_Generate(t *testing.T) {
	gen := &fakeGenerator{text: aiResponse}
	svc := &service.AIRecipeService{Generator: gen}

	recipes, err := svc.Generate(context.Background(), []string{"Rice", " egg "}, domain.AIRecipeFilters{"cuisine": "chinese"})
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	r := recipes[0]
	require.Regexp(t, regexp.MustCompile(`^ai_[0-9a-f]{8}$`), r.ID)
	require.Equal(t, "Egg Fried Rice", r.Title)
	require.Equal(t, domain.SourceAI, r.Source)
	require.True(t, r.IsAIGenerated)
	require.Equal(t, 20, *r.TimeMinutes)
	require.Equal(t, 4, *r.Servings)
	require.Len(t, r.Ingredients, 2)

	d := recipes[1]
	require.Equal(t, "AI Generated Recipe", d.Title)
	require.Equal(t, "International", d.Cuisine)
	require.Equal(t, "Main Course", d.MealType)
	require.Nil(t, d.TimeMinutes)
	require.NotNil(t, d.Tags)
	require.NotEqual(t, r.ID, d.ID)

	require.Contains(t, gen.prompt, "rice, egg")
	require.Contains(t, gen.prompt, "- cuisine: chinese")
}

func TestAIRecipes_FencedResponse(t *testing.T) {
	gen := &fakeGenerator{text: "Here you go!\n```json\n" + aiResponse + "\n```\nEnjoy."}
	n := 0
	svc := &service.AIRecipeService{Generator: gen, NewID: func() string { n++; return "ai_0000000" + string(rune('0'+n)) }}

	recipes, err := svc.Generate(context.Background(), []string{"egg"}, nil)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	require.Equal(t, "ai_00000001", recipes[0].ID)
	require.Equal(t, "ai_00000002", recipes[1].ID)
}

func TestAIRecipes_BadResponse(t *testing.T) {
	for name, text := range map[string]string{
		"prose":         "I cannot help with that.",
		"unclosed":      "```json\n[{\"title\": \"x\"}]",
		"object":        `{"title": "x"}`,
		"invalid fence": "```json\n[{title}]\n```",
	} {
		t.Run(name, func(t *testing.T) {
			svc := &service.AIRecipeService{Generator: &fakeGenerator{text: text}}
			_, err := svc.Generate(context.Background(), []string{"egg"}, nil)
			require.ErrorIs(t, err, service.ErrBadAIResponse)
		})
	}
}

func TestAIRecipes_Unavailable(t *testing.T) {
	_, err := (&service.AIRecipeService{}).Generate(context.Background(), []string{"egg"}, nil)
	require.ErrorIs(t, err, service.ErrServiceUnavailable)

	svc := &service.AIRecipeService{Generator: &fakeGenerator{err: errors.New("quota exceeded")}}
	_, err = svc.Generate(context.Background(), []string{"egg"}, nil)
	require.ErrorIs(t, err, service.ErrServiceUnavailable)
}

func TestAIRecipes_NoIngredients(t *testing.T) {
	svc := &service.AIRecipeService{Generator: &fakeGenerator{text: aiResponse}}
	_, err := svc.Generate(context.Background(), nil, nil)
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestBuildAIPrompt_SkipsEmptyFilters(t *testing.T) {
	p := service.BuildAIPrompt([]string{"egg"}, domain.AIRecipeFilters{"diet": "", "time": "under 30 minutes"})
	require.Contains(t, p, "- time: under 30 minutes")
	require.NotContains(t, p, "diet")
}
