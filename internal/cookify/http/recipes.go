package http

import (
	"net/http"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
)

type RecipesHandler struct {
	RecipeService   *service.RecipeService
	AIRecipeService *service.AIRecipeService
}

// HandleSearch handles POST /recipes/search
//
//	@Summary		Search recipes by ingredients
//	@Description	Looks up TheMealDB for every ingredient and ranks the union by how many of the ingredients each recipe uses.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cookifysdk.RecipeSearchRequest	true	"ingredients"
//	@Success		200		{object}	cookifysdk.RecipeSearchResponse
//	@Failure		400		{object}	cookifysdk.ErrorResponse	"no ingredients"
//	@Failure		503		{object}	cookifysdk.ErrorResponse	"recipe service unavailable"
//	@Router			/recipes/search [post].
func (h *RecipesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req cookifysdk.RecipeSearchRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	recipes, err := h.RecipeService.Search(r.Context(), req.Ingredients)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := cookifysdk.RecipeSearchResponse{Items: make([]cookifysdk.Recipe, 0, len(recipes))}
	for _, rec := range recipes {
		out.Items = append(out.Items, toRecipe(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAI handles POST /recipes/ai
//
//	@Summary		Generate recipes with AI
//	@Description	Asks the configured Gemini model for three recipes built around the ingredients. Filters are passed to the model as preferences.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cookifysdk.AIRecipeRequest	true	"ingredients and optional filters"
//	@Success		200		{object}	cookifysdk.AIRecipeResponse
//	@Failure		400		{object}	cookifysdk.ErrorResponse	"no ingredients"
//	@Failure		500		{object}	cookifysdk.ErrorResponse	"unparsable model response"
//	@Failure		503		{object}	cookifysdk.ErrorResponse	"AI not configured or unavailable"
//	@Router			/recipes/ai [post].
func (h *RecipesHandler) HandleAI(w http.ResponseWriter, r *http.Request) {
	var req cookifysdk.AIRecipeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	recipes, err := h.AIRecipeService.Generate(r.Context(), req.Ingredients, domain.AIRecipeFilters(req.Filters))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := cookifysdk.AIRecipeResponse{Items: make([]cookifysdk.AIRecipe, 0, len(recipes))}
	for _, rec := range recipes {
		out.Items = append(out.Items, toAIRecipe(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
