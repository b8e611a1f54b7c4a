package http

import (
	"net/http"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
)

type SavedRecipesHandler struct {
	SavedRecipeService *service.SavedRecipeService
}

// HandleSave handles POST /recipes/{id}/save
//
//	@Summary		Save a recipe
//	@Description	Stores the full recipe for the caller. Saving the same id again replaces the earlier copy.
//	@Tags			Saved Recipes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"recipe id (mealdb_<id> or ai_<id>)"
//	@Param			request	body		cookifysdk.SaveRecipeRequest	true	"recipe"
//	@Success		200		{object}	cookifysdk.OKResponse
//	@Failure		400		{object}	cookifysdk.ErrorResponse
//	@Failure		401		{object}	cookifysdk.ErrorResponse
//	@Router			/recipes/{id}/save [post].
func (h *SavedRecipesHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	var req cookifysdk.SaveRecipeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	err := h.SavedRecipeService.Save(r.Context(), u.ID, r.PathValue("id"), service.SaveRecipeInput{
		Title:            req.Title,
		Image:            deref(req.Image),
		Source:           req.Source,
		Cuisine:          deref(req.Cuisine),
		MealType:         deref(req.MealType),
		Tags:             req.Tags,
		Ingredients:      fromIngredients(req.Ingredients),
		Instructions:     req.Instructions,
		TimeMinutes:      req.TimeMinutes,
		Servings:         req.Servings,
		Difficulty:       deref(req.Difficulty),
		NutritionSummary: deref(req.NutritionSummary),
		IsAIGenerated:    req.IsAIGenerated,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cookifysdk.OKResponse{OK: true})
}

// HandleList handles GET /users/me/saved
//
//	@Summary		List saved recipes
//	@Description	Newest first.
//	@Tags			Saved Recipes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	cookifysdk.SavedRecipeListResponse
//	@Failure		401	{object}	cookifysdk.ErrorResponse
//	@Router			/users/me/saved [get].
func (h *SavedRecipesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	list, err := h.SavedRecipeService.List(r.Context(), u.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := cookifysdk.SavedRecipeListResponse{Items: make([]cookifysdk.SavedRecipe, 0, len(list))}
	for _, rec := range list {
		out.Items = append(out.Items, toSavedRecipe(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete handles DELETE /users/me/saved/{id}
//
//	@Summary		Remove a saved recipe
//	@Tags			Saved Recipes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"recipe id"
//	@Success		200	{object}	cookifysdk.OKResponse
//	@Failure		401	{object}	cookifysdk.ErrorResponse
//	@Failure		404	{object}	cookifysdk.ErrorResponse
//	@Router			/users/me/saved/{id} [delete].
func (h *SavedRecipesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	if err := h.SavedRecipeService.Delete(r.Context(), u.ID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cookifysdk.OKResponse{OK: true})
}
