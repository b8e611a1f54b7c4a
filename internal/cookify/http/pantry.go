package http

import (
	"net/http"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
)

type PantryHandler struct {
	PantryService *service.PantryService
}

// HandleList handles GET /users/me/pantry
//
//	@Summary		List pantry items
//	@Description	Items without an expiry date come first, then by expiry date.
//	@Tags			Pantry
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	cookifysdk.PantryListResponse
//	@Failure		401	{object}	cookifysdk.ErrorResponse
//	@Router			/users/me/pantry [get].
func (h *PantryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	items, err := h.PantryService.List(r.Context(), u.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := cookifysdk.PantryListResponse{Items: make([]cookifysdk.PantryItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, toPantryItem(it))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpsert handles POST /users/me/pantry
//
//	@Summary		Add or update a pantry item
//	@Description	Items are keyed by name; posting an existing name replaces its quantity and expiry.
//	@Tags			Pantry
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cookifysdk.PantryItemRequest	true	"pantry item"
//	@Success		200		{object}	cookifysdk.PantryItem
//	@Failure		400		{object}	cookifysdk.ErrorResponse
//	@Failure		401		{object}	cookifysdk.ErrorResponse
//	@Router			/users/me/pantry [post].
func (h *PantryHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	var req cookifysdk.PantryItemRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	item, err := h.PantryService.Upsert(r.Context(), u.ID, service.PantryInput{
		Name:       req.Name,
		Quantity:   req.Quantity,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPantryItem(item))
}

// HandleDelete handles DELETE /users/me/pantry/{name}
//
//	@Summary		Remove a pantry item
//	@Tags			Pantry
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	path		string	true	"item name"
//	@Success		200		{object}	cookifysdk.OKResponse
//	@Failure		401		{object}	cookifysdk.ErrorResponse
//	@Failure		404		{object}	cookifysdk.ErrorResponse
//	@Router			/users/me/pantry/{name} [delete].
func (h *PantryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())

	if err := h.PantryService.Delete(r.Context(), u.ID, r.PathValue("name")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cookifysdk.OKResponse{OK: true})
}
