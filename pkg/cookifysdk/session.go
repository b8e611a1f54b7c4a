package cookifysdk

import (
	"context"
	"net/http"
)

// Session makes requests on behalf of a logged in user. Tokens are not
// refreshed; log in again once the token expires.
type Session struct {
	client *Client
	token  string
}

// NewSession wraps an access token obtained elsewhere.
func (c *Client) NewSession(accessToken string) *Session {
	return &Session{client: c, token: accessToken}
}

// AccessToken returns the bearer token of the session.
func (s *Session) AccessToken() string { return s.token }

func (s *Session) do(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	return s.client.do(ctx, s.token, method, path, body, target, expectedStatus)
}

// Me returns the caller's profile.
func (s *Session) Me(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodGet, "/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPantry returns the caller's pantry.
func (s *Session) ListPantry(ctx context.Context) ([]PantryItem, error) {
	var out PantryListResponse
	if err := s.do(ctx, http.MethodGet, "/users/me/pantry", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// UpsertPantryItem adds or updates an item by name.
func (s *Session) UpsertPantryItem(ctx context.Context, item PantryItemRequest) (*PantryItem, error) {
	var out PantryItem
	if err := s.do(ctx, http.MethodPost, "/users/me/pantry", item, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePantryItem removes an item by name.
func (s *Session) DeletePantryItem(ctx context.Context, name string) error {
	return s.do(ctx, http.MethodDelete, "/users/me/pantry/"+pathEscape(name), nil, nil, http.StatusOK)
}

// SaveRecipe bookmarks recipeID.
func (s *Session) SaveRecipe(ctx context.Context, recipeID string, req SaveRecipeRequest) error {
	return s.do(ctx, http.MethodPost, "/recipes/"+pathEscape(recipeID)+"/save", req, nil, http.StatusOK)
}

// ListSavedRecipes returns the caller's saved recipes, newest first.
func (s *Session) ListSavedRecipes(ctx context.Context) ([]SavedRecipe, error) {
	var out SavedRecipeListResponse
	if err := s.do(ctx, http.MethodGet, "/users/me/saved", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// DeleteSavedRecipe removes a saved recipe.
func (s *Session) DeleteSavedRecipe(ctx context.Context, recipeID string) error {
	return s.do(ctx, http.MethodDelete, "/users/me/saved/"+pathEscape(recipeID), nil, nil, http.StatusOK)
}
