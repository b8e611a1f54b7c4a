package cookifysdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the unauthenticated Cookify endpoints and opens Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL with a 10 second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password string) (*RegisterResponse, error) {
	var out RegisterResponse
	err := c.do(ctx, "", http.MethodPost, "/auth/register",
		CredentialsRequest{Email: email, Password: password}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var tok TokenResponse
	err := c.do(ctx, "", http.MethodPost, "/auth/login",
		CredentialsRequest{Email: email, Password: password}, &tok, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.Access), nil
}

// SearchRecipes finds TheMealDB recipes using any of ingredients.
func (c *Client) SearchRecipes(ctx context.Context, ingredients ...string) ([]Recipe, error) {
	var out RecipeSearchResponse
	err := c.do(ctx, "", http.MethodPost, "/recipes/search",
		RecipeSearchRequest{Ingredients: ingredients}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GenerateRecipes asks the AI backend for recipes.
func (c *Client) GenerateRecipes(ctx context.Context, req AIRecipeRequest) ([]AIRecipe, error) {
	var out AIRecipeResponse
	if err := c.do(ctx, "", http.MethodPost, "/recipes/ai", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats returns the public counters.
func (c *Client) GetStats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.do(ctx, "", http.MethodGet, "/stats", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func pathEscape(s string) string { return url.PathEscape(s) }
