package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the free tier endpoint of TheMealDB.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// DefaultTimeout bounds a single upstream call.
const DefaultTimeout = 10 * time.Second

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// ErrUpstream matches every failure talking to TheMealDB.
var ErrUpstream = errors.New("mealdb: upstream unavailable")

// StatusError is returned when TheMealDB answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mealdb: %s returned status %d", e.Path, e.StatusCode)
}

// Is lets callers match any StatusError against ErrUpstream.
func (e *StatusError) Is(target error) bool { return target == ErrUpstream }

// Client talks to TheMealDB. The zero value is not usable; use NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL with DefaultTimeout. An empty
// baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// getJSON issues GET path?query and decodes a 200 response into target.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("mealdb: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(target); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrUpstream, path, err)
	}
	return nil
}
