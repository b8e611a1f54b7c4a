// Package ai adapts the Gemini API to the recipe generator used by the
// service layer.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash-lite"

var (
	ErrNotConfigured = errors.New("ai: gemini api key not set")
	ErrEmptyResponse = errors.New("ai: empty model response")
)

type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint. Empty uses the public endpoint.
	BaseURL string
}

// Gemini generates text with a Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini returns ErrNotConfigured when cfg has no API key so callers can
// run without AI features.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("ai: create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Model reports the configured model name.
func (g *Gemini) Model() string { return g.model }

// Generate sends prompt and returns the concatenated text parts, asking the
// model for a JSON response.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("ai: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
