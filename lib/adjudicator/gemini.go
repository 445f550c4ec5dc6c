package adjudicator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

//go:generate moq --out mocks/gemini_models.go --pkg mocks --skip-ensure . geminiModels:GeminiModelsMock

// geminiModels is a subset of genai.Models used by Gemini
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig contains parameters for Gemini client
type GeminiConfig struct {
	Model             string
	MaxTokensResponse int32
}

// Gemini is a Client for Google Gemini API
type Gemini struct {
	models geminiModels
	params GeminiConfig
}

// NewGeminiClient makes genai client for Gemini API with the given key and wraps it
func NewGeminiClient(ctx context.Context, apiKey string, params GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return NewGemini(client.Models, params), nil
}

// NewGemini makes a Gemini client with the given models service
func NewGemini(models geminiModels, params GeminiConfig) *Gemini {
	if params.Model == "" {
		params.Model = "gemini-2.5-flash"
	}
	if params.MaxTokensResponse <= 0 {
		params.MaxTokensResponse = 300
	}
	return &Gemini{models: models, params: params}
}

// Complete asks the model for a JSON answer and returns its text parts of the first candidate
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.params.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  g.params.MaxTokensResponse,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no candidates in response")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}
