package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"alfredoptarigan/resume-ats/internal/config"
)

// GeminiService is the generation capability: all inputs go out as one
// request and the full, non-streamed completion text comes back.
type GeminiService interface {
	GenerateContent(ctx context.Context, inputs ...string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	return newGeminiService(cfg, genai.HTTPOptions{})
}

func newGeminiService(cfg config.GeminiConfig, httpOptions genai.HTTPOptions) (GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

// GenerateContent implements GeminiService.
func (g *geminiService) GenerateContent(ctx context.Context, inputs ...string) (string, error) {
	parts := make([]*genai.Part, 0, len(inputs))
	for _, input := range inputs {
		parts = append(parts, genai.NewPartFromText(input))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
