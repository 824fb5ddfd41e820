package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

var ErrEmptyCompletion = errors.New("no text content in response")

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature *float32
}

type GeminiOption func(*geminiService)

// WithTemperature overrides the model's default sampling temperature.
func WithTemperature(temperature *float32) GeminiOption {
	return func(g *geminiService) {
		g.temperature = temperature
	}
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, opts ...GeminiOption) (GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	g := &geminiService{
		client:    client,
		modelName: modelName,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *geminiService) ModelName() string {
	return g.modelName
}

// GenerateText sends the prompt once and returns the response text unmodified.
// It does not retry; every failure is a *ServiceError.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	var config *genai.GenerateContentConfig
	if g.temperature != nil {
		config = &genai.GenerateContentConfig{Temperature: g.temperature}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", &ServiceError{Err: fmt.Errorf("failed to generate text: %w", err)}
	}

	if resp == nil {
		return "", &ServiceError{Err: fmt.Errorf("no response generated (nil response)")}
	}

	text := resp.Text()
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", &ServiceError{Err: fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)}
		}
		return "", &ServiceError{Err: ErrEmptyCompletion}
	}

	return text, nil
}
