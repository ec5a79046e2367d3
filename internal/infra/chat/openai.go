// Package chat provides the LLM-backed implementation of the pharmacy
// assistant's completion service.
package chat

import (
	"context"

	"pharmadz/config"
	"pharmadz/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel       = openai.GPT3Dot5Turbo
	defaultMaxTokens   = 300
	defaultTemperature = 0.7
)

// openAIService implements service.ChatCompletionService against the OpenAI API.
type openAIService struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewOpenAIService creates a chat completion service from config. Model,
// token budget and temperature fall back to the assistant defaults.
func NewOpenAIService(cfg *config.Config) (service.ChatCompletionService, error) {
	if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
		return nil, errors.New("openai api key must be provided")
	}

	model := cfg.OpenAI.Model
	if model == "" {
		model = defaultModel
	}

	maxTokens := cfg.OpenAI.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	temperature := float32(cfg.OpenAI.Temperature)
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &openAIService{
		client:      openai.NewClient(cfg.OpenAI.APIKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

// Complete sends the system prompt and user message as a two-message
// conversation and returns the first choice.
func (s *openAIService) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion request failed")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
