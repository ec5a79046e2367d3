package service

import "context"

// ChatCompletionService defines the interface for the conversational model
// behind the pharmacy assistant. Implementations talk to an LLM provider;
// the use case layer only sees prompt in, reply out.
type ChatCompletionService interface {
	// Complete sends a system prompt and a user message to the model and
	// returns the assistant's reply.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
