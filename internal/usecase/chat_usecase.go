package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ChatInput defines the data required to ask a pharmacy's assistant a question.
type ChatInput struct {
	PharmacyID uuid.UUID
	UserID     string
	Message    string
}

// ChatOutput returns the assistant's reply.
type ChatOutput struct {
	Response     string
	PharmacyName string
}

// ChatUsecase defines the interface for the pharmacy assistant.
type ChatUsecase interface {
	// Chat builds the pharmacy's context prompt, queries the model, logs the
	// exchange, and returns the reply. Model failures degrade to a fixed
	// apology rather than an error.
	Chat(ctx context.Context, input ChatInput) (*ChatOutput, error)
}
