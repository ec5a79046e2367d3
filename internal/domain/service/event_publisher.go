package service

import (
	"context"
)

// StockUpdatedEvent represents a stock replacement to be fanned out to
// downstream consumers (search indexers, availability alerts).
type StockUpdatedEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	PharmacyID string `json:"pharmacy_id"`
	Wilaya     string `json:"wilaya"`
	Commune    string `json:"commune"`
	LineCount  int    `json:"line_count"`
	UpdatedAt  string `json:"updated_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockUpdated publishes a stock replacement event for async processing
	PublishStockUpdated(ctx context.Context, event *StockUpdatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
