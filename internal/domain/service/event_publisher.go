package service

import (
	"context"
)

// LocationSyncEvent asks the sync worker to reconcile unsynced location samples.
type LocationSyncEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	SampleCount int    `json:"sample_count"`
	BatchSize   int    `json:"batch_size,omitempty"` // Zero lets the worker use its configured size
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationSyncEvent publishes a sync request for async processing
	PublishLocationSyncEvent(ctx context.Context, event *LocationSyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
