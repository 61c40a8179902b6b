package service

import (
	"context"
)

// PushEvent asks the push worker to deliver an in-app notification to the recipient's devices.
type PushEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id"`
	RecipientID    string            `json:"recipient_id"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	Link           string            `json:"link"`
	Data           map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPushEvent publishes a push event for async processing
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
