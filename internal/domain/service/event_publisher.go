package service

import (
	"context"
)

// Event type attribute values used to route worker push messages.
const (
	EventTypeLogin         = "login"
	EventTypeStorageObject = "storageObject"
)

// LoginEvent is published after a successful non-linking resolution so
// downstream consumers (welcome push, analytics) can react asynchronously.
// Publishing is best-effort and never affects the login outcome.
type LoginEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	AccountID  string `json:"account_id"`
	Provider   string `json:"provider"`
	NewAccount bool   `json:"new_account"` // true when this login created the account
}

// StorageObjectEvent mirrors the object-change notification emitted by the
// storage bucket. EventType distinguishes finalized uploads from deletions.
type StorageObjectEvent struct {
	Bucket      string `json:"bucket"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	EventType   string `json:"eventType"` // e.g. OBJECT_FINALIZE, OBJECT_DELETE
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoginEvent publishes a login event for async processing
	PublishLoginEvent(ctx context.Context, event *LoginEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
