package service

import (
	"context"
)

// PushGateway abstracts the push-messaging service the notification pipeline
// dispatches rendered messages through.
type PushGateway interface {
	// SendBatch sends a push notification to multiple device tokens.
	// Returns success count, failure count, list of invalid tokens, and error.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingle sends a push notification to a single device token.
	SendSingle(ctx context.Context, token, title, body string, data map[string]string) error
}
