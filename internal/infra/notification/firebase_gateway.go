// Package notification implements the push gateway on Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"fmt"

	"socialgate/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
)

type firebaseGateway struct {
	client *messaging.Client
}

// NewFirebaseGateway creates a push gateway on the shared messaging client.
func NewFirebaseGateway(client *messaging.Client) service.PushGateway {
	return &firebaseGateway{client: client}
}

// SendSingle sends a push notification to a single device token
func (g *firebaseGateway) SendSingle(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := g.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatch sends push notifications to multiple device tokens (max 500 tokens)
func (g *firebaseGateway) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := g.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	// Collect tokens rejected as invalid or unregistered so callers can
	// prune them
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, tokens[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
