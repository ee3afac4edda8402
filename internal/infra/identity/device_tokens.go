package identity

import (
	"context"

	"socialgate/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

const deviceTokensPath = "deviceTokens"

// firebaseDeviceTokens reads the per-account device token registry the
// mobile clients maintain in the Realtime Database. Tokens are stored as
// a map keyed by token for cheap client-side dedup.
type firebaseDeviceTokens struct {
	client *db.Client
}

// NewFirebaseDeviceTokens creates a device token store on the Realtime
// Database.
func NewFirebaseDeviceTokens(client *db.Client) repository.DeviceTokenStore {
	return &firebaseDeviceTokens{client: client}
}

// GetDeviceTokens returns the device tokens registered for an account.
func (s *firebaseDeviceTokens) GetDeviceTokens(ctx context.Context, accountID string) ([]string, error) {
	var raw map[string]bool
	if err := s.client.NewRef(deviceTokensPath + "/" + accountID).Get(ctx, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to read device tokens")
	}

	tokens := make([]string, 0, len(raw))
	for token, active := range raw {
		if active {
			tokens = append(tokens, token)
		}
	}

	return tokens, nil
}
