package repository

import (
	"context"
)

// DeviceTokenStore reads the push device tokens registered for an account.
// Token registration is owned by the mobile clients; this side only reads.
type DeviceTokenStore interface {
	// GetDeviceTokens returns the device tokens for an account. A missing
	// account yields an empty slice.
	GetDeviceTokens(ctx context.Context, accountID string) ([]string, error)
}
