// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"socialgate/internal/domain/entity"
)

// Domain-specific errors for identity persistence.
// This allows the application layer to handle specific outcomes without depending on store-specific errors.
var (
	// ErrIdentityNotFound is returned when no identity exists for a (provider, providerUserId) key.
	ErrIdentityNotFound = errors.New("social identity not found")
	// ErrIdentityExists is returned by CreateIdentity when the key is already
	// linked to an account. It is the loser's signal in a first-login race.
	ErrIdentityExists = errors.New("social identity already exists")
	// ErrHandshakeSecretNotFound is returned when the pending secret for a
	// client id is absent, i.e. the handshake expired or was already consumed.
	ErrHandshakeSecretNotFound = errors.New("handshake secret not found")
)

// IdentityStore is the durable mapping from (provider, providerUserId) to a
// linked account, the inverse account-to-providers index, and the ephemeral
// three-legged handshake secrets. Identity writes update both directions of
// the mapping as one combined write.
type IdentityStore interface {
	// GetIdentity retrieves the identity for a provider key, or ErrIdentityNotFound.
	GetIdentity(ctx context.Context, provider entity.Provider, providerUserID string) (*entity.SocialIdentity, error)

	// CreateIdentity persists a brand-new identity and its inverse index entry.
	// The write is conditional on the key being absent: a concurrent creation
	// for the same key makes the second caller fail with ErrIdentityExists.
	CreateIdentity(ctx context.Context, identity *entity.SocialIdentity) error

	// UpdateIdentity refreshes an existing identity (access token, linked
	// account, extra attributes) together with its inverse index entry.
	UpdateIdentity(ctx context.Context, identity *entity.SocialIdentity) error

	// GetLinkedProviders enumerates the providers linked to an account as a
	// provider-to-providerUserID map. A missing account yields an empty map.
	GetLinkedProviders(ctx context.Context, accountID string) (map[entity.Provider]string, error)

	// GetHandshakeSecret retrieves the pending request secret for a client id,
	// or ErrHandshakeSecretNotFound.
	GetHandshakeSecret(ctx context.Context, clientID string) (string, error)

	// PutHandshakeSecret stores the request secret for a client id.
	PutHandshakeSecret(ctx context.Context, clientID, secret string) error

	// DeleteHandshakeSecret removes the secret for a client id. Deleting an
	// absent secret is not an error.
	DeleteHandshakeSecret(ctx context.Context, clientID string) error
}
