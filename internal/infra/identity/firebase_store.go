// Package identity provides the durable stores for the provider-to-account
// mapping and the pending handshake secrets.
package identity

import (
	"context"
	"time"

	"socialgate/internal/domain/entity"
	"socialgate/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

// Realtime Database layout. The identity node and the account index mirror
// each other and are written together.
const (
	identitiesPath       = "socialIdentities"
	accountIndexPath     = "accountSocialIdentities"
	handshakeSecretsPath = "handshakeSecrets"
)

// identityRecord is the RTDB representation of a social identity.
type identityRecord struct {
	ProviderUserID string            `json:"providerUserId"`
	AccessToken    string            `json:"accessToken"`
	AccountID      string            `json:"accountId"`
	Extra          map[string]string `json:"extra,omitempty"`
	UpdatedAt      int64             `json:"updatedAt"` // unix millis
}

// secretRecord is the RTDB representation of a pending handshake secret.
type secretRecord struct {
	Secret    string `json:"secret"`
	CreatedAt int64  `json:"createdAt"` // unix millis
}

type firebaseStore struct {
	client *db.Client
}

// NewFirebaseStore creates an identity store backed by Firebase Realtime
// Database.
func NewFirebaseStore(client *db.Client) repository.IdentityStore {
	return &firebaseStore{client: client}
}

func identityKey(provider entity.Provider, providerUserID string) string {
	return identitiesPath + "/" + provider.String() + "/" + providerUserID
}

func indexKey(accountID string, provider entity.Provider) string {
	return accountIndexPath + "/" + accountID + "/" + provider.String()
}

// GetIdentity retrieves the identity node for a provider key.
func (s *firebaseStore) GetIdentity(ctx context.Context, provider entity.Provider, providerUserID string) (*entity.SocialIdentity, error) {
	var record identityRecord
	if err := s.client.NewRef(identityKey(provider, providerUserID)).Get(ctx, &record); err != nil {
		return nil, errors.Wrap(err, "failed to read identity node")
	}

	// An absent node unmarshals to the zero record.
	if record.ProviderUserID == "" {
		return nil, repository.ErrIdentityNotFound
	}

	return &entity.SocialIdentity{
		Provider:        provider,
		ProviderUserID:  record.ProviderUserID,
		AccessToken:     record.AccessToken,
		LinkedAccountID: record.AccountID,
		Extra:           record.Extra,
		UpdatedAt:       time.UnixMilli(record.UpdatedAt),
	}, nil
}

// CreateIdentity claims the identity node in a transaction so that exactly
// one of two concurrent first logins wins, then writes the account index.
func (s *firebaseStore) CreateIdentity(ctx context.Context, identity *entity.SocialIdentity) error {
	record := toRecord(identity)

	err := s.client.NewRef(identityKey(identity.Provider, identity.ProviderUserID)).
		Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
			var current identityRecord
			if err := node.Unmarshal(&current); err != nil {
				return nil, errors.Wrap(err, "failed to unmarshal identity node")
			}
			if current.ProviderUserID != "" {
				return nil, repository.ErrIdentityExists
			}

			return record, nil
		})
	if err != nil {
		if errors.Is(err, repository.ErrIdentityExists) {
			return repository.ErrIdentityExists
		}

		return errors.Wrap(err, "failed to create identity node")
	}

	if err := s.client.NewRef(indexKey(identity.LinkedAccountID, identity.Provider)).
		Set(ctx, identity.ProviderUserID); err != nil {
		return errors.Wrap(err, "failed to write account index")
	}

	return nil
}

// UpdateIdentity refreshes the identity node and its index entry as one
// multi-path write.
func (s *firebaseStore) UpdateIdentity(ctx context.Context, identity *entity.SocialIdentity) error {
	updates := map[string]interface{}{
		identityKey(identity.Provider, identity.ProviderUserID): toRecord(identity),
		indexKey(identity.LinkedAccountID, identity.Provider):   identity.ProviderUserID,
	}
	if err := s.client.NewRef("/").Update(ctx, updates); err != nil {
		return errors.Wrap(err, "failed to update identity")
	}

	return nil
}

// GetLinkedProviders reads the account index. A missing account yields an
// empty map.
func (s *firebaseStore) GetLinkedProviders(ctx context.Context, accountID string) (map[entity.Provider]string, error) {
	var raw map[string]string
	if err := s.client.NewRef(accountIndexPath + "/" + accountID).Get(ctx, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to read account index")
	}

	linked := make(map[entity.Provider]string, len(raw))
	for name, providerUserID := range raw {
		if provider, ok := entity.ParseProvider(name); ok {
			linked[provider] = providerUserID
		}
	}

	return linked, nil
}

// GetHandshakeSecret retrieves the pending secret for a client id.
func (s *firebaseStore) GetHandshakeSecret(ctx context.Context, clientID string) (string, error) {
	var record secretRecord
	if err := s.client.NewRef(handshakeSecretsPath + "/" + clientID).Get(ctx, &record); err != nil {
		return "", errors.Wrap(err, "failed to read handshake secret")
	}
	if record.Secret == "" {
		return "", repository.ErrHandshakeSecretNotFound
	}

	return record.Secret, nil
}

// PutHandshakeSecret stores the pending secret for a client id.
func (s *firebaseStore) PutHandshakeSecret(ctx context.Context, clientID, secret string) error {
	record := secretRecord{
		Secret:    secret,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.client.NewRef(handshakeSecretsPath + "/" + clientID).Set(ctx, record); err != nil {
		return errors.Wrap(err, "failed to store handshake secret")
	}

	return nil
}

// DeleteHandshakeSecret removes the pending secret for a client id.
func (s *firebaseStore) DeleteHandshakeSecret(ctx context.Context, clientID string) error {
	if err := s.client.NewRef(handshakeSecretsPath + "/" + clientID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete handshake secret")
	}

	return nil
}

func toRecord(identity *entity.SocialIdentity) identityRecord {
	updatedAt := identity.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	return identityRecord{
		ProviderUserID: identity.ProviderUserID,
		AccessToken:    identity.AccessToken,
		AccountID:      identity.LinkedAccountID,
		Extra:          identity.Extra,
		UpdatedAt:      updatedAt.UnixMilli(),
	}
}
