package postgres

import (
	"context"

	"socialgate/internal/domain/entity"
	"socialgate/internal/domain/repository"
	"socialgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityStore implements repository.IdentityStore on PostgreSQL. The
// account index of the Realtime Database layout collapses into an ordinary
// indexed column here, so identity writes are single-row operations.
type identityStore struct {
	db *gorm.DB
}

// NewIdentityStore is the constructor for the PostgreSQL identity store.
func NewIdentityStore(db *gorm.DB) repository.IdentityStore {
	return &identityStore{db: db}
}

// GetIdentity retrieves the identity row for a provider key.
func (store *identityStore) GetIdentity(ctx context.Context, provider entity.Provider, providerUserID string) (*entity.SocialIdentity, error) {
	var identityM model.SocialIdentityModel
	err := store.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toIdentityDomain(&identityM), nil
}

// CreateIdentity inserts a brand-new identity row. The composite primary key
// turns a concurrent creation for the same key into ErrIdentityExists.
func (store *identityStore) CreateIdentity(ctx context.Context, identity *entity.SocialIdentity) error {
	identityM := fromIdentityDomain(identity)

	if err := store.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrIdentityExists
		}

		return errors.WithStack(err)
	}

	return nil
}

// UpdateIdentity refreshes an existing identity row.
func (store *identityStore) UpdateIdentity(ctx context.Context, identity *entity.SocialIdentity) error {
	identityM := fromIdentityDomain(identity)

	result := store.db.WithContext(ctx).
		Model(&model.SocialIdentityModel{}).
		Where("provider = ? AND provider_user_id = ?", identityM.Provider, identityM.ProviderUserID).
		Updates(map[string]interface{}{
			"access_token": identityM.AccessToken,
			"account_id":   identityM.AccountID,
			"extra":        identityM.Extra,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// GetLinkedProviders enumerates the identities linked to an account.
func (store *identityStore) GetLinkedProviders(ctx context.Context, accountID string) (map[entity.Provider]string, error) {
	var identityModels []model.SocialIdentityModel
	err := store.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&identityModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	linked := make(map[entity.Provider]string, len(identityModels))
	for _, identityM := range identityModels {
		if provider, ok := entity.ParseProvider(identityM.Provider); ok {
			linked[provider] = identityM.ProviderUserID
		}
	}

	return linked, nil
}

// GetHandshakeSecret retrieves the pending secret for a client id.
func (store *identityStore) GetHandshakeSecret(ctx context.Context, clientID string) (string, error) {
	var secretM model.HandshakeSecretModel
	err := store.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&secretM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrHandshakeSecretNotFound
		}

		return "", errors.WithStack(err)
	}

	return secretM.Secret, nil
}

// PutHandshakeSecret stores the pending secret for a client id, replacing
// any stale one from an abandoned handshake.
func (store *identityStore) PutHandshakeSecret(ctx context.Context, clientID, secret string) error {
	secretM := model.HandshakeSecretModel{
		ClientID: clientID,
		Secret:   secret,
	}
	err := store.db.WithContext(ctx).
		Save(&secretM).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteHandshakeSecret removes the pending secret for a client id.
func (store *identityStore) DeleteHandshakeSecret(ctx context.Context, clientID string) error {
	err := store.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.HandshakeSecretModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toIdentityDomain converts a GORM SocialIdentityModel to a domain SocialIdentity entity.
func toIdentityDomain(data *model.SocialIdentityModel) *entity.SocialIdentity {
	if data == nil {
		return nil
	}

	provider, _ := entity.ParseProvider(data.Provider)

	return &entity.SocialIdentity{
		Provider:        provider,
		ProviderUserID:  data.ProviderUserID,
		AccessToken:     data.AccessToken,
		LinkedAccountID: data.AccountID,
		Extra:           data.Extra,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromIdentityDomain converts a domain SocialIdentity entity to a GORM SocialIdentityModel.
func fromIdentityDomain(data *entity.SocialIdentity) *model.SocialIdentityModel {
	if data == nil {
		return nil
	}

	return &model.SocialIdentityModel{
		Provider:       data.Provider.String(),
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		AccountID:      data.LinkedAccountID,
		Extra:          data.Extra,
	}
}
