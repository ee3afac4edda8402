package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/repository"
	"socialgate/internal/domain/service"
	mockRepo "socialgate/internal/mocks/repository"
	mockSvc "socialgate/internal/mocks/service"
	"socialgate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLoginService(t *testing.T) (
	usecase.LoginUsecase,
	*mockSvc.MockAdapterRegistry,
	*mockRepo.MockIdentityStore,
	*mockSvc.MockAccountDirectory,
	*mockSvc.MockEventPublisher,
) {
	registry := mockSvc.NewMockAdapterRegistry(t)
	store := mockRepo.NewMockIdentityStore(t)
	directory := mockSvc.NewMockAccountDirectory(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewLoginService(registry, store, directory, publisher, logger)

	return svc, registry, store, directory, publisher
}

func stubAdapter(t *testing.T, provider entity.Provider, profile *service.NormalizedProfile) *mockSvc.MockProviderAdapter {
	adapter := mockSvc.NewMockProviderAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	adapter.EXPECT().ExchangeCode(mock.Anything, mock.Anything).Return(&service.ProviderToken{AccessToken: "provider-token"}, nil)
	adapter.EXPECT().FetchProfile(mock.Anything, mock.Anything).Return(profile, nil)

	return adapter
}

func TestLoginService_SocialLogin_ExistingIdentity(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{
		ProviderUserID: "fb-123",
		Email:          "user@example.com",
		DisplayName:    "User",
	}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		LinkedAccountID: "acct-1",
	}, nil)
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{
		ID:          "acct-1",
		DisplayName: "User",
		Email:       "user@example.com",
	}, nil)
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("session-token", nil)

	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Return(nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeResolved, resolution.Outcome)
	assert.Equal(t, "acct-1", resolution.AccountID)
	assert.Equal(t, "session-token", resolution.SessionToken)
}

func TestLoginService_SocialLogin_ExistingIdentityRefreshesToken(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "fb-123"}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		AccessToken:     "stale-token",
		LinkedAccountID: "acct-1",
	}, nil)

	var persisted *entity.SocialIdentity
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Run(func(_ context.Context, identity *entity.SocialIdentity) {
		persisted = identity
	}).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{ID: "acct-1", DisplayName: "User"}, nil)
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("session-token", nil)
	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Return(nil)

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "provider-token", persisted.AccessToken)
	assert.Equal(t, "acct-1", persisted.LinkedAccountID)
}

func TestLoginService_SocialLogin_NewIdentityCreatesAccount(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{
		ProviderUserID: "ig-9",
		DisplayName:    "New User",
		PhotoURL:       "https://cdn.example.com/p.jpg",
	}
	registry.EXPECT().Get(entity.ProviderInstagram).Return(stubAdapter(t, entity.ProviderInstagram, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderInstagram, "ig-9").Return(nil, repository.ErrIdentityNotFound)
	store.EXPECT().CreateIdentity(ctx, mock.Anything).Return(nil)

	synthesized := "instagramUserId::ig-9"
	directory.EXPECT().GetAccountByID(ctx, synthesized).Return(nil, service.ErrAccountNotFound)
	directory.EXPECT().CreateAccount(ctx, synthesized, entity.AccountFields{
		DisplayName: "New User",
		PhotoURL:    "https://cdn.example.com/p.jpg",
	}).Return(nil)
	directory.EXPECT().IssueSessionToken(ctx, synthesized).Return("session-token", nil)

	var published *service.LoginEvent
	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Run(func(_ context.Context, event *service.LoginEvent) {
		published = event
	}).Return(nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderInstagram, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeResolved, resolution.Outcome)
	assert.Equal(t, synthesized, resolution.AccountID)
	require.NotNil(t, published)
	assert.True(t, published.NewAccount)
	assert.Equal(t, "instagram", published.Provider)
}

func TestLoginService_SocialLogin_LinkingConflict(t *testing.T) {
	svc, registry, store, directory, _ := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "fb-123"}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-linking").Return(&entity.AccountRecord{ID: "acct-linking"}, nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		LinkedAccountID: "someone-else",
	}, nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:      entity.ProviderFacebook,
		Credential:    service.Credential{Code: "code"},
		LinkAccountID: "acct-linking",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeConflictExists, resolution.Outcome)
}

func TestLoginService_SocialLogin_Linking(t *testing.T) {
	svc, registry, store, directory, _ := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "li-5", Email: "user@example.com"}
	registry.EXPECT().Get(entity.ProviderLinkedIn).Return(stubAdapter(t, entity.ProviderLinkedIn, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderLinkedIn, "li-5").Return(nil, repository.ErrIdentityNotFound)

	var persisted *entity.SocialIdentity
	store.EXPECT().CreateIdentity(ctx, mock.Anything).Run(func(_ context.Context, identity *entity.SocialIdentity) {
		persisted = identity
	}).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-linking").Return(&entity.AccountRecord{
		ID:          "acct-linking",
		DisplayName: "User",
		Email:       "user@example.com",
	}, nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:      entity.ProviderLinkedIn,
		Credential:    service.Credential{Code: "code"},
		LinkAccountID: "acct-linking",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeLinked, resolution.Outcome)
	assert.Equal(t, "acct-linking", resolution.AccountID)
	assert.Empty(t, resolution.SessionToken)
	require.NotNil(t, persisted)
	assert.Equal(t, "acct-linking", persisted.LinkedAccountID)
}

func TestLoginService_SocialLogin_LinkingTargetNotFound(t *testing.T) {
	svc, registry, _, directory, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockProviderAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	registry.EXPECT().Get(entity.ProviderFacebook).Return(adapter, nil)

	directory.EXPECT().GetAccountByID(ctx, "ghost-account").Return(nil, service.ErrAccountNotFound)

	// The identity store mock carries no expectations: an unknown linking
	// target must be rejected before the provider or the store is touched
	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:      entity.ProviderFacebook,
		Credential:    service.Credential{Code: "code"},
		LinkAccountID: "ghost-account",
	})

	require.Error(t, err)
	assert.Nil(t, resolution)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLoginService_SocialLogin_LinkingTargetLookupFailure(t *testing.T) {
	svc, registry, _, directory, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockProviderAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	registry.EXPECT().Get(entity.ProviderFacebook).Return(adapter, nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(nil, errors.New("directory down"))

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:      entity.ProviderFacebook,
		Credential:    service.Credential{Code: "code"},
		LinkAccountID: "acct-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestLoginService_SocialLogin_MissingCredential(t *testing.T) {
	svc, registry, _, _, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockProviderAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	registry.EXPECT().Get(entity.ProviderInstagram).Return(adapter, nil)

	// No code and no native payload: the adapter's exchange must never run
	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderInstagram})

	require.Error(t, err)
	assert.Nil(t, resolution)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLoginService_SocialLogin_MissingVerifierKeepsSecret(t *testing.T) {
	svc, registry, _, _, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockHandshakeAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	registry.EXPECT().Get(entity.ProviderTwitter).Return(adapter, nil)

	// A callback without the verifier fails validation before the pending
	// handshake secret is read, so the secret survives for a valid retry
	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:   entity.ProviderTwitter,
		Credential: service.Credential{OAuthToken: "req-token"},
		ClientID:   "client-1",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLoginService_SocialLogin_EmailCollision(t *testing.T) {
	svc, registry, store, directory, _ := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{
		ProviderUserID: "li-5",
		Email:          "taken@example.com",
		DisplayName:    "User",
	}
	registry.EXPECT().Get(entity.ProviderLinkedIn).Return(stubAdapter(t, entity.ProviderLinkedIn, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderLinkedIn, "li-5").Return(nil, repository.ErrIdentityNotFound)

	directory.EXPECT().GetAccountByEmail(ctx, "taken@example.com").Return(&entity.AccountRecord{ID: "acct-1"}, nil)
	store.EXPECT().GetLinkedProviders(ctx, "acct-1").Return(map[entity.Provider]string{
		entity.ProviderTwitter:  "tw-1",
		entity.ProviderFacebook: "fb-1",
	}, nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderLinkedIn, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeConflictEmail, resolution.Outcome)
	assert.Equal(t, "taken@example.com", resolution.Email)
	assert.Equal(t, []string{"facebook", "twitter"}, resolution.LinkedProviders)
	require.NotNil(t, resolution.Candidate)
	assert.Equal(t, "li-5", resolution.Candidate.ProviderUserID)
}

func TestLoginService_SocialLogin_CreationRaceLoser(t *testing.T) {
	svc, registry, store, _, _ := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "fb-123"}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(nil, repository.ErrIdentityNotFound)
	store.EXPECT().CreateIdentity(ctx, mock.Anything).Return(repository.ErrIdentityExists)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeConflictExists, resolution.Outcome)
}

func TestLoginService_SocialLogin_PatchesOnlyBlankFields(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{
		ProviderUserID: "fb-123",
		Email:          "user@example.com",
		DisplayName:    "Provider Name",
		PhotoURL:       "https://cdn.example.com/new.jpg",
	}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		LinkedAccountID: "acct-1",
	}, nil)
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Return(nil)

	// DisplayName is populated and must stay; photo and email are blank
	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{
		ID:          "acct-1",
		DisplayName: "Chosen Name",
	}, nil)
	directory.EXPECT().PatchAccount(ctx, "acct-1", entity.AccountFields{
		PhotoURL: "https://cdn.example.com/new.jpg",
		Email:    "user@example.com",
	}).Return(nil)
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("session-token", nil)
	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Return(nil)

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
}

func TestLoginService_SocialLogin_DirectoryPatchFailureIsSwallowed(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "fb-123", Email: "user@example.com"}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		LinkedAccountID: "acct-1",
	}, nil)
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{ID: "acct-1"}, nil)
	directory.EXPECT().PatchAccount(ctx, "acct-1", mock.Anything).Return(errors.New("directory down"))
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("session-token", nil)
	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Return(nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeResolved, resolution.Outcome)
}

func TestLoginService_SocialLogin_PublishFailureIsSwallowed(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "fb-123"}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		LinkedAccountID: "acct-1",
	}, nil)
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{ID: "acct-1", DisplayName: "User"}, nil)
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("session-token", nil)
	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeResolved, resolution.Outcome)
}

func TestLoginService_SocialLogin_TokenIssueFailure(t *testing.T) {
	svc, registry, store, directory, _ := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "fb-123"}
	registry.EXPECT().Get(entity.ProviderFacebook).Return(stubAdapter(t, entity.ProviderFacebook, profile), nil)

	store.EXPECT().GetIdentity(ctx, entity.ProviderFacebook, "fb-123").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderFacebook,
		ProviderUserID:  "fb-123",
		LinkedAccountID: "acct-1",
	}, nil)
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{ID: "acct-1", DisplayName: "User"}, nil)
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("", errors.New("signer unavailable"))

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{Provider: entity.ProviderFacebook, Credential: service.Credential{Code: "code"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssue))
}

func TestLoginService_SocialLogin_RedirectMismatch(t *testing.T) {
	svc, registry, _, _, _ := createTestLoginService(t)

	adapter := mockSvc.NewMockProviderAdapter(t)
	adapter.EXPECT().RedirectURI().Return("https://app.example.com/callback")
	registry.EXPECT().Get(entity.ProviderFacebook).Return(adapter, nil)

	_, err := svc.SocialLogin(context.Background(), usecase.SocialLoginInput{
		Provider:    entity.ProviderFacebook,
		Credential:  service.Credential{Code: "code"},
		RedirectURI: "https://evil.example.com/callback",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestLoginService_SocialLogin_HandshakeSecretConsumedOnce(t *testing.T) {
	svc, registry, store, directory, publisher := createTestLoginService(t)

	ctx := context.Background()
	profile := &service.NormalizedProfile{ProviderUserID: "tw-7", DisplayName: "Bird"}

	adapter := mockSvc.NewMockHandshakeAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	adapter.EXPECT().ExchangeCode(mock.Anything, mock.MatchedBy(func(cred service.Credential) bool {
		return cred.RequestSecret == "stored-secret"
	})).Return(&service.ProviderToken{AccessToken: "provider-token"}, nil)
	adapter.EXPECT().FetchProfile(mock.Anything, mock.Anything).Return(profile, nil)
	registry.EXPECT().Get(entity.ProviderTwitter).Return(adapter, nil)

	store.EXPECT().GetHandshakeSecret(ctx, "client-1").Return("stored-secret", nil)
	store.EXPECT().DeleteHandshakeSecret(ctx, "client-1").Return(nil)
	store.EXPECT().GetIdentity(ctx, entity.ProviderTwitter, "tw-7").Return(&entity.SocialIdentity{
		Provider:        entity.ProviderTwitter,
		ProviderUserID:  "tw-7",
		LinkedAccountID: "acct-1",
	}, nil)
	store.EXPECT().UpdateIdentity(ctx, mock.Anything).Return(nil)

	directory.EXPECT().GetAccountByID(ctx, "acct-1").Return(&entity.AccountRecord{ID: "acct-1", DisplayName: "Bird"}, nil)
	directory.EXPECT().IssueSessionToken(ctx, "acct-1").Return("session-token", nil)
	publisher.EXPECT().PublishLoginEvent(ctx, mock.Anything).Return(nil)

	resolution, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:   entity.ProviderTwitter,
		Credential: service.Credential{OAuthToken: "req-token", OAuthVerifier: "verifier"},
		ClientID:   "client-1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeResolved, resolution.Outcome)
}

func TestLoginService_SocialLogin_HandshakeExpired(t *testing.T) {
	svc, registry, store, _, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockHandshakeAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	registry.EXPECT().Get(entity.ProviderTwitter).Return(adapter, nil)

	store.EXPECT().GetHandshakeSecret(ctx, "client-1").Return("", repository.ErrHandshakeSecretNotFound)

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Provider:   entity.ProviderTwitter,
		Credential: service.Credential{OAuthToken: "req-token", OAuthVerifier: "verifier"},
		ClientID:   "client-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHandshakeExpired))
}

func TestLoginService_BeginHandshake(t *testing.T) {
	svc, registry, store, _, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockHandshakeAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	adapter.EXPECT().BeginHandshake(ctx).Return("req-token", "req-secret", "https://api.twitter.com/oauth/authenticate?oauth_token=req-token", nil)
	registry.EXPECT().GetHandshake(entity.ProviderTwitter).Return(adapter, nil)

	store.EXPECT().PutHandshakeSecret(ctx, "client-1", "req-secret").Return(nil)

	url, err := svc.BeginHandshake(ctx, entity.ProviderTwitter, "client-1", "")

	require.NoError(t, err)
	assert.Equal(t, "https://api.twitter.com/oauth/authenticate?oauth_token=req-token", url)
}

func TestLoginService_BeginHandshake_SecretStoreFailureAborts(t *testing.T) {
	svc, registry, store, _, _ := createTestLoginService(t)

	ctx := context.Background()
	adapter := mockSvc.NewMockHandshakeAdapter(t)
	adapter.EXPECT().RedirectURI().Return("")
	adapter.EXPECT().BeginHandshake(ctx).Return("req-token", "req-secret", "https://api.twitter.com/oauth/authenticate", nil)
	registry.EXPECT().GetHandshake(entity.ProviderTwitter).Return(adapter, nil)

	store.EXPECT().PutHandshakeSecret(ctx, "client-1", "req-secret").Return(errors.New("store down"))

	_, err := svc.BeginHandshake(ctx, entity.ProviderTwitter, "client-1", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}
