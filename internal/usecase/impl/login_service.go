// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "socialgate/internal/delivery/context"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/repository"
	"socialgate/internal/domain/service"
	"socialgate/internal/usecase"

	"github.com/pkg/errors"
)

// loginService implements the LoginUsecase interface. It owns the identity
// resolution sequence; all provider protocol detail lives behind the
// adapter registry.
type loginService struct {
	registry  service.AdapterRegistry
	store     repository.IdentityStore
	directory service.AccountDirectory
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewLoginService is the constructor for loginService.
func NewLoginService(
	registry service.AdapterRegistry,
	store repository.IdentityStore,
	directory service.AccountDirectory,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LoginUsecase {
	return &loginService{
		registry:  registry,
		store:     store,
		directory: directory,
		publisher: publisher,
		logger:    logger,
	}
}

// BeginHandshake starts a three-legged handshake. The request secret is
// persisted before the authorization URL is handed out; a failed write
// aborts so a callback can never arrive for a secret that was never stored.
func (srv *loginService) BeginHandshake(ctx context.Context, provider entity.Provider, clientID, redirectURI string) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	adapter, err := srv.registry.GetHandshake(provider)
	if err != nil {
		return "", err
	}
	if configured := adapter.RedirectURI(); configured != "" && redirectURI != configured {
		return "", domainerrors.ErrValidation.WithDetails("redirectUri does not match the configured value")
	}

	// 1. Obtain the request token pair from the provider
	_, requestSecret, authorizationURL, err := adapter.BeginHandshake(ctx)
	if err != nil {
		return "", err
	}

	// 2. Persist the secret keyed by the caller's client id
	if err := srv.store.PutHandshakeSecret(ctx, clientID, requestSecret); err != nil {
		return "", domainerrors.ErrStoreUnavailable.WrapMessage("failed to store handshake secret")
	}

	logger.Info("Handshake started",
		slog.String("provider", provider.String()),
		slog.String("client_id", clientID),
	)

	return authorizationURL, nil
}

// SocialLogin resolves a provider credential to an account.
func (srv *loginService) SocialLogin(ctx context.Context, input usecase.SocialLoginInput) (*usecase.Resolution, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	isLinking := input.LinkAccountID != ""

	// 1. Resolve the adapter and verify the redirect target before any
	// provider traffic
	adapter, err := srv.registry.Get(input.Provider)
	if err != nil {
		return nil, err
	}
	if configured := adapter.RedirectURI(); configured != "" && input.RedirectURI != configured {
		return nil, domainerrors.ErrValidation.WithDetails("redirectUri does not match the configured value")
	}

	// 2. The adapter variant dictates which credential fields are required;
	// an incomplete credential is rejected before any network call
	cred := input.Credential
	_, threeLegged := adapter.(service.HandshakeAdapter)
	if threeLegged {
		if cred.OAuthToken == "" || cred.OAuthVerifier == "" {
			return nil, domainerrors.ErrValidation.WithDetails("missing oauth_token or oauth_verifier")
		}
	} else if cred.Code == "" && cred.NativePayload == "" {
		return nil, domainerrors.ErrValidation.WithDetails("missing authorization code or native payload")
	}

	// 3. Linking requests must name an account the directory knows; resolve
	// it up front so a bad target never reaches the provider or the store
	if isLinking {
		if _, err := srv.directory.GetAccountByID(ctx, input.LinkAccountID); err != nil {
			if errors.Is(err, service.ErrAccountNotFound) {
				logger.Warn("Linking target account not found",
					slog.String("account_id", input.LinkAccountID),
				)

				return nil, domainerrors.ErrValidation.WithDetails("linking target account not found")
			}

			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to read linking target account")
		}
	}

	// 4. Three-legged flows consume their pending handshake secret exactly
	// once; an absent secret means the handshake expired
	if threeLegged {
		secret, err := srv.store.GetHandshakeSecret(ctx, input.ClientID)
		if err != nil {
			if errors.Is(err, repository.ErrHandshakeSecretNotFound) {
				return nil, domainerrors.ErrHandshakeExpired
			}

			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to read handshake secret")
		}
		if err := srv.store.DeleteHandshakeSecret(ctx, input.ClientID); err != nil {
			logger.Warn("Failed to delete handshake secret",
				slog.String("client_id", input.ClientID),
				slog.Any("error", err),
			)
		}
		cred.RequestSecret = secret
	}

	// 5. Exchange the credential and fetch the normalized profile
	token, err := adapter.ExchangeCode(ctx, cred)
	if err != nil {
		return nil, err
	}
	profile, err := adapter.FetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	// 6. Look up the stored identity
	identity, err := srv.store.GetIdentity(ctx, input.Provider, profile.ProviderUserID)
	exists := true
	if err != nil {
		if !errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to read identity")
		}
		exists = false
	}

	// 7. A linking request for an already-linked identity is a conflict
	if isLinking && exists {
		logger.Info("Linking conflict: identity already linked",
			slog.String("provider", input.Provider.String()),
		)

		return &usecase.Resolution{Outcome: usecase.OutcomeConflictExists}, nil
	}

	// 8. A first login whose email already belongs to an account resolves
	// read-only: report the collision and the account's linked providers
	if !isLinking && !exists && profile.Email != "" {
		resolution, err := srv.checkEmailCollision(ctx, profile)
		if err != nil {
			return nil, err
		}
		if resolution != nil {
			return resolution, nil
		}
	}

	// 9. Pick the account id: the linking target, the stored link, or a
	// synthesized id for a brand-new identity
	var accountID string
	switch {
	case isLinking:
		accountID = input.LinkAccountID
	case exists:
		accountID = identity.LinkedAccountID
	default:
		accountID = input.Provider.SynthesizedAccountID(profile.ProviderUserID)
	}

	// 10. Persist the identity. The conditional create turns a concurrent
	// first login into a conflict for the loser
	updated := &entity.SocialIdentity{
		Provider:        input.Provider,
		ProviderUserID:  profile.ProviderUserID,
		AccessToken:     token.AccessToken,
		LinkedAccountID: accountID,
		Extra:           token.Extra,
	}
	if exists {
		err = srv.store.UpdateIdentity(ctx, updated)
	} else {
		err = srv.store.CreateIdentity(ctx, updated)
		if errors.Is(err, repository.ErrIdentityExists) {
			logger.Info("Lost identity creation race",
				slog.String("provider", input.Provider.String()),
			)

			return &usecase.Resolution{Outcome: usecase.OutcomeConflictExists}, nil
		}
	}
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to persist identity")
	}

	// 11. Bring the directory record up to date. Failures degrade to a
	// skipped update; they never fail the login
	newAccount := srv.syncDirectory(ctx, logger, accountID, profile, isLinking)

	if isLinking {
		logger.Info("Identity linked",
			slog.String("provider", input.Provider.String()),
			slog.String("account_id", accountID),
		)

		return &usecase.Resolution{Outcome: usecase.OutcomeLinked, AccountID: accountID}, nil
	}

	// 12. Mint the session token; a failure here is its own failure kind
	sessionToken, err := srv.directory.IssueSessionToken(ctx, accountID)
	if err != nil {
		return nil, domainerrors.ErrTokenIssue.WrapMessage("failed to issue session token")
	}

	// 13. Publish the login event best-effort
	event := &service.LoginEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:  accountID,
		Provider:   input.Provider.String(),
		NewAccount: newAccount,
	}
	if err := srv.publisher.PublishLoginEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish login event",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
	}

	logger.Info("Login resolved",
		slog.String("provider", input.Provider.String()),
		slog.String("account_id", accountID),
		slog.Bool("new_account", newAccount),
	)

	return &usecase.Resolution{
		Outcome:      usecase.OutcomeResolved,
		AccountID:    accountID,
		SessionToken: sessionToken,
	}, nil
}

// checkEmailCollision reports whether another account already owns the
// profile's email. Returns a ConflictEmail resolution when it does, nil when
// the email is free.
func (srv *loginService) checkEmailCollision(ctx context.Context, profile *service.NormalizedProfile) (*usecase.Resolution, error) {
	account, err := srv.directory.GetAccountByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, nil
		}

		return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to look up account by email")
	}

	linked, err := srv.store.GetLinkedProviders(ctx, account.ID)
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to enumerate linked providers")
	}

	providers := make([]string, 0, len(linked))
	for provider := range linked {
		providers = append(providers, provider.String())
	}
	sort.Strings(providers)

	return &usecase.Resolution{
		Outcome:         usecase.OutcomeConflictEmail,
		Email:           profile.Email,
		LinkedProviders: providers,
		Candidate:       profile,
	}, nil
}

// syncDirectory patches blank directory fields from the provider profile,
// creating the account when a first login finds none. Returns true when the
// account was created by this call.
func (srv *loginService) syncDirectory(ctx context.Context, logger *slog.Logger, accountID string, profile *service.NormalizedProfile, isLinking bool) bool {
	account, err := srv.directory.GetAccountByID(ctx, accountID)
	if err == nil {
		fields := blankFieldPatch(account, profile)
		if fields.IsZero() {
			return false
		}
		if err := srv.directory.PatchAccount(ctx, accountID, fields); err != nil {
			logger.Warn("Directory update skipped",
				slog.String("account_id", accountID),
				slog.Any("error", err),
			)
		}

		return false
	}

	if !errors.Is(err, service.ErrAccountNotFound) {
		logger.Warn("Directory update skipped",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)

		return false
	}

	// Linking targets are caller-supplied existing accounts; never create
	// one on their behalf
	if isLinking {
		logger.Warn("Linking target account not found",
			slog.String("account_id", accountID),
		)

		return false
	}

	if err := srv.directory.CreateAccount(ctx, accountID, entity.AccountFields{
		DisplayName: profile.DisplayName,
		PhotoURL:    profile.PhotoURL,
		Email:       profile.Email,
	}); err != nil {
		logger.Error("Failed to create directory account",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// blankFieldPatch returns the profile fields that may be written: only
// fields the account holds blank and the profile holds non-empty.
func blankFieldPatch(account *entity.AccountRecord, profile *service.NormalizedProfile) entity.AccountFields {
	var fields entity.AccountFields
	if account.DisplayName == "" && profile.DisplayName != "" {
		fields.DisplayName = profile.DisplayName
	}
	if account.PhotoURL == "" && profile.PhotoURL != "" {
		fields.PhotoURL = profile.PhotoURL
	}
	if account.Email == "" && profile.Email != "" {
		fields.Email = profile.Email
	}

	return fields
}
