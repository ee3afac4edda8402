// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"socialgate/internal/domain/entity"
	"socialgate/internal/domain/service"
)

// Outcome classifies how a social login resolved.
type Outcome string

const (
	// OutcomeResolved means the identity maps to an account and a session
	// token was issued.
	OutcomeResolved Outcome = "resolved"
	// OutcomeLinked means a linking request attached the identity to the
	// requesting account; no token is issued.
	OutcomeLinked Outcome = "linked"
	// OutcomeConflictExists means a linking request hit an identity that is
	// already linked to an account.
	OutcomeConflictExists Outcome = "conflict_exists"
	// OutcomeConflictEmail means a first login found an existing account
	// with the same email; nothing was written.
	OutcomeConflictEmail Outcome = "conflict_email"
)

// --- Input DTOs ---

// SocialLoginInput defines the data required to resolve a social login.
type SocialLoginInput struct {
	Provider entity.Provider

	// Credential carries the provider-specific inbound material; which
	// fields are set depends on the provider's flow.
	Credential service.Credential

	// RedirectURI is the caller-echoed redirect target. It must exactly
	// equal the provider's configured value.
	RedirectURI string

	// LinkAccountID, when set, switches the request into linking mode for
	// that account.
	LinkAccountID string

	// ClientID identifies the three-legged handshake session, when any.
	ClientID string
}

// --- Output DTOs ---

// Resolution is the terminal outcome of a social login. Conflicts are
// resolutions, not errors: the caller reports them as distinct response
// bodies.
type Resolution struct {
	Outcome      Outcome
	AccountID    string
	SessionToken string

	// Email and LinkedProviders are populated for OutcomeConflictEmail.
	Email           string
	LinkedProviders []string

	// Candidate is the normalized provider profile, populated for
	// OutcomeConflictEmail so the caller can present the unlinked identity.
	Candidate *service.NormalizedProfile
}

// LoginUsecase defines the interface for social login operations.
// This is the contract that the delivery layer depends on.
type LoginUsecase interface {
	// SocialLogin resolves a provider credential to an account.
	SocialLogin(ctx context.Context, input SocialLoginInput) (*Resolution, error)

	// BeginHandshake starts a three-legged handshake for the provider and
	// returns the provider authorization URL to redirect the user to. The
	// redirect URI must match the provider's configured callback.
	BeginHandshake(ctx context.Context, provider entity.Provider, clientID, redirectURI string) (string, error)
}
