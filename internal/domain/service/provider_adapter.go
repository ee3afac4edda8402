package service

import (
	"context"

	"socialgate/internal/domain/entity"
)

// NormalizedProfile is the provider-agnostic shape every adapter produces.
// ProviderUserID is mandatory; its absence is a profile fetch failure.
type NormalizedProfile struct {
	ProviderUserID string
	Email          string            // empty when the provider withholds it
	DisplayName    string
	PhotoURL       string
	Extra          map[string]string // provider-specific profile fields
}

// Credential carries the provider-specific inbound credential material. Which
// fields are set depends on the adapter variant handling the request.
type Credential struct {
	Code          string // OAuth2 authorization code from a redirect callback
	NativePayload string // access token or server auth code from a native flow
	OAuthToken    string // OAuth1.0a request token echoed on the callback
	OAuthVerifier string // OAuth1.0a verifier from the callback
	RequestSecret string // OAuth1.0a request secret stored at handshake begin
}

// ProviderToken is the result of a successful credential exchange.
type ProviderToken struct {
	AccessToken string
	Extra       map[string]string // refresh token, token secret, server auth code
}

// ProviderAdapter performs the provider-specific handshake to obtain an
// access token and a normalized profile. Implementations encapsulate all
// protocol detail so the resolver stays provider-agnostic.
type ProviderAdapter interface {
	// Provider returns the stable provider identifier.
	Provider() entity.Provider

	// RedirectURI returns the configured redirect target for this provider,
	// or empty when the flow has none (native token flows).
	RedirectURI() string

	// ExchangeCode turns the inbound credential into an access token. Network
	// failures, non-200 responses and unparsable bodies surface as a
	// ProviderAuthError in the token_exchange stage.
	ExchangeCode(ctx context.Context, cred Credential) (*ProviderToken, error)

	// FetchProfile retrieves the normalized profile for an access token.
	// Failures, including a missing provider user id, surface as a
	// ProviderAuthError in the profile_fetch stage.
	FetchProfile(ctx context.Context, token *ProviderToken) (*NormalizedProfile, error)
}

// HandshakeAdapter is implemented by three-legged (OAuth1.0a) adapters that
// need a provider round trip before the user can be redirected.
type HandshakeAdapter interface {
	ProviderAdapter

	// BeginHandshake obtains a request token and secret from the provider and
	// builds the user authorization URL.
	BeginHandshake(ctx context.Context) (requestToken, requestSecret, authorizationURL string, err error)
}

// AdapterRegistry resolves provider names to their configured adapters.
type AdapterRegistry interface {
	// Get returns the adapter for the provider, or an unknown-provider error.
	Get(p entity.Provider) (ProviderAdapter, error)

	// GetHandshake returns the adapter when it supports a three-legged
	// handshake.
	GetHandshake(p entity.Provider) (HandshakeAdapter, error)
}
