package entity

import (
	"time"
)

// SocialIdentity links one provider identity to a durable account. The
// (Provider, ProviderUserID) pair is the immutable key; the access token and
// extra attributes are refreshed on every successful login.
type SocialIdentity struct {
	Provider        Provider
	ProviderUserID  string
	AccessToken     string            // opaque provider secret, provider-specific lifetime
	LinkedAccountID string            // at most one account per identity key
	Extra           map[string]string // refresh token, token secret, raw profile fields
	UpdatedAt       time.Time
}

// PendingHandshakeSecret is the per-session request secret of a three-legged
// handshake, keyed by the caller-supplied client id. It is consumed exactly
// once on callback; absence means the handshake expired.
type PendingHandshakeSecret struct {
	ClientID  string
	Secret    string
	CreatedAt time.Time
}
