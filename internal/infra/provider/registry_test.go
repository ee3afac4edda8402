package provider

import (
	"testing"

	"socialgate/config"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Providers: &config.ProvidersConfig{
			Facebook: &config.OAuth2ProviderConfig{ClientID: "fb", ClientSecret: "s"},
			Twitter:  &config.OAuth1ProviderConfig{ConsumerKey: "tw", ConsumerSecret: "s"},
		},
	}

	registry := NewRegistryFromConfig(cfg)

	adapter, err := registry.Get(entity.ProviderFacebook)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderFacebook, adapter.Provider())

	// Unconfigured providers are absent, not stubbed
	_, err = registry.Get(entity.ProviderInstagram)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_PROVIDER", appErr.ErrorCode())
}

func TestRegistry_GetHandshake(t *testing.T) {
	cfg := &config.Config{
		Providers: &config.ProvidersConfig{
			Facebook: &config.OAuth2ProviderConfig{ClientID: "fb", ClientSecret: "s"},
			Twitter:  &config.OAuth1ProviderConfig{ConsumerKey: "tw", ConsumerSecret: "s"},
		},
	}

	registry := NewRegistryFromConfig(cfg)

	handshake, err := registry.GetHandshake(entity.ProviderTwitter)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTwitter, handshake.Provider())

	// Authorization-code providers have no three-legged handshake
	_, err = registry.GetHandshake(entity.ProviderFacebook)
	require.Error(t, err)
}

func TestRegistry_EmptyConfig(t *testing.T) {
	registry := NewRegistryFromConfig(&config.Config{})

	_, err := registry.Get(entity.ProviderGoogle)
	require.Error(t, err)
}
