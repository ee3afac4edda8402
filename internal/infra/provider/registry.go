// Package provider assembles the configured identity provider adapters into
// a lookup registry used by the login delivery layer.
package provider

import (
	"socialgate/config"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"
	"socialgate/internal/infra/provider/facebook"
	"socialgate/internal/infra/provider/google"
	"socialgate/internal/infra/provider/instagram"
	"socialgate/internal/infra/provider/linkedin"
	"socialgate/internal/infra/provider/twitter"
)

// Registry resolves provider names to their configured adapters. Providers
// without configuration are absent, not stubbed.
type Registry struct {
	adapters map[entity.Provider]service.ProviderAdapter
}

// NewRegistry builds a registry over the given adapters.
func NewRegistry(adapters ...service.ProviderAdapter) *Registry {
	registry := &Registry{
		adapters: make(map[entity.Provider]service.ProviderAdapter, len(adapters)),
	}
	for _, adapter := range adapters {
		registry.adapters[adapter.Provider()] = adapter
	}

	return registry
}

// NewRegistryFromConfig builds adapters for every provider with credentials
// in the configuration.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	if cfg.Providers == nil {
		return NewRegistry()
	}

	var adapters []service.ProviderAdapter
	if cfg.Providers.Instagram != nil {
		adapters = append(adapters, instagram.New(cfg.Providers.Instagram))
	}
	if cfg.Providers.Facebook != nil {
		adapters = append(adapters, facebook.New(cfg.Providers.Facebook))
	}
	if cfg.Providers.LinkedIn != nil {
		adapters = append(adapters, linkedin.New(cfg.Providers.LinkedIn))
	}
	if cfg.Providers.Google != nil {
		adapters = append(adapters, google.New(cfg.Providers.Google))
	}
	if cfg.Providers.Twitter != nil {
		adapters = append(adapters, twitter.New(cfg.Providers.Twitter))
	}

	return NewRegistry(adapters...)
}

// Get returns the adapter registered for the provider.
func (r *Registry) Get(p entity.Provider) (service.ProviderAdapter, error) {
	adapter, ok := r.adapters[p]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WithDetails("provider " + p.String() + " is not configured")
	}

	return adapter, nil
}

// GetHandshake returns the adapter when it supports a three-legged handshake.
func (r *Registry) GetHandshake(p entity.Provider) (service.HandshakeAdapter, error) {
	adapter, err := r.Get(p)
	if err != nil {
		return nil, err
	}

	handshake, ok := adapter.(service.HandshakeAdapter)
	if !ok {
		return nil, domainerrors.ErrValidation.WithDetails("provider " + p.String() + " has no handshake flow")
	}

	return handshake, nil
}
