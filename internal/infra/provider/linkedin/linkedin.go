// Package linkedin implements the authorization-code adapter for LinkedIn
// using the OpenID Connect userinfo endpoint.
package linkedin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"socialgate/config"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTokenURL   = "https://www.linkedin.com/oauth/v2/accessToken"
	defaultProfileURL = "https://api.linkedin.com/v2/userinfo"

	requestTimeout = 10 * time.Second
)

// Adapter exchanges LinkedIn authorization codes and normalizes profiles.
type Adapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	profileURL   string
	client       *http.Client
}

// New creates a LinkedIn adapter from provider configuration.
func New(cfg *config.OAuth2ProviderConfig) *Adapter {
	return &Adapter{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		tokenURL:     defaultTokenURL,
		profileURL:   defaultProfileURL,
		client:       &http.Client{Timeout: requestTimeout},
	}
}

// Provider returns the provider identifier.
func (a *Adapter) Provider() entity.Provider {
	return entity.ProviderLinkedIn
}

// RedirectURI returns the configured redirect target.
func (a *Adapter) RedirectURI() string {
	return a.redirectURI
}

// ExchangeCode exchanges an authorization code for an access token.
func (a *Adapter) ExchangeCode(ctx context.Context, cred service.Credential) (*service.ProviderToken, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", cred.Code)
	data.Set("redirect_uri", a.redirectURI)
	data.Set("client_id", a.clientID)
	data.Set("client_secret", a.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "token endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "failed to read token response",
			Err:      err,
		}
	}

	var tokenResp struct {
		AccessToken      string `json:"access_token"`
		ExpiresIn        int    `json:"expires_in"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "unparsable token response",
			Err:      err,
		}
	}
	if resp.StatusCode != http.StatusOK || tokenResp.AccessToken == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider:        entity.ProviderLinkedIn.String(),
			Stage:           domainerrors.StageTokenExchange,
			Detail:          "token endpoint returned status " + resp.Status,
			ProviderMessage: tokenResp.ErrorDescription,
		}
	}

	return &service.ProviderToken{AccessToken: tokenResp.AccessToken}, nil
}

// FetchProfile retrieves the OIDC userinfo document and normalizes it.
func (a *Adapter) FetchProfile(ctx context.Context, token *service.ProviderToken) (*service.NormalizedProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint returned status " + resp.Status,
		}
	}

	var profileResp struct {
		Sub     string `json:"sub"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profileResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "unparsable profile response",
			Err:      err,
		}
	}
	if profileResp.Sub == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderLinkedIn.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile missing provider user id",
		}
	}

	return &service.NormalizedProfile{
		ProviderUserID: profileResp.Sub,
		Email:          profileResp.Email,
		DisplayName:    profileResp.Name,
		PhotoURL:       profileResp.Picture,
	}, nil
}
