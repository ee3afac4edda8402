// Package google implements the native-token adapter for Google Sign-In.
// Native apps either hold an access token already or hand over a server auth
// code that must still be exchanged here.
package google

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
	defaultTokenURL   = "https://oauth2.googleapis.com/token"
	defaultProfileURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	requestTimeout = 10 * time.Second
)

// Adapter accepts Google native credentials and normalizes profiles.
type Adapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	profileURL   string
	client       *http.Client
}

// New creates a Google adapter from provider configuration.
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
	return entity.ProviderGoogle
}

// RedirectURI returns empty: the native flow has no redirect callback.
func (a *Adapter) RedirectURI() string {
	return ""
}

// nativePayload is the structured form of the opaque native credential. A
// payload that is not JSON is treated as a bare access token.
type nativePayload struct {
	AccessToken    string `json:"accessToken"`
	ServerAuthCode string `json:"serverAuthCode"`
}

// ExchangeCode interprets the native payload. An access token passes through
// untouched; a server auth code is exchanged at the token endpoint and the
// refresh token is kept in the extras.
func (a *Adapter) ExchangeCode(ctx context.Context, cred service.Credential) (*service.ProviderToken, error) {
	var payload nativePayload
	if err := json.Unmarshal([]byte(cred.NativePayload), &payload); err != nil {
		payload = nativePayload{AccessToken: cred.NativePayload}
	}

	if payload.AccessToken != "" {
		return &service.ProviderToken{AccessToken: payload.AccessToken}, nil
	}
	if payload.ServerAuthCode == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "native payload carries neither access token nor server auth code",
		}
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", payload.ServerAuthCode)
	data.Set("client_id", a.clientID)
	data.Set("client_secret", a.clientSecret)
	data.Set("redirect_uri", a.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "token endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "failed to read token response",
			Err:      err,
		}
	}

	var tokenResp struct {
		AccessToken      string `json:"access_token"`
		RefreshToken     string `json:"refresh_token"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "unparsable token response",
			Err:      err,
		}
	}
	if resp.StatusCode != http.StatusOK || tokenResp.AccessToken == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider:        entity.ProviderGoogle.String(),
			Stage:           domainerrors.StageTokenExchange,
			Detail:          "token endpoint returned status " + resp.Status,
			ProviderMessage: tokenResp.ErrorDescription,
		}
	}

	extra := map[string]string{}
	if tokenResp.RefreshToken != "" {
		extra["refreshToken"] = tokenResp.RefreshToken
	}

	return &service.ProviderToken{
		AccessToken: tokenResp.AccessToken,
		Extra:       extra,
	}, nil
}

// FetchProfile retrieves the userinfo document and normalizes it.
func (a *Adapter) FetchProfile(ctx context.Context, token *service.ProviderToken) (*service.NormalizedProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint returned status " + resp.Status,
		}
	}

	var profileResp struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profileResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "unparsable profile response",
			Err:      err,
		}
	}
	if profileResp.ID == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderGoogle.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile missing provider user id",
		}
	}

	return &service.NormalizedProfile{
		ProviderUserID: profileResp.ID,
		Email:          profileResp.Email,
		DisplayName:    profileResp.Name,
		PhotoURL:       profileResp.Picture,
	}, nil
}
