// Package instagram implements the authorization-code adapter for the legacy
// Instagram OAuth API. The token endpoint returns the user object inline, so
// a profile fetch usually needs no second round trip.
package instagram

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
	defaultTokenURL   = "https://api.instagram.com/oauth/access_token"
	defaultProfileURL = "https://api.instagram.com/v1/users/self/"

	requestTimeout = 10 * time.Second
)

// Adapter exchanges Instagram authorization codes and normalizes profiles.
type Adapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	profileURL   string
	client       *http.Client
}

// New creates an Instagram adapter from provider configuration.
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
	return entity.ProviderInstagram
}

// RedirectURI returns the configured redirect target.
func (a *Adapter) RedirectURI() string {
	return a.redirectURI
}

// ExchangeCode exchanges an authorization code for an access token. The
// inline user object from the token response is carried in the token extras
// so FetchProfile can serve from it.
func (a *Adapter) ExchangeCode(ctx context.Context, cred service.Credential) (*service.ProviderToken, error) {
	data := url.Values{}
	data.Set("client_id", a.clientID)
	data.Set("client_secret", a.clientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", a.redirectURI)
	data.Set("code", cred.Code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "token endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "failed to read token response",
			Err:      err,
		}
	}

	var tokenResp struct {
		AccessToken  string `json:"access_token"`
		ErrorMessage string `json:"error_message"`
		User         struct {
			ID             string `json:"id"`
			Username       string `json:"username"`
			FullName       string `json:"full_name"`
			ProfilePicture string `json:"profile_picture"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "unparsable token response",
			Err:      err,
		}
	}

	// Instagram reports rejections as error_message with a non-200 status.
	if tokenResp.ErrorMessage != "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider:        entity.ProviderInstagram.String(),
			Stage:           domainerrors.StageTokenExchange,
			Detail:          "provider rejected authorization code",
			ProviderMessage: tokenResp.ErrorMessage,
		}
	}
	if resp.StatusCode != http.StatusOK || tokenResp.AccessToken == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "token endpoint returned status " + resp.Status,
		}
	}

	extra := map[string]string{}
	if tokenResp.User.ID != "" {
		extra["userId"] = tokenResp.User.ID
		extra["username"] = tokenResp.User.Username
		extra["fullName"] = tokenResp.User.FullName
		extra["profilePicture"] = tokenResp.User.ProfilePicture
	}

	return &service.ProviderToken{
		AccessToken: tokenResp.AccessToken,
		Extra:       extra,
	}, nil
}

// FetchProfile normalizes the inline user object when present, falling back
// to the users/self endpoint.
func (a *Adapter) FetchProfile(ctx context.Context, token *service.ProviderToken) (*service.NormalizedProfile, error) {
	if id := token.Extra["userId"]; id != "" {
		return &service.NormalizedProfile{
			ProviderUserID: id,
			DisplayName:    token.Extra["fullName"],
			PhotoURL:       token.Extra["profilePicture"],
			Extra: map[string]string{
				"username": token.Extra["username"],
			},
		}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL+"?access_token="+url.QueryEscape(token.AccessToken), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	var profileResp struct {
		Data struct {
			ID             string `json:"id"`
			Username       string `json:"username"`
			FullName       string `json:"full_name"`
			ProfilePicture string `json:"profile_picture"`
		} `json:"data"`
		Meta struct {
			Code         int    `json:"code"`
			ErrorMessage string `json:"error_message"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profileResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "unparsable profile response",
			Err:      err,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domainerrors.ProviderAuthError{
			Provider:        entity.ProviderInstagram.String(),
			Stage:           domainerrors.StageProfileFetch,
			Detail:          "profile endpoint returned status " + resp.Status,
			ProviderMessage: profileResp.Meta.ErrorMessage,
		}
	}
	if profileResp.Data.ID == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderInstagram.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile missing provider user id",
		}
	}

	return &service.NormalizedProfile{
		ProviderUserID: profileResp.Data.ID,
		DisplayName:    profileResp.Data.FullName,
		PhotoURL:       profileResp.Data.ProfilePicture,
		Extra: map[string]string{
			"username": profileResp.Data.Username,
		},
	}, nil
}
