// Package facebook implements the authorization-code adapter for Facebook
// Login using the Graph API.
package facebook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"socialgate/config"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTokenURL   = "https://graph.facebook.com/v12.0/oauth/access_token"
	defaultProfileURL = "https://graph.facebook.com/v12.0/me"

	requestTimeout = 10 * time.Second
)

// Adapter exchanges Facebook authorization codes and normalizes profiles.
type Adapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	profileURL   string
	client       *http.Client
}

// New creates a Facebook adapter from provider configuration.
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
	return entity.ProviderFacebook
}

// RedirectURI returns the configured redirect target.
func (a *Adapter) RedirectURI() string {
	return a.redirectURI
}

// graphError is the envelope Facebook wraps every failure in.
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// ExchangeCode exchanges an authorization code for an access token.
func (a *Adapter) ExchangeCode(ctx context.Context, cred service.Credential) (*service.ProviderToken, error) {
	query := url.Values{}
	query.Set("client_id", a.clientID)
	query.Set("client_secret", a.clientSecret)
	query.Set("redirect_uri", a.redirectURI)
	query.Set("code", cred.Code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.tokenURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "token endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "failed to read token response",
			Err:      err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		var graphErr graphError
		_ = json.Unmarshal(body, &graphErr)

		return nil, &domainerrors.ProviderAuthError{
			Provider:        entity.ProviderFacebook.String(),
			Stage:           domainerrors.StageTokenExchange,
			Detail:          "token endpoint returned status " + resp.Status,
			ProviderMessage: graphErr.Error.Message,
		}
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "unparsable token response",
			Err:      err,
		}
	}
	if tokenResp.AccessToken == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "token response missing access_token",
		}
	}

	return &service.ProviderToken{AccessToken: tokenResp.AccessToken}, nil
}

// FetchProfile retrieves the Graph /me profile and normalizes it.
func (a *Adapter) FetchProfile(ctx context.Context, token *service.ProviderToken) (*service.NormalizedProfile, error) {
	query := url.Values{}
	query.Set("fields", "id,name,email,picture")
	query.Set("access_token", token.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "failed to read profile response",
			Err:      err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		var graphErr graphError
		_ = json.Unmarshal(body, &graphErr)

		return nil, &domainerrors.ProviderAuthError{
			Provider:        entity.ProviderFacebook.String(),
			Stage:           domainerrors.StageProfileFetch,
			Detail:          "profile endpoint returned status " + resp.Status,
			ProviderMessage: graphErr.Error.Message,
		}
	}

	var profileResp struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.Unmarshal(body, &profileResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "unparsable profile response",
			Err:      err,
		}
	}
	if profileResp.ID == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderFacebook.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile missing provider user id",
		}
	}

	return &service.NormalizedProfile{
		ProviderUserID: profileResp.ID,
		Email:          profileResp.Email,
		DisplayName:    profileResp.Name,
		PhotoURL:       profileResp.Picture.Data.URL,
	}, nil
}
