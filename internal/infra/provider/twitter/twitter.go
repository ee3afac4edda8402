// Package twitter implements the three-legged OAuth1.0a adapter for Twitter.
// The signing protocol is delegated to dghubble/oauth1; this package maps the
// handshake steps onto the adapter contract.
package twitter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"socialgate/config"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"

	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
)

const (
	defaultRequestTokenURL = "https://api.twitter.com/oauth/request_token"
	defaultAuthorizeURL    = "https://api.twitter.com/oauth/authenticate"
	defaultAccessTokenURL  = "https://api.twitter.com/oauth/access_token"
	defaultProfileURL      = "https://api.twitter.com/1.1/account/verify_credentials.json"

	requestTimeout = 10 * time.Second
)

// Adapter drives the Twitter three-legged handshake and normalizes profiles.
type Adapter struct {
	oauthConfig *oauth1.Config
	callbackURL string
	profileURL  string
	client      *http.Client
}

// New creates a Twitter adapter from provider configuration.
func New(cfg *config.OAuth1ProviderConfig) *Adapter {
	return &Adapter{
		oauthConfig: &oauth1.Config{
			ConsumerKey:    cfg.ConsumerKey,
			ConsumerSecret: cfg.ConsumerSecret,
			CallbackURL:    cfg.CallbackURL,
			Endpoint: oauth1.Endpoint{
				RequestTokenURL: defaultRequestTokenURL,
				AuthorizeURL:    defaultAuthorizeURL,
				AccessTokenURL:  defaultAccessTokenURL,
			},
		},
		callbackURL: cfg.CallbackURL,
		profileURL:  defaultProfileURL,
		client:      &http.Client{Timeout: requestTimeout},
	}
}

// Provider returns the provider identifier.
func (a *Adapter) Provider() entity.Provider {
	return entity.ProviderTwitter
}

// RedirectURI returns the configured callback target.
func (a *Adapter) RedirectURI() string {
	return a.callbackURL
}

// BeginHandshake obtains a request token pair and builds the URL the user
// must visit to authorize the application.
func (a *Adapter) BeginHandshake(_ context.Context) (string, string, string, error) {
	requestToken, requestSecret, err := a.oauthConfig.RequestToken()
	if err != nil {
		return "", "", "", &domainerrors.ProviderAuthError{
			Provider: entity.ProviderTwitter.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "request token fetch failed",
			Err:      err,
		}
	}

	authorizationURL, err := a.oauthConfig.AuthorizationURL(requestToken)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to build authorization URL")
	}

	return requestToken, requestSecret, authorizationURL.String(), nil
}

// ExchangeCode trades the callback token and verifier, together with the
// request secret stored at handshake begin, for an access token pair.
func (a *Adapter) ExchangeCode(_ context.Context, cred service.Credential) (*service.ProviderToken, error) {
	accessToken, accessSecret, err := a.oauthConfig.AccessToken(cred.OAuthToken, cred.RequestSecret, cred.OAuthVerifier)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderTwitter.String(),
			Stage:    domainerrors.StageTokenExchange,
			Detail:   "access token exchange failed",
			Err:      err,
		}
	}

	return &service.ProviderToken{
		AccessToken: accessToken,
		Extra: map[string]string{
			"accessTokenSecret": accessSecret,
		},
	}, nil
}

// FetchProfile calls verify_credentials with a signed client and normalizes
// the result. The email field is only present when the app is whitelisted
// for it.
func (a *Adapter) FetchProfile(ctx context.Context, token *service.ProviderToken) (*service.NormalizedProfile, error) {
	ctx = context.WithValue(ctx, oauth1.HTTPClient, a.client)
	signed := a.oauthConfig.Client(ctx, oauth1.NewToken(token.AccessToken, token.Extra["accessTokenSecret"]))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL+"?include_email=true", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	resp, err := signed.Do(req)
	if err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderTwitter.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderTwitter.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint returned status " + resp.Status,
		}
	}

	var profileResp struct {
		IDStr           string `json:"id_str"`
		Name            string `json:"name"`
		ScreenName      string `json:"screen_name"`
		Email           string `json:"email"`
		ProfileImageURL string `json:"profile_image_url_https"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profileResp); err != nil {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderTwitter.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "unparsable profile response",
			Err:      err,
		}
	}
	if profileResp.IDStr == "" {
		return nil, &domainerrors.ProviderAuthError{
			Provider: entity.ProviderTwitter.String(),
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile missing provider user id",
		}
	}

	return &service.NormalizedProfile{
		ProviderUserID: profileResp.IDStr,
		Email:          profileResp.Email,
		DisplayName:    profileResp.Name,
		PhotoURL:       profileResp.ProfileImageURL,
		Extra: map[string]string{
			"screenName": profileResp.ScreenName,
		},
	}, nil
}
