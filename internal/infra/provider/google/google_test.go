package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialgate/config"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(tokenURL, profileURL string) *Adapter {
	adapter := New(&config.OAuth2ProviderConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})
	if tokenURL != "" {
		adapter.tokenURL = tokenURL
	}
	if profileURL != "" {
		adapter.profileURL = profileURL
	}

	return adapter
}

func TestAdapter_ExchangeCode_RawAccessToken(t *testing.T) {
	adapter := newTestAdapter("", "")

	token, err := adapter.ExchangeCode(context.Background(), service.Credential{NativePayload: "ya29.raw-token"})

	require.NoError(t, err)
	assert.Equal(t, "ya29.raw-token", token.AccessToken)
}

func TestAdapter_ExchangeCode_PayloadAccessToken(t *testing.T) {
	adapter := newTestAdapter("", "")

	token, err := adapter.ExchangeCode(context.Background(), service.Credential{
		NativePayload: `{"accessToken": "ya29.json-token"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, "ya29.json-token", token.AccessToken)
}

func TestAdapter_ExchangeCode_ServerAuthCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))
		assert.Equal(t, "4/auth-code", r.PostFormValue("code"))

		_, _ = w.Write([]byte(`{"access_token": "ya29.exchanged", "refresh_token": "1//refresh", "expires_in": 3599}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	token, err := adapter.ExchangeCode(context.Background(), service.Credential{
		NativePayload: `{"serverAuthCode": "4/auth-code"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, "ya29.exchanged", token.AccessToken)
	assert.Equal(t, "1//refresh", token.Extra["refreshToken"])
}

func TestAdapter_ExchangeCode_ServerAuthCodeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant", "error_description": "Code was already redeemed."}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	_, err := adapter.ExchangeCode(context.Background(), service.Credential{
		NativePayload: `{"serverAuthCode": "4/used"}`,
	})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Code was already redeemed.", authErr.ProviderMessage)
}

func TestAdapter_ExchangeCode_EmptyPayload(t *testing.T) {
	adapter := newTestAdapter("", "")

	_, err := adapter.ExchangeCode(context.Background(), service.Credential{NativePayload: `{}`})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.StageTokenExchange, authErr.Stage)
}

func TestAdapter_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id": "g-1", "email": "g@example.com", "name": "Goo User", "picture": "https://cdn/g.jpg"}`))
	}))
	defer server.Close()

	adapter := newTestAdapter("", server.URL)

	profile, err := adapter.FetchProfile(context.Background(), &service.ProviderToken{AccessToken: "ya29.token"})

	require.NoError(t, err)
	assert.Equal(t, "g-1", profile.ProviderUserID)
	assert.Equal(t, "g@example.com", profile.Email)
	assert.Equal(t, "Goo User", profile.DisplayName)
}

func TestAdapter_FetchProfile_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := newTestAdapter("", server.URL)

	_, err := adapter.FetchProfile(context.Background(), &service.ProviderToken{AccessToken: "expired"})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.StageProfileFetch, authErr.Stage)
}

func TestAdapter_RedirectURI_Empty(t *testing.T) {
	adapter := newTestAdapter("", "")

	assert.Empty(t, adapter.RedirectURI())
}
