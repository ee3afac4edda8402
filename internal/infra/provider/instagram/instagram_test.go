package instagram

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
		RedirectURI:  "https://app.example.com/callback",
	})
	if tokenURL != "" {
		adapter.tokenURL = tokenURL
	}
	if profileURL != "" {
		adapter.profileURL = profileURL
	}

	return adapter
}

func TestAdapter_ExchangeCode_InlineUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-id", r.PostFormValue("client_id"))
		assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))
		assert.Equal(t, "the-code", r.PostFormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "ig-token",
			"user": {"id": "123", "username": "gram", "full_name": "Gram User", "profile_picture": "https://cdn/ig.jpg"}
		}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	token, err := adapter.ExchangeCode(context.Background(), service.Credential{Code: "the-code"})

	require.NoError(t, err)
	assert.Equal(t, "ig-token", token.AccessToken)
	assert.Equal(t, "123", token.Extra["userId"])

	// The inline user object serves the profile without a second round trip
	profile, err := adapter.FetchProfile(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "123", profile.ProviderUserID)
	assert.Equal(t, "Gram User", profile.DisplayName)
	assert.Equal(t, "https://cdn/ig.jpg", profile.PhotoURL)
	assert.Equal(t, "gram", profile.Extra["username"])
}

func TestAdapter_ExchangeCode_ProviderErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_type": "OAuthException", "code": 400, "error_message": "Matching code was not found."}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	_, err := adapter.ExchangeCode(context.Background(), service.Credential{Code: "stale"})

	require.Error(t, err)

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.StageTokenExchange, authErr.Stage)
	assert.Equal(t, "Matching code was not found.", authErr.ProviderMessage)
}

func TestAdapter_ExchangeCode_UnparsableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	_, err := adapter.ExchangeCode(context.Background(), service.Credential{Code: "the-code"})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Empty(t, authErr.ProviderMessage)
}

func TestAdapter_FetchProfile_Endpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ig-token", r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{"data": {"id": "123", "username": "gram", "full_name": "Gram User"}, "meta": {"code": 200}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter("", server.URL)

	profile, err := adapter.FetchProfile(context.Background(), &service.ProviderToken{AccessToken: "ig-token", Extra: map[string]string{}})

	require.NoError(t, err)
	assert.Equal(t, "123", profile.ProviderUserID)
}

func TestAdapter_FetchProfile_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {}, "meta": {"code": 200}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter("", server.URL)

	_, err := adapter.FetchProfile(context.Background(), &service.ProviderToken{AccessToken: "ig-token", Extra: map[string]string{}})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.StageProfileFetch, authErr.Stage)
}
