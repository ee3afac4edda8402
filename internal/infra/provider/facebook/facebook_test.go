package facebook

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

func TestAdapter_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "client-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "the-code", r.URL.Query().Get("code"))
		assert.Equal(t, "https://app.example.com/callback", r.URL.Query().Get("redirect_uri"))

		_, _ = w.Write([]byte(`{"access_token": "fb-token", "token_type": "bearer", "expires_in": 5183999}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	token, err := adapter.ExchangeCode(context.Background(), service.Credential{Code: "the-code"})

	require.NoError(t, err)
	assert.Equal(t, "fb-token", token.AccessToken)
}

func TestAdapter_ExchangeCode_GraphError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "This authorization code has been used.", "type": "OAuthException", "code": 100}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, "")

	_, err := adapter.ExchangeCode(context.Background(), service.Credential{Code: "used"})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.StageTokenExchange, authErr.Stage)
	assert.Equal(t, "This authorization code has been used.", authErr.ProviderMessage)
}

func TestAdapter_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id,name,email,picture", r.URL.Query().Get("fields"))
		assert.Equal(t, "fb-token", r.URL.Query().Get("access_token"))

		_, _ = w.Write([]byte(`{
			"id": "fb-1",
			"name": "Face User",
			"email": "face@example.com",
			"picture": {"data": {"url": "https://cdn/fb.jpg"}}
		}`))
	}))
	defer server.Close()

	adapter := newTestAdapter("", server.URL)

	profile, err := adapter.FetchProfile(context.Background(), &service.ProviderToken{AccessToken: "fb-token"})

	require.NoError(t, err)
	assert.Equal(t, "fb-1", profile.ProviderUserID)
	assert.Equal(t, "Face User", profile.DisplayName)
	assert.Equal(t, "face@example.com", profile.Email)
	assert.Equal(t, "https://cdn/fb.jpg", profile.PhotoURL)
}

func TestAdapter_FetchProfile_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "No ID"}`))
	}))
	defer server.Close()

	adapter := newTestAdapter("", server.URL)

	_, err := adapter.FetchProfile(context.Background(), &service.ProviderToken{AccessToken: "fb-token"})

	var authErr *domainerrors.ProviderAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.StageProfileFetch, authErr.Stage)
}
