package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"socialgate/internal/delivery/http/validator"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"
	mockUsecase "socialgate/internal/mocks/usecase"
	"socialgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLoginHandler(t *testing.T) (*LoginHandler, *mockUsecase.MockLoginUsecase) {
	loginUsecase := mockUsecase.NewMockLoginUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewLoginHandler(loginUsecase, logger), loginUsecase
}

func loginContext(query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/social/login?"+query.Encode(), nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestLoginHandler_Login_Resolved(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.MatchedBy(func(input usecase.SocialLoginInput) bool {
			return input.Provider == entity.ProviderFacebook && input.Credential.Code == "the-code"
		})).
		Return(&usecase.Resolution{
			Outcome:      usecase.OutcomeResolved,
			AccountID:    "acct-1",
			SessionToken: "session-token",
		}, nil)

	c, rec := loginContext(url.Values{"provider": {"facebook"}, "code": {"the-code"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"token": "session-token"}, decodeBody(t, rec))
}

func TestLoginHandler_Login_Linked(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.MatchedBy(func(input usecase.SocialLoginInput) bool {
			return input.LinkAccountID == "acct-1"
		})).
		Return(&usecase.Resolution{Outcome: usecase.OutcomeLinked, AccountID: "acct-1"}, nil)

	c, rec := loginContext(url.Values{"provider": {"linkedin"}, "code": {"the-code"}, "uid": {"acct-1"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"linked": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_InstagramConflictKeepsLegacyKey(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(&usecase.Resolution{Outcome: usecase.OutcomeConflictExists}, nil)

	c, rec := loginContext(url.Values{"provider": {"instagram"}, "code": {"c"}, "uid": {"acct-1"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, map[string]any{"instagramUserAlreadyExists": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_SocialConflict(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(&usecase.Resolution{Outcome: usecase.OutcomeConflictExists}, nil)

	c, rec := loginContext(url.Values{"provider": {"facebook"}, "code": {"c"}, "uid": {"acct-1"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, map[string]any{"socialUserAlreadyExists": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_EmailConflict(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(&usecase.Resolution{
			Outcome:         usecase.OutcomeConflictEmail,
			Email:           "taken@example.com",
			LinkedProviders: []string{"facebook", "twitter"},
			Candidate: &service.NormalizedProfile{
				ProviderUserID: "li-5",
				DisplayName:    "User",
				PhotoURL:       "https://cdn/p.jpg",
			},
		}, nil)

	c, rec := loginContext(url.Values{"provider": {"linkedin"}, "code": {"c"}})

	require.NoError(t, handler.Login(c))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["emailAlreadyExists"])
	assert.Equal(t, "taken@example.com", body["email"])
	assert.Equal(t, []any{"facebook", "twitter"}, body["socialProviders"])
	assert.Equal(t, map[string]any{
		"id":          "li-5",
		"displayName": "User",
		"photoUrl":    "https://cdn/p.jpg",
	}, body["socialUser"])
}

func TestLoginHandler_Login_ProviderMessage(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(nil, &domainerrors.ProviderAuthError{
			Provider:        "instagram",
			Stage:           domainerrors.StageTokenExchange,
			Detail:          "provider rejected authorization code",
			ProviderMessage: "Matching code was not found.",
		})

	c, rec := loginContext(url.Values{"provider": {"instagram"}, "code": {"stale"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Matching code was not found."}, decodeBody(t, rec))
}

func TestLoginHandler_Login_ProviderFailureWithoutMessage(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(nil, &domainerrors.ProviderAuthError{
			Provider: "facebook",
			Stage:    domainerrors.StageProfileFetch,
			Detail:   "profile endpoint returned status 500 Internal Server Error",
		})

	c, rec := loginContext(url.Values{"provider": {"facebook"}, "code": {"c"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, map[string]any{"error": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_HandshakeExpired(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrHandshakeExpired)

	c, rec := loginContext(url.Values{"provider": {"twitter"}, "oauth_token": {"tok"}, "oauth_verifier": {"v"}, "clientId": {"client-1"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, map[string]any{"error": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_InternalError(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		SocialLogin(mock.Anything, mock.Anything).
		Return(nil, errors.New("store down"))

	c, rec := loginContext(url.Values{"provider": {"facebook"}, "code": {"c"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"error": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_MissingProvider(t *testing.T) {
	handler, _ := createTestLoginHandler(t)

	c, rec := loginContext(url.Values{"code": {"c"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, map[string]any{"error": true}, decodeBody(t, rec))
}

func TestLoginHandler_Login_UnknownProvider(t *testing.T) {
	handler, _ := createTestLoginHandler(t)

	c, rec := loginContext(url.Values{"provider": {"myspace"}, "code": {"c"}})

	require.NoError(t, handler.Login(c))
	assert.Equal(t, map[string]any{"error": true}, decodeBody(t, rec))
}

func TestLoginHandler_Handshake_Redirects(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	authURL := "https://api.twitter.com/oauth/authenticate?oauth_token=req-token"
	loginUsecase.EXPECT().
		BeginHandshake(mock.Anything, entity.ProviderTwitter, "client-1", "").
		Return(authURL, nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/social/handshake?provider=twitter&clientId=client-1", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Handshake(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, authURL, rec.Header().Get(echo.HeaderLocation))
}

func TestLoginHandler_Handshake_Failure(t *testing.T) {
	handler, loginUsecase := createTestLoginHandler(t)

	loginUsecase.EXPECT().
		BeginHandshake(mock.Anything, entity.ProviderTwitter, "client-1", "").
		Return("", errors.New("provider unreachable"))

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/social/handshake?provider=twitter&clientId=client-1", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Handshake(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"error": true}, decodeBody(t, rec))
}
