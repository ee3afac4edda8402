// Package handler contains the echo handlers for the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "socialgate/internal/delivery/context"
	"socialgate/internal/delivery/http/response"
	"socialgate/internal/domain/entity"
	domainerrors "socialgate/internal/domain/errors"
	"socialgate/internal/domain/service"
	"socialgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginHandler serves the social login and handshake endpoints.
type LoginHandler struct {
	loginUsecase usecase.LoginUsecase
	logger       *slog.Logger
}

// NewLoginHandler is the constructor for LoginHandler.
func NewLoginHandler(loginUsecase usecase.LoginUsecase, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		loginUsecase: loginUsecase,
		logger:       logger,
	}
}

// loginRequest is the inbound login callback. Field names follow the wire
// contract the mobile clients already speak.
type loginRequest struct {
	Provider      string `query:"provider" form:"provider" json:"provider" validate:"required"`
	Code          string `query:"code" form:"code" json:"code"`
	NativePayload string `query:"nativePayload" form:"nativePayload" json:"nativePayload"`
	OAuthToken    string `query:"oauth_token" form:"oauth_token" json:"oauth_token"`
	OAuthVerifier string `query:"oauth_verifier" form:"oauth_verifier" json:"oauth_verifier"`
	RedirectURI   string `query:"redirectUri" form:"redirectUri" json:"redirectUri"`
	ClientID      string `query:"clientId" form:"clientId" json:"clientId"`
	// UID is the linking target account; its presence switches the request
	// into linking mode.
	UID string `query:"uid" form:"uid" json:"uid"`
}

// handshakeRequest starts a three-legged handshake.
type handshakeRequest struct {
	Provider    string `query:"provider" validate:"required"`
	ClientID    string `query:"clientId" validate:"required"`
	RedirectURI string `query:"redirectUri"`
}

// Login resolves a provider callback or native credential. Every outcome is
// reported over HTTP 200; the body carries the distinction.
func (h *LoginHandler) Login(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.Any("error", err))

		return response.GenericError(c)
	}
	if err := c.Validate(&req); err != nil {
		logger.Warn("Login request validation failed", slog.Any("error", err))

		return response.GenericError(c)
	}

	provider, ok := entity.ParseProvider(req.Provider)
	if !ok {
		logger.Warn("Unknown provider", slog.String("provider", req.Provider))

		return response.GenericError(c)
	}

	resolution, err := h.loginUsecase.SocialLogin(c.Request().Context(), usecase.SocialLoginInput{
		Provider: provider,
		Credential: service.Credential{
			Code:          req.Code,
			NativePayload: req.NativePayload,
			OAuthToken:    req.OAuthToken,
			OAuthVerifier: req.OAuthVerifier,
		},
		RedirectURI:   req.RedirectURI,
		LinkAccountID: req.UID,
		ClientID:      req.ClientID,
	})
	if err != nil {
		return h.renderLoginError(c, logger, provider, err)
	}

	switch resolution.Outcome {
	case usecase.OutcomeResolved:
		return response.Token(c, resolution.SessionToken)
	case usecase.OutcomeLinked:
		return response.Linked(c)
	case usecase.OutcomeConflictExists:
		return response.AlreadyExists(c, provider)
	case usecase.OutcomeConflictEmail:
		return response.EmailExists(c, resolution.Email, resolution.LinkedProviders, resolution.Candidate)
	default:
		logger.Error("Unexpected resolution outcome", slog.String("outcome", string(resolution.Outcome)))

		return response.GenericError(c)
	}
}

// renderLoginError logs the failure and collapses it to the caller-visible
// body: the provider-supplied reason when present, the generic error body
// otherwise.
func (h *LoginHandler) renderLoginError(c echo.Context, logger *slog.Logger, provider entity.Provider, err error) error {
	var authErr *domainerrors.ProviderAuthError
	if errors.As(err, &authErr) {
		logger.Warn("Provider authentication failed",
			slog.String("provider", authErr.Provider),
			slog.String("stage", authErr.Stage),
			slog.String("detail", authErr.Detail),
			slog.Any("error", err),
		)
		if authErr.ProviderMessage != "" {
			return response.Message(c, authErr.ProviderMessage)
		}

		return response.GenericError(c)
	}

	logger.Error("Login failed",
		slog.String("provider", provider.String()),
		slog.Any("error", err),
	)

	return response.GenericError(c)
}

// Handshake starts a three-legged handshake and redirects the user to the
// provider authorization page.
func (h *LoginHandler) Handshake(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	var req handshakeRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind handshake request", slog.Any("error", err))

		return response.GenericError(c)
	}
	if err := c.Validate(&req); err != nil {
		logger.Warn("Handshake request validation failed", slog.Any("error", err))

		return response.GenericError(c)
	}

	provider, ok := entity.ParseProvider(req.Provider)
	if !ok {
		logger.Warn("Unknown provider", slog.String("provider", req.Provider))

		return response.GenericError(c)
	}

	authorizationURL, err := h.loginUsecase.BeginHandshake(c.Request().Context(), provider, req.ClientID, req.RedirectURI)
	if err != nil {
		logger.Error("Failed to begin handshake",
			slog.String("provider", provider.String()),
			slog.Any("error", err),
		)

		return response.GenericError(c)
	}

	return c.Redirect(http.StatusFound, authorizationURL)
}
