// Package response renders the login wire contract. Every outcome is carried
// in the body over HTTP 200; the transport status never distinguishes them.
package response

import (
	"net/http"

	"socialgate/internal/domain/entity"
	"socialgate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SocialUser is the unlinked candidate identity reported on an email
// collision.
type SocialUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// Token reports a resolved login.
func Token(c echo.Context, token string) error {
	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
	})
}

// Linked reports a successful linking request.
func Linked(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"linked": true,
	})
}

// AlreadyExists reports a linking conflict. The instagram key survives from
// the era when it was the only provider; clients still match on it.
func AlreadyExists(c echo.Context, provider entity.Provider) error {
	key := "socialUserAlreadyExists"
	if provider == entity.ProviderInstagram {
		key = "instagramUserAlreadyExists"
	}

	return c.JSON(http.StatusOK, map[string]any{
		key: true,
	})
}

// EmailExists reports an email collision with the account's linked providers
// and the unlinked candidate identity.
func EmailExists(c echo.Context, email string, providers []string, candidate *service.NormalizedProfile) error {
	if providers == nil {
		providers = []string{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"emailAlreadyExists": true,
		"email":              email,
		"socialProviders":    providers,
		"socialUser": SocialUser{
			ID:          candidate.ProviderUserID,
			DisplayName: candidate.DisplayName,
			PhotoURL:    candidate.PhotoURL,
		},
	})
}

// Message reports a provider-supplied human-readable failure reason.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": message,
	})
}

// GenericError reports any other failure. Internal detail never leaks here.
func GenericError(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"error": true,
	})
}
