package directory

import (
	"log/slog"

	"socialgate/config"
	"socialgate/internal/domain/constants"
	"socialgate/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params holds dependencies for the account directory, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Auth   *auth.Client `optional:"true"`
	DB     *gorm.DB     `optional:"true"`
}

// New creates an AccountDirectory based on configuration.
func New(params Params) (service.AccountDirectory, error) {
	backend := constants.DirectoryFirebase
	if params.Config.Directory != nil && params.Config.Directory.Provider != "" {
		backend = params.Config.Directory.Provider
	}

	switch backend {
	case constants.DirectoryFirebase:
		if params.Auth == nil {
			return nil, errors.New("firebase directory requires firebase configuration")
		}
		params.Logger.Info("Using Firebase Auth account directory")

		return NewFirebaseDirectory(params.Auth), nil

	case constants.DirectoryLocal:
		if params.DB == nil {
			return nil, errors.New("local directory requires postgres configuration")
		}
		if params.Config.Directory == nil || params.Config.Directory.SessionSecret == "" {
			return nil, errors.New("local directory requires a session secret")
		}
		params.Logger.Info("Using local account directory")

		return NewLocalDirectory(params.DB, params.Config.Directory), nil

	default:
		return nil, errors.Errorf("unknown directory backend: %s", backend)
	}
}

// Module provides the account directory FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
