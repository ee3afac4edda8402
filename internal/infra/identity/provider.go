package identity

import (
	"log/slog"

	"socialgate/config"
	"socialgate/internal/domain/constants"
	"socialgate/internal/domain/repository"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"socialgate/internal/infra/persistence/postgres"
)

// StoreParams holds dependencies for the identity store, injected by Fx.
// Both backends are optional; configuration selects which one must exist.
type StoreParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Database *db.Client `optional:"true"`
	DB       *gorm.DB   `optional:"true"`
}

// NewStore creates an IdentityStore based on configuration.
func NewStore(params StoreParams) (repository.IdentityStore, error) {
	backend := constants.IdentityStoreFirebase
	if params.Config.IdentityStore != nil && params.Config.IdentityStore.Provider != "" {
		backend = params.Config.IdentityStore.Provider
	}

	switch backend {
	case constants.IdentityStoreFirebase:
		if params.Database == nil {
			return nil, errors.New("firebase identity store requires firebase configuration")
		}
		params.Logger.Info("Using Firebase Realtime Database identity store")

		return NewFirebaseStore(params.Database), nil

	case constants.IdentityStorePostgres:
		if params.DB == nil {
			return nil, errors.New("postgres identity store requires postgres configuration")
		}
		params.Logger.Info("Using PostgreSQL identity store")

		return postgres.NewIdentityStore(params.DB), nil

	default:
		return nil, errors.Errorf("unknown identity store backend: %s", backend)
	}
}

// Module provides the identity store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
