package media

import (
	"context"
	"log/slog"

	"socialgate/config"
	"socialgate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes resolved by blob.OpenBucket.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params holds dependencies for the media infrastructure, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket URL.
func NewBucket(params Params) (*blob.Bucket, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// NewStorage creates the object storage over the opened bucket.
func NewStorage(bucket *blob.Bucket) service.ObjectStorage {
	return NewBlobStorage(bucket)
}

// NewConverter creates the image converter from configuration.
func NewConverter(cfg *config.Config, logger *slog.Logger) service.ImageConverter {
	return NewExecConverter(cfg.Media, logger)
}

// Module provides the media FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBucket),
	fx.Provide(NewStorage),
	fx.Provide(NewConverter),
)
