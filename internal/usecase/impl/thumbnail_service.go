package impl

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	deliverycontext "socialgate/internal/delivery/context"
	"socialgate/internal/domain/service"
	"socialgate/internal/usecase"

	"github.com/pkg/errors"
)

// Generated variants carry these name prefixes; objects that already have
// one are never reprocessed.
const (
	thumbPrefix   = "thumb_"
	previewPrefix = "preview_"

	deleteEventType = "OBJECT_DELETE"
)

// contentTypeExtensions maps image content types onto working-file
// extensions the convert tool recognizes.
var contentTypeExtensions = map[string]string{
	"image/png":  ".png",
	"image/bmp":  ".bmp",
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/tiff": ".tif",
}

// variant describes one derived image.
type variant struct {
	prefix string
	args   []string
}

// variants generated for every accepted upload: a centered square thumbnail
// and two width-bounded previews.
var thumbnailVariants = []variant{
	{
		prefix: thumbPrefix,
		args:   []string{"-resize", "128x", "-resize", "x128<", "-gravity", "center", "-crop", "128x128+0+0"},
	},
	{
		prefix: previewPrefix,
		args:   []string{"-resize", "200x"},
	},
	{
		prefix: previewPrefix + "lg_",
		args:   []string{"-resize", "800x"},
	},
}

// thumbnailService implements the ThumbnailUsecase interface.
type thumbnailService struct {
	storage   service.ObjectStorage
	converter service.ImageConverter
	tempDir   string
	logger    *slog.Logger
}

// NewThumbnailService is the constructor for thumbnailService.
func NewThumbnailService(
	storage service.ObjectStorage,
	converter service.ImageConverter,
	tempDir string,
	logger *slog.Logger,
) usecase.ThumbnailUsecase {
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &thumbnailService{
		storage:   storage,
		converter: converter,
		tempDir:   tempDir,
		logger:    logger,
	}
}

// ProcessStorageObject generates the thumbnail variants for an uploaded
// image. Objects outside the pipeline's scope are skipped silently;
// per-variant failures do not abort the remaining variants.
func (srv *thumbnailService) ProcessStorageObject(ctx context.Context, event *service.StorageObjectEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	// 1. Filter out events the pipeline does not apply to
	if skip, reason := shouldSkip(event); skip {
		logger.Debug("Skipping storage object",
			slog.String("name", event.Name),
			slog.String("reason", reason),
		)

		return nil
	}

	// 2. Download the original into scratch space
	ext := contentTypeExtensions[event.ContentType]
	if ext == "" {
		ext = ".png"
	}

	workDir, err := os.MkdirTemp(srv.tempDir, "thumbnail-")
	if err != nil {
		return errors.Wrap(err, "failed to create scratch directory")
	}
	defer os.RemoveAll(workDir)

	srcPath := filepath.Join(workDir, "original"+ext)
	if err := srv.storage.Download(ctx, event.Name, srcPath); err != nil {
		return errors.Wrapf(err, "failed to download %s", event.Name)
	}

	// 3. Generate and upload each variant next to the source object
	objectDir, objectBase := path.Split(event.Name)
	var generated int
	for _, v := range thumbnailVariants {
		destPath := filepath.Join(workDir, v.prefix+objectBase)
		if err := srv.converter.Convert(ctx, srcPath, destPath, v.args); err != nil {
			logger.Error("Variant conversion failed",
				slog.String("name", event.Name),
				slog.String("variant", v.prefix),
				slog.Any("error", err),
			)

			continue
		}

		destKey := objectDir + v.prefix + objectBase
		if err := srv.storage.Upload(ctx, destPath, destKey, event.ContentType); err != nil {
			logger.Error("Variant upload failed",
				slog.String("name", event.Name),
				slog.String("variant", v.prefix),
				slog.Any("error", err),
			)

			continue
		}
		generated++
	}

	logger.Info("Storage object processed",
		slog.String("name", event.Name),
		slog.Int("variants", generated),
	)

	return nil
}

// shouldSkip reports whether the event falls outside the pipeline, with the
// reason for the log line.
func shouldSkip(event *service.StorageObjectEvent) (bool, string) {
	if event.EventType == deleteEventType {
		return true, "deletion event"
	}
	if !strings.HasPrefix(event.ContentType, "image/") {
		return true, "not an image"
	}

	base := path.Base(event.Name)
	if strings.HasPrefix(base, thumbPrefix) || strings.HasPrefix(base, previewPrefix) {
		return true, "already a generated variant"
	}

	return false, ""
}
