package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"socialgate/internal/domain/service"
	mockSvc "socialgate/internal/mocks/service"
	"socialgate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestThumbnailService(t *testing.T) (
	usecase.ThumbnailUsecase,
	*mockSvc.MockObjectStorage,
	*mockSvc.MockImageConverter,
) {
	storage := mockSvc.NewMockObjectStorage(t)
	converter := mockSvc.NewMockImageConverter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewThumbnailService(storage, converter, t.TempDir(), logger)

	return svc, storage, converter
}

func TestThumbnailService_ProcessStorageObject_GeneratesAllVariants(t *testing.T) {
	svc, storage, converter := createTestThumbnailService(t)

	ctx := context.Background()
	storage.EXPECT().Download(ctx, "uploads/photo.jpg", mock.Anything).Return(nil)
	converter.EXPECT().Convert(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(3)

	var uploadedKeys []string
	storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, "image/jpeg").Run(func(_ context.Context, _ string, key string, _ string) {
		uploadedKeys = append(uploadedKeys, key)
	}).Return(nil).Times(3)

	err := svc.ProcessStorageObject(ctx, &service.StorageObjectEvent{
		Bucket:      "media",
		Name:        "uploads/photo.jpg",
		ContentType: "image/jpeg",
		EventType:   "OBJECT_FINALIZE",
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"uploads/thumb_photo.jpg",
		"uploads/preview_photo.jpg",
		"uploads/preview_lg_photo.jpg",
	}, uploadedKeys)
}

func TestThumbnailService_ProcessStorageObject_SkipsDeletion(t *testing.T) {
	svc, _, _ := createTestThumbnailService(t)

	err := svc.ProcessStorageObject(context.Background(), &service.StorageObjectEvent{
		Name:        "uploads/photo.jpg",
		ContentType: "image/jpeg",
		EventType:   "OBJECT_DELETE",
	})

	require.NoError(t, err)
}

func TestThumbnailService_ProcessStorageObject_SkipsNonImage(t *testing.T) {
	svc, _, _ := createTestThumbnailService(t)

	err := svc.ProcessStorageObject(context.Background(), &service.StorageObjectEvent{
		Name:        "uploads/report.pdf",
		ContentType: "application/pdf",
		EventType:   "OBJECT_FINALIZE",
	})

	require.NoError(t, err)
}

func TestThumbnailService_ProcessStorageObject_SkipsGeneratedVariants(t *testing.T) {
	svc, _, _ := createTestThumbnailService(t)

	for _, name := range []string{"uploads/thumb_photo.jpg", "uploads/preview_photo.jpg", "uploads/preview_lg_photo.jpg"} {
		err := svc.ProcessStorageObject(context.Background(), &service.StorageObjectEvent{
			Name:        name,
			ContentType: "image/jpeg",
			EventType:   "OBJECT_FINALIZE",
		})
		require.NoError(t, err)
	}
}

func TestThumbnailService_ProcessStorageObject_VariantFailureContinues(t *testing.T) {
	svc, storage, converter := createTestThumbnailService(t)

	ctx := context.Background()
	storage.EXPECT().Download(ctx, "photo.png", mock.Anything).Return(nil)

	// First variant fails, the remaining two still run
	converter.EXPECT().Convert(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("convert crashed")).Once()
	converter.EXPECT().Convert(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, "image/png").Return(nil).Times(2)

	err := svc.ProcessStorageObject(ctx, &service.StorageObjectEvent{
		Name:        "photo.png",
		ContentType: "image/png",
		EventType:   "OBJECT_FINALIZE",
	})

	require.NoError(t, err)
}

func TestThumbnailService_ProcessStorageObject_DownloadFailure(t *testing.T) {
	svc, storage, _ := createTestThumbnailService(t)

	ctx := context.Background()
	storage.EXPECT().Download(ctx, "photo.png", mock.Anything).Return(errors.New("object gone"))

	err := svc.ProcessStorageObject(ctx, &service.StorageObjectEvent{
		Name:        "photo.png",
		ContentType: "image/png",
		EventType:   "OBJECT_FINALIZE",
	})

	require.Error(t, err)
}
