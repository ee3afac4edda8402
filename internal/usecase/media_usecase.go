package usecase

import (
	"context"

	"socialgate/internal/domain/service"
)

// ThumbnailUsecase defines the interface for the thumbnail pipeline.
type ThumbnailUsecase interface {
	// ProcessStorageObject generates the thumbnail variants for an uploaded
	// image, skipping objects the pipeline does not apply to.
	ProcessStorageObject(ctx context.Context, event *service.StorageObjectEvent) error
}

// PushUsecase defines the interface for templated push notifications.
type PushUsecase interface {
	// NotifyLogin renders the welcome template for a login event and
	// dispatches it to the account's registered device tokens.
	NotifyLogin(ctx context.Context, event *service.LoginEvent) error
}
