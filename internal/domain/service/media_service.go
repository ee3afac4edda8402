package service

import (
	"context"
)

// ObjectStorage abstracts the bucket the thumbnail pipeline reads originals
// from and writes derived images back to.
type ObjectStorage interface {
	// Download copies a bucket object to a local file path.
	Download(ctx context.Context, key, destPath string) error

	// Upload stores a local file under the given bucket key.
	Upload(ctx context.Context, srcPath, key, contentType string) error
}

// ImageConverter runs the external raster-processing tool over a source file.
// Args are tool arguments between the source and destination paths.
type ImageConverter interface {
	Convert(ctx context.Context, srcPath, destPath string, args []string) error
}
