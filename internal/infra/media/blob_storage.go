// Package media provides the bucket access and image conversion used by the
// thumbnail pipeline.
package media

import (
	"context"
	"io"
	"os"

	"socialgate/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage creates object storage over a gocloud bucket handle.
func NewBlobStorage(bucket *blob.Bucket) service.ObjectStorage {
	return &blobStorage{bucket: bucket}
}

// Download copies a bucket object to a local file path.
func (s *blobStorage) Download(ctx context.Context, key, destPath string) error {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to open bucket object %s", key)
	}
	defer reader.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, "failed to create local file")
	}
	defer dest.Close()

	if _, err := io.Copy(dest, reader); err != nil {
		return errors.Wrapf(err, "failed to download object %s", key)
	}

	return nil
}

// Upload stores a local file under the given bucket key.
func (s *blobStorage) Upload(ctx context.Context, srcPath, key, contentType string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrap(err, "failed to open local file")
	}
	defer src.Close()

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open bucket writer for %s", key)
	}

	if _, err := io.Copy(writer, src); err != nil {
		writer.Close()

		return errors.Wrapf(err, "failed to upload object %s", key)
	}

	return errors.Wrapf(writer.Close(), "failed to finalize object %s", key)
}
