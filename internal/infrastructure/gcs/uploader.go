package gcs

import (
	"context"
	"io"

	"cloud.google.com/go/storage"

	"github.com/oksasatya/nexus-admin/pkg/helpers"
)

// Uploader writes export blobs into a single bucket.
type Uploader struct {
	Client *storage.Client
	Bucket string
}

func NewUploader(client *storage.Client, bucket string) *Uploader {
	return &Uploader{Client: client, Bucket: bucket}
}

func (u *Uploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	return helpers.UploadObject(ctx, u.Client, u.Bucket, objectPath, contentType, r)
}
