// Package objectstore uploads user media to Google Cloud Storage.
package objectstore

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"

	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

var ErrNotConfigured = errors.New("gcs not configured")

type GCSUploader struct {
	Client *storage.Client
	Bucket string
}

func NewGCSUploader(client *storage.Client, bucket string) *GCSUploader {
	return &GCSUploader{Client: client, Bucket: bucket}
}

// Upload writes r to objectPath and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if u == nil || u.Client == nil || u.Bucket == "" {
		return "", ErrNotConfigured
	}
	return helpers.UploadObject(ctx, u.Client, u.Bucket, objectPath, contentType, r)
}
