package application

import (
	"context"
	"io"
)

// EmailPublisher queues email jobs. *helpers.RabbitPublisher satisfies it.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ImageUploader stores an image and returns its URL.
type ImageUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// ViewerResolver names the user acting in ctx.
type ViewerResolver interface {
	ViewerID(ctx context.Context) string
}
