package services

import (
	"context"

	"booking/pkg/media"
)

// MediaUploader is the media service as seen by the resource handlers.
// *media.Client implements it.
type MediaUploader interface {
	Upload(ctx context.Context, f media.File, publicID, folder string) (string, error)
	Destroy(ctx context.Context, publicID string) error
}

var _ MediaUploader = (*media.Client)(nil)
