package contracts

import (
	"context"
	"io"
	"time"
)

// ObjectStorage keeps medical-record file bytes out of the database.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectName string) error
}
