package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, objectName string, data []byte, contentType string) error
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
