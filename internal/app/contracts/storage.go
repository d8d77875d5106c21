package contracts

import (
	"context"
	"io"
)

type Storage interface {
	// UploadObject stores the content and returns its public URL.
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, content io.Reader, size int64) (string, error)
}
