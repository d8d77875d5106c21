package storage

import (
	"context"
	"fmt"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/pkg/exceptions"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseUrl string
}

func NewMinioStorage(minioClient *minio.Client, publicBaseUrl string) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseUrl: strings.TrimRight(publicBaseUrl, "/"),
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, content io.Reader, size int64) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fmt.Sprintf("%s/%s/%s", m.PublicBaseUrl, bucketName, objectName), nil
}
