package storage

import (
	"bytes"
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	Client     *minio.Client
	BucketName string
}

func NewMinioStorage(client *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		Client:     client,
		BucketName: bucketName,
	}
}

func (s *minioStorage) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := s.Client.PutObject(ctx, s.BucketName, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.BucketName)
	}
	return nil
}

func (s *minioStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.Client.PresignedGetObject(ctx, s.BucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, s.BucketName)
	}
	return presignedURL.String(), nil
}
