package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"

	"auditflow-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadBase64Image(ctx context.Context, imageData []byte, bucketName, fileName, fileExtension string) (string, error) {
	contentType := mime.TypeByExtension(fileExtension)
	if contentType == "" {
		errContentType := fmt.Errorf("unknown content type for extension %s", fileExtension)
		return "", exceptions.ErrMinioCreateObject(errContentType, bucketName)
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		fileName,
		bytes.NewReader(imageData),
		int64(len(imageData)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fileName, nil
}
