package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/minutemind/minutemind/pkg/config"
)

// MinIOClient wraps MinIO operations for proof and audio uploads
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinIOClient creates a new MinIO client
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
	}

	ctx := context.Background()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// UploadProof stores a proof-of-completion file under the task's prefix
// and returns the object name
func (m *MinIOClient) UploadProof(ctx context.Context, taskID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("proofs/%s/%d%s", taskID, time.Now().UnixNano(), path.Ext(filename))
	if err := m.upload(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}
	return objectName, nil
}

// UploadAudio stores a meeting recording and returns the object name
func (m *MinIOClient) UploadAudio(ctx context.Context, meetingID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("audio/%s/%d%s", meetingID, time.Now().UnixNano(), path.Ext(filename))
	if err := m.upload(ctx, objectName, reader, size, contentType); err != nil {
		return "", err
	}
	return objectName, nil
}

func (m *MinIOClient) upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// GetFileURL gets a presigned URL for accessing a file. When a public URL
// is configured the internal endpoint is swapped for it, which keeps links
// working behind a reverse proxy.
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	urlStr := url.String()
	if m.publicURL != "" {
		scheme := url.Scheme + "://" + url.Host
		urlStr = strings.Replace(urlStr, scheme, strings.TrimRight(m.publicURL, "/"), 1)
	}
	return urlStr, nil
}
