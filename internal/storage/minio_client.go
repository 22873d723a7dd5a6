package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"ukmprhub/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, folder string, data []byte, contentType, ext string) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
	ObjectName(url string) (string, bool)
}

type MinIOClient struct {
	client  *minio.Client
	config  config.MinIO
	baseURL string
}

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

// NewMinIOClient connects to the configured endpoint and makes sure the
// bucket exists and is publicly readable.
func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.BucketName, err)
		}

		if err := client.SetBucketPolicy(ctx, cfg.BucketName, fmt.Sprintf(publicReadPolicy, cfg.BucketName)); err != nil {
			log.Printf("Warning: could not make bucket %s public: %v", cfg.BucketName, err)
		}

		log.Printf("Created bucket %s", cfg.BucketName)
	}

	return &MinIOClient{
		client:  client,
		config:  cfg,
		baseURL: publicBaseURL(cfg),
	}, nil
}

func publicBaseURL(cfg config.MinIO) string {
	base := cfg.PublicURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}
	return strings.TrimSuffix(base, "/") + "/" + cfg.BucketName + "/"
}

func (m *MinIOClient) UploadImage(ctx context.Context, folder string, data []byte, contentType, ext string) (string, error) {
	now := time.Now()
	objectName := fmt.Sprintf("%s/%d/%02d/%s%s",
		folder,
		now.Year(),
		now.Month(),
		uuid.NewString(),
		ext)

	_, err := m.client.PutObject(ctx, m.config.BucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return m.baseURL + objectName, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.BucketName, objectName,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return fmt.Errorf("failed to delete from MinIO: %w", err)
	}
	return nil
}

// ObjectName extracts the object key from a URL produced by UploadImage.
func (m *MinIOClient) ObjectName(url string) (string, bool) {
	if !strings.HasPrefix(url, m.baseURL) {
		return "", false
	}
	return strings.TrimPrefix(url, m.baseURL), true
}
