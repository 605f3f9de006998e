package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig configures the s3-style backend.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinioStore serves s3:// URIs from a MinIO (or S3-compatible) endpoint.
type MinioStore struct {
	client *minio.Client
	logger *slog.Logger
}

func NewMinioStore(cfg MinioConfig, logger *slog.Logger) (*MinioStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioStore{client: client, logger: logger}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *MinioStore) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		s.logger.Info("store.bucket.created", "bucket", bucket)
	}
	return nil
}

func (s *MinioStore) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	scheme, bucket, key, err := SplitURI(uri)
	if err != nil {
		return nil, err
	}
	if scheme != "s3" {
		return nil, fmt.Errorf("minio store cannot serve scheme %q", scheme)
	}
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", uri, err)
	}
	return obj, nil
}

func (s *MinioStore) Put(ctx context.Context, uri string, r io.Reader, size int64, contentType string) error {
	scheme, bucket, key, err := SplitURI(uri)
	if err != nil {
		return err
	}
	if scheme != "s3" {
		return fmt.Errorf("minio store cannot serve scheme %q", scheme)
	}
	_, err = s.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", uri, err)
	}
	s.logger.Debug("store.put.ok", "uri", uri, "size", size)
	return nil
}
