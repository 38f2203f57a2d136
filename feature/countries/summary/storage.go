package summary

import (
	"bytes"
	"context"
	"fmt"
	"io"

	apperrors "country-catalog/core/errors"
	"country-catalog/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectKey is the artifact location inside the bucket.
const ObjectKey = "summary/summary.png"

// StorageSink keeps the artifact in an S3/MinIO bucket.
type StorageSink struct {
	client storage.Client
	bucket string
}

// NewStorageSink creates a sink writing to bucket.
func NewStorageSink(client storage.Client, bucket string) *StorageSink {
	return &StorageSink{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *StorageSink) EnsureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Store renders rec and uploads it, replacing the previous object.
func (s *StorageSink) Store(ctx context.Context, rec Record) error {
	data, err := renderBytes(rec)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, ObjectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: ContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload summary image: %w", err)
	}
	return nil
}

// Exists reports whether the object is present.
func (s *StorageSink) Exists(ctx context.Context) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, ObjectKey, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat summary image: %w", err)
	}
	return true, nil
}

// Open downloads the object.
func (s *StorageSink) Open(ctx context.Context) (*Artifact, error) {
	info, err := s.client.StatObject(ctx, s.bucket, ObjectKey, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("summary image", "")
		}
		return nil, fmt.Errorf("failed to stat summary image: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get summary image: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("summary image", "")
		}
		return nil, fmt.Errorf("failed to read summary image: %w", err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = ContentType
	}
	return &Artifact{Data: data, ContentType: contentType, ModTime: info.LastModified}, nil
}
