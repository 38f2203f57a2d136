package checks

import (
	"context"
	"fmt"

	"country-catalog/core/storage"
	"country-catalog/feature/countries/summary"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes where the summary image lives and whether it is there.
type StorageReport struct {
	Driver        string `json:"driver"`
	Bucket        string `json:"bucket,omitempty"`
	BucketExists  *bool  `json:"bucket_exists,omitempty"`
	SummaryExists bool   `json:"summary_exists"`
}

// CheckStorage inspects the artifact backend. client is nil for the local driver.
func CheckStorage(ctx context.Context, client storage.Client, bucket string, sink summary.Sink) (*StorageReport, error) {
	report := &StorageReport{Driver: storage.DriverLocal}

	if client != nil {
		report.Driver = storage.DriverS3
		report.Bucket = bucket

		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket existence: %w", err)
		}
		report.BucketExists = &exists
		if !exists {
			return report, nil
		}
	}

	exists, err := sink.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check summary image: %w", err)
	}
	report.SummaryExists = exists
	return report, nil
}

// FixStorage creates the bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if client == nil {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
