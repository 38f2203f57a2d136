package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the backend: "local" (filesystem directory) or "s3" (S3/MinIO).
	Driver string `mapstructure:"driver" default:"local"`
	// LocalDir is the directory used by the local driver.
	LocalDir string `mapstructure:"local_dir" default:"cache"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding the summary image.
	Bucket string `mapstructure:"bucket" default:"countries"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheTTLSeconds is how long the summary image is served from memory. Zero keeps it until the next refresh.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// CacheTTL returns the in-memory summary image lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// IsS3 reports whether the S3/MinIO backend is selected.
func (c Config) IsS3() bool {
	return c.Driver == DriverS3
}
