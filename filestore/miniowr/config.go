package miniowr

import "time"

// Config defines the configuration options for MinIO client.
type Config struct {
	// Endpoint is the MinIO server endpoint (e.g., "localhost:9000").
	Endpoint string `yaml:"endpoint" validate:"required"`

	// AccessKey is the access key for authentication.
	AccessKey string `yaml:"access_key" validate:"required"`

	// SecretKey is the secret key for authentication.
	SecretKey string `yaml:"secret_key" validate:"required" mask:"true"`

	// Bucket is the bucket holding uploaded files.
	Bucket string `yaml:"bucket" validate:"required"`

	// Region is the bucket region. Setting it avoids a location lookup before presigning.
	Region string `yaml:"region" default:"us-east-1"`

	// UseSSL enables HTTPS connection to MinIO server.
	UseSSL bool `yaml:"use_ssl" default:"false"`

	// RetryAttempts bounds retries of transient failures. 1 disables retrying.
	RetryAttempts uint `yaml:"retry_attempts" default:"3" validate:"min=1"`

	// RetryDelay is the base backoff delay between attempts.
	RetryDelay time.Duration `yaml:"retry_delay" default:"100ms"`
}
