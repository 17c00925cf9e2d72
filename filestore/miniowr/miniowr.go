// Package miniowr provides a MinIO implementation of the filestore.FileStore interface.
package miniowr

import (
	"context"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rise-and-shine/docview/filestore"
	"github.com/rise-and-shine/docview/observability/logger"
)

const codeNoSuchKey = "NoSuchKey"

// Client implements the filestore.FileStore interface using MinIO.
type Client struct {
	client *minio.Client
	bucket string
	cfg    Config
}

// New creates a new MinIO filestore client bound to cfg.Bucket.
func New(cfg Config) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Client{
		client: client,
		bucket: cfg.Bucket,
		cfg:    cfg,
	}, nil
}

// Bucket returns the bucket this client is bound to.
func (c *Client) Bucket() string {
	return c.bucket
}

// WithBucket returns a client bound to bucket sharing the same connection.
func (c *Client) WithBucket(bucket string) filestore.FileStore {
	return &Client{client: c.client, bucket: bucket, cfg: c.cfg}
}

// Get retrieves an object and its metadata from the specified path.
func (c *Client) Get(ctx context.Context, path string) (*filestore.File, error) {
	var (
		obj  *minio.Object
		stat minio.ObjectInfo
	)

	err := c.withRetry(ctx, "get", path, func() error {
		o, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
		if err != nil {
			return err
		}

		// GetObject is lazy, Stat performs the request
		s, err := o.Stat()
		if err != nil {
			_ = o.Close()
			return err
		}

		obj, stat = o, s
		return nil
	})
	if err != nil {
		return nil, c.wrapMinioError(err, path)
	}

	return &filestore.File{
		Content: obj,
		Info: filestore.FileInfo{
			Path:         path,
			Size:         stat.Size,
			ContentType:  stat.ContentType,
			ETag:         stat.ETag,
			LastModified: stat.LastModified,
		},
	}, nil
}

// Delete removes the object at the specified path.
func (c *Client) Delete(ctx context.Context, path string) error {
	err := c.withRetry(ctx, "delete", path, func() error {
		return c.client.RemoveObject(ctx, c.bucket, path, minio.RemoveObjectOptions{})
	})
	if err != nil {
		return c.wrapMinioError(err, path)
	}
	return nil
}

// PresignedGetURL returns a presigned GET URL valid for expiry.
func (c *Client) PresignedGetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, c.bucket, path, expiry, nil)
	if err != nil {
		return "", c.wrapMinioError(err, path)
	}
	return u.String(), nil
}

// withRetry retries fn on transient failures. Missing objects, access errors and
// context cancellation are returned immediately.
func (c *Client) withRetry(ctx context.Context, op, path string, fn func() error) error {
	log := logger.Named("miniowr").WithContext(ctx)

	return retry.Do(
		fn,
		retry.Attempts(c.cfg.RetryAttempts),
		retry.Delay(c.cfg.RetryDelay),
		retry.MaxJitter(c.cfg.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			log.With("op", op).
				With("bucket", c.bucket).
				With("path", path).
				With("attempt", n+1).
				With("error", err.Error()).
				Warn("retrying minio request")
		}),
		retry.Context(ctx),
	)
}

func isTransient(err error) bool {
	resp := minio.ToErrorResponse(err)
	if resp.Code == codeNoSuchKey || resp.Code == "NoSuchBucket" || resp.Code == "AccessDenied" {
		return false
	}
	if resp.StatusCode != 0 && resp.StatusCode < http.StatusInternalServerError {
		return false
	}
	return true
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == codeNoSuchKey
}

// wrapMinioError converts MinIO errors to filestore error codes.
func (c *Client) wrapMinioError(err error, path string) error {
	details := errx.D{"bucket": c.bucket, "path": path}
	if isNoSuchKey(err) {
		return errx.New(
			"object not found",
			errx.WithCode(filestore.CodeObjectNotFound),
			errx.WithType(errx.T_NotFound),
			errx.WithDetails(details),
		)
	}
	return errx.Wrap(err, errx.WithDetails(details))
}
