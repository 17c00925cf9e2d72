package files

import (
	"context"
	"path"
	"strings"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/docview/filestore"
	"github.com/rise-and-shine/docview/layout"
	"github.com/rise-and-shine/docview/observability/logger"
)

// SidecarConfig locates the layout sidecar written by the parser.
type SidecarConfig struct {
	DefaultBucket string `yaml:"default_bucket" default:"mds"          validate:"required"`
	Suffix        string `yaml:"suffix"         default:"_middle.json" validate:"required"`
	MaxSize       int64  `yaml:"max_size"       default:"67108864"     validate:"min=0"`
}

// BucketResolver lists the buckets the parser writes its output to.
type BucketResolver interface {
	Buckets(ctx context.Context) ([]string, error)
}

// SidecarResolver derives the sidecar location of a file and loads it.
type SidecarResolver struct {
	cfg     SidecarConfig
	buckets BucketResolver
	store   filestore.FileStore
}

// NewSidecarResolver creates a resolver reading sidecars through store.
func NewSidecarResolver(cfg SidecarConfig, buckets BucketResolver, store filestore.FileStore) *SidecarResolver {
	return &SidecarResolver{cfg: cfg, buckets: buckets, store: store}
}

// SidecarKey returns the sidecar object key for a file object key:
// the base name without its last extension, plus the configured suffix.
//
//	a/b/report.v2.pdf -> report.v2_middle.json
func (r *SidecarResolver) SidecarKey(objectKey string) string {
	return stem(objectKey) + r.cfg.Suffix
}

// Bucket returns the first bucket reported by the parser config,
// or the default bucket when it cannot be read or lists nothing.
func (r *SidecarResolver) Bucket(ctx context.Context) string {
	buckets, err := r.buckets.Buckets(ctx)
	if err != nil {
		logger.Named("sidecar").WithContext(ctx).With("default_bucket", r.cfg.DefaultBucket).Warnx(err)
		return r.cfg.DefaultBucket
	}
	if len(buckets) == 0 || buckets[0] == "" {
		return r.cfg.DefaultBucket
	}
	return buckets[0]
}

// Fetch loads and decodes the sidecar of f.
// Every failure is returned with code CodeSidecarUnavailable.
func (r *SidecarResolver) Fetch(ctx context.Context, f *File) (*layout.Document, error) {
	bucket := r.Bucket(ctx)
	key := r.SidecarKey(f.MinioPath)
	details := errx.D{"bucket": bucket, "key": key, "file_id": f.ID}

	data, err := filestore.ReadAll(ctx, r.store.WithBucket(bucket), key, r.cfg.MaxSize)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeSidecarUnavailable), errx.WithDetails(details))
	}

	doc, err := layout.Decode(data)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeSidecarUnavailable), errx.WithDetails(details))
	}

	return doc, nil
}

func stem(objectKey string) string {
	objectKey = strings.TrimRight(objectKey, "/")
	if objectKey == "" {
		return ""
	}

	name := path.Base(objectKey)
	ext := path.Ext(name)
	if ext == name || ext == "." {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
