// Package parsercfg resolves the object store buckets the document parser writes its
// artifacts to.
//
// Buckets come from an explicit list in the service config or, when that is empty,
// from the parser's own JSON config file, whose "bucket_info" object is keyed by
// bucket name in priority order.
package parsercfg

import (
	"context"
	"encoding/json"
	"os"

	"github.com/code19m/errx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	CodeConfigUnavailable = "PARSER_CONFIG_UNAVAILABLE"
	CodeInvalidConfig     = "PARSER_CONFIG_INVALID"
)

// Config selects where bucket names come from.
type Config struct {
	// Buckets is an explicit, ordered bucket list. It takes precedence over ConfigFile.
	Buckets []string `yaml:"buckets"`

	// ConfigFile is the path of the parser JSON config holding "bucket_info".
	ConfigFile string `yaml:"config_file"`
}

// Resolver lists parser buckets. The config file is re-read on every call so
// parser reconfiguration is picked up without a restart.
type Resolver struct {
	cfg Config
}

// New creates a Resolver.
func New(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Buckets returns bucket names in priority order.
func (r *Resolver) Buckets(_ context.Context) ([]string, error) {
	if len(r.cfg.Buckets) > 0 {
		return r.cfg.Buckets, nil
	}

	if r.cfg.ConfigFile == "" {
		return nil, errx.New("no parser bucket source configured", errx.WithCode(CodeConfigUnavailable))
	}

	raw, err := os.ReadFile(r.cfg.ConfigFile)
	if err != nil {
		return nil, errx.Wrap(
			err,
			errx.WithCode(CodeConfigUnavailable),
			errx.WithDetails(errx.D{"path": r.cfg.ConfigFile}),
		)
	}

	return parseBucketInfo(raw)
}

type parserConfig struct {
	BucketInfo *orderedmap.OrderedMap[string, json.RawMessage] `json:"bucket_info"`
}

func parseBucketInfo(raw []byte) ([]string, error) {
	var cfg parserConfig
	err := json.Unmarshal(raw, &cfg)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	if cfg.BucketInfo == nil {
		return nil, errx.New("parser config has no bucket_info", errx.WithCode(CodeInvalidConfig))
	}

	buckets := make([]string, 0, cfg.BucketInfo.Len())
	for pair := cfg.BucketInfo.Oldest(); pair != nil; pair = pair.Next() {
		buckets = append(buckets, pair.Key)
	}
	return buckets, nil
}
