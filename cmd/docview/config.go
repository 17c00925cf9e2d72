package main

import (
	"github.com/rise-and-shine/docview/filestore/miniowr"
	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/internal/files"
	"github.com/rise-and-shine/docview/internal/parsercfg"
	"github.com/rise-and-shine/docview/observability/logger"
	"github.com/rise-and-shine/docview/observability/tracing"
	"github.com/rise-and-shine/docview/pg"
)

// Config is the full service configuration loaded from ./config/${ENVIRONMENT}.yaml.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logger   logger.Config  `yaml:"logger"`
	Tracing  tracing.Config `yaml:"tracing"`
	HTTP     server.Config  `yaml:"http"`
	Postgres pg.Config      `yaml:"postgres"`
	Minio    miniowr.Config `yaml:"minio"`
	Sidecar  SidecarConfig  `yaml:"sidecar"`
	Auth     AuthConfig     `yaml:"auth"`
	Files    files.Config   `yaml:"files"`
}

// ServiceConfig identifies the service and its defaults.
type ServiceConfig struct {
	Name        string `yaml:"name"         default:"docview"`
	Version     string `yaml:"version"      default:"dev"`
	DefaultLang string `yaml:"default_lang" default:"zh" validate:"oneof=en zh"`
	DBSchema    string `yaml:"db_schema"    default:"public"`
}

// SidecarConfig combines sidecar lookup with the parser bucket source.
type SidecarConfig struct {
	files.SidecarConfig `yaml:",inline"`

	Parser parsercfg.Config `yaml:"parser"`
}

// AuthConfig verifies caller tokens.
type AuthConfig struct {
	// Secret signs caller tokens with HS256.
	Secret string `yaml:"secret" validate:"required,min=32" mask:"true"`
	Issuer string `yaml:"issuer"`
}
