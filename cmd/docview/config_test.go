package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/docview/cfgloader"
)

func TestLocalConfig(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_USER", "docview")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
	t.Setenv("AUTH_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("HOME", "/home/parser")

	cfg, err := cfgloader.LoadFile[Config]("../../config/local.yaml")
	require.NoError(t, err)

	assert.Equal(t, "mds", cfg.Sidecar.DefaultBucket)
	assert.Equal(t, "_middle.json", cfg.Sidecar.Suffix)
	assert.Equal(t, "/home/parser/magic-pdf.json", cfg.Sidecar.Parser.ConfigFile)
	assert.Equal(t, time.Hour, cfg.Files.DownloadURLExpiry)
	assert.Equal(t, 100, cfg.Files.MaxPageSize)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Address())
	assert.Equal(t, "files", cfg.Minio.Bucket)
	assert.Equal(t, uint(3), cfg.Minio.RetryAttempts)
	assert.True(t, cfg.Tracing.Disable)
}

func TestLocalConfig_MissingSecret(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_USER", "docview")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
	t.Setenv("AUTH_SECRET", "")

	_, err := cfgloader.LoadFile[Config]("../../config/local.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Auth.Secret")
}

func TestTranslations(t *testing.T) {
	m := translations()

	for _, lang := range []string{"en", "zh"} {
		assert.NotEmpty(t, m[lang]["FILE_NOT_FOUND"], lang)
		assert.NotEmpty(t, m[lang]["ROUTER_ERROR"], lang)
	}
	assert.Equal(t, "暂无识别区域信息", m["zh"]["NO_REGIONS"])
}
