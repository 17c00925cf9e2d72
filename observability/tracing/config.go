package tracing

import "time"

const (
	reconnectionPeriod = 30 * time.Second
	clientTimeout      = 10 * time.Second
	batchTimeout       = 5 * time.Second
	maxExportBatchSize = 512
	shutdownTimeout    = 5 * time.Second
)

// Config holds the configuration for the tracing system.
type Config struct {
	// Disable installs a no-op tracer provider.
	Disable bool `yaml:"disable" default:"false"`

	// SampleRate is the fraction of root traces that are recorded, between 0 and 1.
	SampleRate float64 `yaml:"sample_rate" default:"1" validate:"gte=0,lte=1"`

	// ExporterHost is the OTLP gRPC collector host.
	ExporterHost string `yaml:"exporter_host" validate:"required_unless=Disable true"`

	// ExporterPort is the OTLP gRPC collector port.
	ExporterPort int `yaml:"exporter_port" default:"4317"`

	// Tags are added as resource attributes to all spans.
	Tags map[string]string `yaml:"tags"`
}
