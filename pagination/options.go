package pagination

const (
	defaultPageSize = 20
	defaultMaxSize  = 100
)

// Options configures pagination behavior.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Option func(*Options)

func WithDefaultPageSize(size int) Option {
	return func(o *Options) {
		o.DefaultPageSize = size
	}
}

func WithMaxPageSize(maxSize int) Option {
	return func(o *Options) {
		o.MaxPageSize = maxSize
	}
}

func defaultOptions() Options {
	return Options{DefaultPageSize: defaultPageSize, MaxPageSize: defaultMaxSize}
}
