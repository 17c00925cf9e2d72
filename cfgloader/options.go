package cfgloader

// Options holds configuration options for MustLoad.
type Options struct {
	// Silent disables printing of the loaded (masked) config.
	Silent bool

	// Dir is the directory holding ${ENVIRONMENT}.yaml files. Default is "./config".
	Dir string
}

// Option is a functional option for configuring MustLoad behavior.
type Option func(*Options)

// WithSilent disables config logging to stdout.
func WithSilent() Option {
	return func(o *Options) {
		o.Silent = true
	}
}

// WithDir overrides the config directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

func defaultOptions() Options {
	return Options{Dir: "./config"}
}
