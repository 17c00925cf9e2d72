// Package cfgloader provides a simple way to load and validate configuration at the start of an application.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// MustLoad loads and validates configuration from a YAML file based on the ENVIRONMENT variable.
// The file must be named ${ENVIRONMENT}.yaml and located in the config directory ("./config" by default).
//
// Before parsing, a .env file is loaded if present and ${VAR} references in the YAML are expanded
// from the environment. Default values come from the `default` struct tag and are applied before
// validation with go-playground/validator (`validate` tag).
//
// Example:
//
//	type Config struct {
//	    Host     string `yaml:"host" validate:"required"`
//	    Port     int    `yaml:"port" default:"8080"`
//	    Password string `yaml:"password" mask:"true"`
//	}
//
// Any failure is logged and terminates the process.
func MustLoad[T any](opts ...Option) T {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		slog.Error(
			"[cfgloader]: ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test",
		)
		os.Exit(1)
	}

	config, err := LoadFile[T](filepath.Join(o.Dir, env+".yaml"))
	if err != nil {
		slog.Error(fmt.Sprintf("[cfgloader]: %s config: %v", env, err))
		os.Exit(1)
	}

	if !o.Silent {
		printConfig(config)
	}

	return config
}

// LoadFile reads, expands, defaults and validates the config at path.
func LoadFile[T any](path string) (T, error) {
	var config T

	if reflect.TypeOf(config) == nil || reflect.TypeOf(config).Kind() == reflect.Pointer {
		return config, errx.New("config type must be a non-pointer struct")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	data = []byte(os.ExpandEnv(string(data)))

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	err = defaults.Set(&config)
	if err != nil {
		return config, errx.Wrap(err)
	}

	err = validateConfig(&config)
	if err != nil {
		return config, errx.Wrap(err)
	}

	return config, nil
}

func validateConfig(config any) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)
	if err == nil {
		return nil
	}

	failedFields := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint: errorlint // Using type assertion for validator errors handling
		for _, fe := range errs {
			tagErr := fe.Tag()
			if fe.Param() != "" {
				tagErr += "=" + fe.Param()
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", fe.Namespace(), tagErr))
		}
	}

	if len(failedFields) == 0 {
		return errx.Wrap(err)
	}

	return errx.New("invalid config fields -> " + strings.Join(failedFields, ",  "))
}
