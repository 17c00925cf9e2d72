// Package val provides validation functions for request and config schemas.
package val

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate //nolint: gochecknoglobals // validator caches struct metadata, one instance per process

func init() { //nolint: gochecknoinits // custom validations must be registered before first use
	validate = validator.New()
	validate.RegisterTagNameFunc(getTagName)
	registerCustomValidations(validate)
}

func getValidator() *validator.Validate {
	return validate
}

// getTagName returns the name of a struct field based on its struct tags.
// It checks 'json', 'query', 'params' and 'yaml' tags in that order, and falls back
// to the field name if none of those tags have a non-empty name component.
func getTagName(fld reflect.StructField) string {
	for _, tagName := range []string{"json", "query", "params", "yaml"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tagName), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return fld.Name
}
