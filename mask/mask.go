// Package mask hides sensitive struct fields before values are logged or printed.
package mask

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const tagName = "mask"

//nolint:gochecknoglobals // static interface types used for leaf detection
var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// StructToOrdMap flattens v into an ordered map keyed by field name, nested structs
// joined with dots. Fields tagged `mask:"true"` have non-zero values replaced.
// Names come from the json tag, then the yaml tag, then the Go field name;
// fields tagged "-" are skipped. Types that marshal themselves (time.Time, for
// example) are kept as leaf values.
func StructToOrdMap(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}
	return toOrdMap(reflect.ValueOf(v), "")
}

func toOrdMap(val reflect.Value, prefix string) *orderedmap.OrderedMap[string, any] {
	om := orderedmap.New[string, any]()

	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			om.Set(prefix, nil)
			return om
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		om.Set(prefix, val.Interface())
		return om
	}

	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		name, skip := fieldName(fieldType)
		if skip {
			continue
		}
		if fieldType.Anonymous && name == fieldType.Name {
			// embedded structs are flattened without a prefix
			name = ""
		}
		if prefix != "" {
			name = strings.TrimSuffix(prefix+"."+name, ".")
		}

		switch {
		case strings.EqualFold(fieldType.Tag.Get(tagName), "true"):
			om.Set(name, maskValue(field))
		case isExpandable(field):
			for pair := toOrdMap(field, name).Oldest(); pair != nil; pair = pair.Next() {
				om.Set(pair.Key, pair.Value)
			}
		default:
			om.Set(name, field.Interface())
		}
	}

	return om
}

func isExpandable(val reflect.Value) bool {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return false
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return false
	}

	t := val.Type()
	pt := reflect.PointerTo(t)
	return !t.Implements(jsonMarshalerType) && !pt.Implements(jsonMarshalerType) &&
		!t.Implements(textMarshalerType) && !pt.Implements(textMarshalerType)
}

func maskValue(val reflect.Value) any {
	switch val.Kind() { //nolint:exhaustive // remaining kinds are handled below
	case reflect.Pointer:
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	case reflect.Slice, reflect.Map:
		if val.IsNil() {
			return nil
		}
	}

	// zero values carry no secret
	if val.IsZero() {
		return val.Interface()
	}

	return maskedPlaceholder(val.Kind())
}

func maskedPlaceholder(kind reflect.Kind) string {
	switch kind { //nolint:exhaustive // default covers the rest
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "***masked-int***"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "***masked-uint***"
	case reflect.Float32, reflect.Float64:
		return "***masked-float***"
	case reflect.Slice, reflect.Array:
		return "***masked-slice***"
	default:
		return fmt.Sprintf("***masked-%s***", kind)
	}
}

// fieldName returns the field name (json tag > yaml tag > Go name) and whether to skip it.
func fieldName(field reflect.StructField) (string, bool) {
	for _, tag := range []string{"json", "yaml"} {
		v, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		if v == "-" {
			return "", true
		}
		if name, _, _ := strings.Cut(v, ","); name != "" {
			return name, false
		}
	}
	return field.Name, false
}
