package toml

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
)

// ErrUnknownKey is wrapped by strict decoding when input has no matching field
var ErrUnknownKey = errors.New("unknown key")

// Unmarshal parses data and decodes it into v, ignoring unknown keys
func Unmarshal(data []byte, v any) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(m, v)
}

// UnmarshalStrict is Unmarshal that rejects keys with no destination field
func UnmarshalStrict(data []byte, v any) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	return DecodeStrict(m, v)
}

// Decode maps parsed values onto v, a non-nil pointer. Struct fields match the
// `toml` tag name, or the field name when untagged.
func Decode(data map[string]any, v any) error {
	return decode(data, v, false)
}

// DecodeStrict is Decode that fails on unknown keys, naming the dotted path
func DecodeStrict(data map[string]any, v any) error {
	return decode(data, v, true)
}

func decode(data map[string]any, v any, strict bool) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("toml: decode target must be a non-nil pointer")
	}
	d := decoder{strict: strict}
	return d.value("", data, rv.Elem())
}

type decoder struct {
	strict bool
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexed(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func mismatch(path string, data any, rv reflect.Value) error {
	return fmt.Errorf("toml: %s: cannot decode %T into %s", path, data, rv.Type())
}

func (d decoder) value(path string, data any, rv reflect.Value) error {
	if data == nil {
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.value(path, data, rv.Elem())

	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return mismatch(path, data, rv)
		}
		rv.Set(reflect.ValueOf(data))
		return nil

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return mismatch(path, data, rv)
		}
		return d.table(path, m, rv)

	case reflect.Map:
		m, ok := data.(map[string]any)
		if !ok || rv.Type().Key().Kind() != reflect.String {
			return mismatch(path, data, rv)
		}
		out := reflect.MakeMapWithSize(rv.Type(), len(m))
		for k, item := range m {
			ev := reflect.New(rv.Type().Elem()).Elem()
			if err := d.value(join(path, k), item, ev); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), ev)
		}
		rv.Set(out)
		return nil

	case reflect.Slice, reflect.Array:
		items, ok := asList(data)
		if !ok {
			return mismatch(path, data, rv)
		}
		if rv.Kind() == reflect.Array {
			if len(items) != rv.Len() {
				return fmt.Errorf("toml: %s: need %d elements, got %d", path, rv.Len(), len(items))
			}
		} else {
			rv.Set(reflect.MakeSlice(rv.Type(), len(items), len(items)))
		}
		for i, item := range items {
			if err := d.value(indexed(path, i), item, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return mismatch(path, data, rv)
		}
		rv.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return mismatch(path, data, rv)
		}
		rv.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := data.(int64)
		if !ok {
			return mismatch(path, data, rv)
		}
		if rv.OverflowInt(n) {
			return fmt.Errorf("toml: %s: %d overflows %s", path, n, rv.Type())
		}
		rv.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := data.(int64)
		if !ok {
			return mismatch(path, data, rv)
		}
		if n < 0 || rv.OverflowUint(uint64(n)) {
			return fmt.Errorf("toml: %s: %d out of range for %s", path, n, rv.Type())
		}
		rv.SetUint(uint64(n))
		return nil

	case reflect.Float32, reflect.Float64:
		var f float64
		switch n := data.(type) {
		case float64:
			f = n
		case int64:
			f = float64(n)
		default:
			return mismatch(path, data, rv)
		}
		if rv.Kind() == reflect.Float32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return fmt.Errorf("toml: %s: %g overflows float32", path, f)
		}
		rv.SetFloat(f)
		return nil
	}
	return fmt.Errorf("toml: %s: unsupported type %s", path, rv.Type())
}

func asList(data any) ([]any, bool) {
	switch v := data.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func (d decoder) table(path string, m map[string]any, rv reflect.Value) error {
	fields := fieldsOf(rv.Type())
	if d.strict {
		if err := unknownKeys(path, m, fields); err != nil {
			return err
		}
	}
	for _, f := range fields {
		item, ok := m[f.key]
		if !ok {
			continue
		}
		if err := d.value(join(path, f.key), item, rv.FieldByIndex(f.index)); err != nil {
			return err
		}
	}
	return nil
}

func unknownKeys(path string, m map[string]any, fields []field) error {
	var unknown []string
	for k := range m {
		if !slices.ContainsFunc(fields, func(f field) bool { return f.key == k }) {
			unknown = append(unknown, join(path, k))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return fmt.Errorf("toml: %w: %s", ErrUnknownKey, strings.Join(unknown, ", "))
}

// field is a decodable struct field with its resolved key
type field struct {
	key       string
	index     []int
	omitEmpty bool
}

// fieldsOf lists exported fields in declaration order
func fieldsOf(t reflect.Type) []field {
	var out []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := sf.Name
		var opts string
		if tag, ok := sf.Tag.Lookup("toml"); ok {
			name, rest, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
			opts = rest
		}
		out = append(out, field{key: key, index: sf.Index, omitEmpty: opts == "omitempty"})
	}
	return out
}
