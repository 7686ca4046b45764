package toml

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Marshal encodes a struct or string-keyed map. Struct fields keep declaration
// order, map keys are sorted. Scalars and inline arrays precede sub-tables;
// slices of structs become arrays of tables. Nil pointers are skipped.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New("toml: cannot marshal nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("toml: root must be a table, got %s", rv.Kind())
	}
	var e encoder
	if err := e.table(nil, rv); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
}

// entry is one key of a table being encoded
type entry struct {
	key string
	val reflect.Value
}

func entries(rv reflect.Value) ([]entry, error) {
	var out []entry
	switch rv.Kind() {
	case reflect.Struct:
		for _, f := range fieldsOf(rv.Type()) {
			fv := rv.FieldByIndex(f.index)
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			out = append(out, entry{f.key, fv})
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("toml: map key must be string, got %s", rv.Type().Key())
		}
		for _, k := range rv.MapKeys() {
			out = append(out, entry{k.String(), rv.MapIndex(k)})
		}
		slices.SortFunc(out, func(a, b entry) int { return strings.Compare(a.key, b.key) })
	}
	return out, nil
}

func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, true
}

func isTable(v reflect.Value) bool {
	return v.Kind() == reflect.Struct || v.Kind() == reflect.Map
}

func isTableArray(v reflect.Value) bool {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false
	}
	t := v.Type().Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct || t.Kind() == reflect.Map
}

func (e *encoder) table(path []string, rv reflect.Value) error {
	list, err := entries(rv)
	if err != nil {
		return err
	}

	var nested []entry
	for _, en := range list {
		v, ok := deref(en.val)
		if !ok {
			continue
		}
		if isTable(v) || isTableArray(v) {
			nested = append(nested, entry{en.key, v})
			continue
		}
		e.buf.WriteString(quoteKey(en.key))
		e.buf.WriteString(" = ")
		if err := e.scalar(v); err != nil {
			return fmt.Errorf("toml: %s: %w", strings.Join(append(path, en.key), "."), err)
		}
		e.buf.WriteByte('\n')
	}

	for _, en := range nested {
		sub := append(slices.Clone(path), en.key)
		header := headerOf(sub)
		if isTable(en.val) {
			e.buf.WriteString("\n[" + header + "]\n")
			if err := e.table(sub, en.val); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < en.val.Len(); i++ {
			item, ok := deref(en.val.Index(i))
			if !ok {
				continue
			}
			e.buf.WriteString("\n[[" + header + "]]\n")
			if err := e.table(sub, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *encoder) scalar(v reflect.Value) error {
	switch v.Kind() {
	case reflect.String:
		e.buf.WriteString(quote(v.String()))
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt64 {
			return fmt.Errorf("%d overflows int64", v.Uint())
		}
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		e.buf.WriteString(formatFloat(v.Float(), v.Type().Bits()))
	case reflect.Slice, reflect.Array:
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			item, ok := deref(v.Index(i))
			if !ok {
				return errors.New("nil array element")
			}
			if err := e.scalar(item); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func headerOf(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = quoteKey(p)
	}
	return strings.Join(parts, ".")
}

func quoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		if !isBareByte(k[i]) {
			return quote(k)
		}
	}
	return k
}

// quote writes a TOML basic string
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
