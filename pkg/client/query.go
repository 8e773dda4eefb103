package client

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Param is one query string entry. A nil Value, or a nil pointer, marks the
// parameter as absent.
type Param struct {
	Key   string
	Value any
}

// Query is an ordered list of query parameters.
type Query []Param

// Add appends a parameter and returns the extended query.
func (q Query) Add(key string, value any) Query {
	return append(q, Param{Key: key, Value: value})
}

// FormatQuery appends q to base as "?k=v&k2=v2".
//
// Absent parameters are skipped, but the separator is chosen from the
// parameter's position in q, not from how many were written: only the entry at
// index 0 gets "?". Slice values are joined with a literal comma. Nothing is
// percent-encoded.
func FormatQuery(base string, q Query) string {
	var sb strings.Builder
	sb.WriteString(base)
	for i, p := range q {
		value, ok := formatValue(p.Value)
		if !ok {
			continue
		}
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(value)
	}
	return sb.String()
}

func formatValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "", false
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, ok := formatScalar(rv.Index(i))
			if !ok {
				continue
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), true
	}
	return formatScalar(rv)
}

func formatScalar(rv reflect.Value) (string, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return fmt.Sprint(rv.Interface()), true
	}
}
