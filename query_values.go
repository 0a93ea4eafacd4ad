package rampaged

import (
	"fmt"
	"reflect"
	"strings"
)

// Query parameters carrying the page position.
const (
	PageNumberParam = "pageNumber"
	PageSizeParam   = "pageSize"
)

// QueryValues flattens a request struct into query parameters. Keys come
// from the `form` tag (falling back to the field name); fields tagged
// `form:"-"` are ignored, and so are unexported fields. Embedded structs,
// PageRequest included, are flattened into the parent.
//
// Empty strings and nil pointers are skipped; other zero values are kept.
func QueryValues(req any) map[string]string {
	ret := make(map[string]string)
	if req == nil {
		return ret
	}

	v := reflect.ValueOf(req)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ret
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ret
	}

	collectQueryValues(v, ret)

	return ret
}

func collectQueryValues(v reflect.Value, dst map[string]string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("form")
		if tag == "-" {
			continue
		}

		fv := v.Field(i)
		if field.Anonymous && tag == "" {
			for fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					break
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct && field.IsExported() {
				collectQueryValues(fv, dst)
			}
			continue
		}

		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}

		if s, ok := formatQueryValue(fv); ok && s != "" {
			dst[name] = s
		}
	}
}

func formatQueryValue(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if s, ok := formatQueryValue(v.Index(i)); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Struct:
		if !v.CanInterface() {
			return "", false
		}
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
		return "", false
	default:
		if !v.CanInterface() {
			return "", false
		}
		return fmt.Sprint(v.Interface()), true
	}
}
