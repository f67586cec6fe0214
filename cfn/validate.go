package cfn

import (
	"reflect"
	"strings"
)

// ValidateStruct checks that every field tagged `field:"required"` is set, descending
// into nested structs, struct pointers and slices of either.
//
// describe names the value in the returned error ("parameter props").
func ValidateStruct(v any, describe func() string) error {
	missing := firstMissing(reflect.ValueOf(v))
	if missing == "" {
		return nil
	}
	prefix := ""
	if describe != nil {
		prefix = describe() + ": "
	}
	return Errorf(CodeRequiredMissing, "%sRequired property '%s' is missing", prefix, missing)
}

// RequireProperty returns the "Required property" error when value is nil.
func RequireProperty[T any](name string, value *T) error {
	if value == nil {
		return Errorf(CodeRequiredMissing, "Required property '%s' is missing", name)
	}
	return nil
}

func firstMissing(v reflect.Value) string {
	// Interface-typed fields hold constructs, which validate themselves.
	if v.Kind() == reflect.Interface {
		return ""
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			fv := v.Field(i)
			if sf.Tag.Get("field") == "required" && isEmptyValue(fv) {
				return jsonName(sf)
			}
			if name := firstMissing(fv); name != "" {
				if sf.Anonymous {
					return name
				}
				return jsonName(sf) + "." + name
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if name := firstMissing(v.Index(i)); name != "" {
				return name
			}
		}
	}
	return ""
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	default:
		return false
	}
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}
