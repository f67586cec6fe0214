package cfn

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Repr renders a props value as Name(field=value, ...), listing only fields that are set.
//
// Field names are the snake_case form of the json tag. Strings are single-quoted, and
// values implementing fmt.Stringer (enums, durations, constructs) print through String.
func Repr(name string, v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return name + "()"
		}
		rv = rv.Elem()
	}
	var fields []string
	collectFields(rv, &fields)
	return name + "(" + strings.Join(fields, ", ") + ")"
}

func collectFields(rv reflect.Value, fields *[]string) {
	if rv.Kind() != reflect.Struct {
		return
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous {
			for fv.Kind() == reflect.Pointer && !fv.IsNil() {
				fv = fv.Elem()
			}
			collectFields(fv, fields)
			continue
		}
		if isEmptyValue(fv) {
			continue
		}
		*fields = append(*fields, snakeCase(jsonName(sf))+"="+reprValue(fv))
	}
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func reprValue(v reflect.Value) string {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "None"
		}
		v = v.Elem()
	}
	if v.Type().Implements(stringerType) && v.Kind() != reflect.Pointer {
		return v.Interface().(fmt.Stringer).String()
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "None"
		}
		if v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String()
		}
		return reprValue(v.Elem())
	}

	switch v.Kind() {
	case reflect.String:
		return "'" + strings.ReplaceAll(v.String(), "'", `\'`) + "'"
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, reprValue(v.Index(i)))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
		items := make([]string, 0, len(keys))
		for _, k := range keys {
			items = append(items, reprValue(k)+": "+reprValue(v.MapIndex(k)))
		}
		return "{" + strings.Join(items, ", ") + "}"
	case reflect.Struct:
		return Repr(v.Type().Name(), v.Interface())
	default:
		return fmt.Sprint(v.Interface())
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
