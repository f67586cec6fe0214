package cfn

import "reflect"

// PropertyMap accumulates rendered CloudFormation properties, skipping unset values.
type PropertyMap map[string]any

// Set stores v under key unless v is nil, a nil pointer, or a nil/empty collection.
func (m PropertyMap) Set(key string, v any) PropertyMap {
	if isUnset(v) {
		return m
	}
	m[key] = v
	return m
}

// OrNil returns nil for an empty map so nested properties disappear entirely.
func (m PropertyMap) OrNil() map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

func isUnset(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return true
		}
		elem := rv.Elem()
		if elem.Kind() == reflect.Slice || elem.Kind() == reflect.Map {
			return elem.IsNil()
		}
		return false
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// RenderList renders each element of a list-typed property in order.
func RenderList[T any](items *[]*T, render func(*T) map[string]any) []any {
	if items == nil {
		return nil
	}
	out := make([]any, 0, len(*items))
	for _, item := range *items {
		if item == nil {
			continue
		}
		out = append(out, render(item))
	}
	return out
}
