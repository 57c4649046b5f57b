package evaluation

import (
	"fmt"
	"reflect"
)

// IsNil reports whether a value is nil, including typed nil
// pointers, maps, slices, channels, functions, and interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// StringOf renders a value for rationale text. Nil values render
// as "(null)"; non-nil pointers render their pointee.
func StringOf(v any) string {
	if IsNil(v) {
		return "(null)"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		return StringOf(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// EqualValues reports whether two values are equal in the sense
// used by equality checks: both nil, or deeply equal.
func EqualValues(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return reflect.DeepEqual(a, b)
}
