package vdom

import (
	"fmt"
	"reflect"
	"strconv"
)

// TextOf returns the text content of a string or number leaf.
func TextOf(child any) (string, bool) {
	switch v := child.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case *VNode, nil, bool:
		return "", false
	}

	rv := reflect.ValueOf(child)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// IsText reports whether child is a text leaf.
func IsText(child any) bool {
	_, ok := TextOf(child)
	return ok
}

// Textf formats a text leaf.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Text returns the string form of a text leaf. Values that are not text
// leaves are formatted with fmt.Sprint.
func Text(v any) string {
	if s, ok := TextOf(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
