// Package identity implements the strict identity comparison used for prop
// diffing, state writes and effect dependency lists.
//
// Identical behaves like a reference-or-value equality check: scalars,
// strings and other comparable values compare by value, while maps, slices,
// channels, pointers and funcs compare by the object they reference. Nothing
// is compared deeply.
package identity

import (
	"reflect"
	"unsafe"
)

// eface mirrors the runtime layout of an empty interface.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataWord returns the data word of an interface value. For func values the
// data word is the closure pointer, which is distinct per closure allocation.
func dataWord(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}

// Identical reports whether a and b are the same value.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Func:
		return dataWord(a) == dataWord(b)
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}

// SliceIdentical reports whether two lists have the same length and
// pairwise Identical elements.
func SliceIdentical(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Identical(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsFunc reports whether v holds a non-nil func value.
func IsFunc(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}
