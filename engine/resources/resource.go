package resources

import (
	"reflect"

	"github.com/spaghettifunk/pixello/engine/core"
)

// acquire runs a backend loader and wraps its result in a fresh handle with a
// single owner. A failed or nil result is a LoadError and nothing is tracked.
func acquire[T any](resourceType ResourceType, path string, tracker *Tracker, load func() (T, error), release func(T)) (T, *ref, error) {
	var zero T
	native, err := load()
	if err != nil {
		if !isNil(native) {
			release(native)
		}
		return zero, nil, &core.LoadError{Path: path, Err: err}
	}
	if isNil(native) {
		return zero, nil, &core.LoadError{Path: path, Err: core.ErrNoHandle}
	}
	r := newHandle(resourceType, path, func() { release(native) }, tracker)
	return native, r, nil
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
