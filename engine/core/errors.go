package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized  = errors.New("engine not initialized")
	ErrInvalidResource = errors.New("invalid resource")
	ErrNoHandle        = errors.New("backend returned no handle")
	ErrAlreadyStarted  = errors.New("engine already started")
)

// InitError reports a failed acquisition while the engine boots: a backend
// subsystem, the window, the renderer or the default font.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Step, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// LoadError reports a resource that could not be decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InputError reports an out of range argument. The caller can always recover
// by fixing the argument.
type InputError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// RuntimeError reports a backend operation that usually succeeds but did not.
type RuntimeError struct {
	Op  string
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }
