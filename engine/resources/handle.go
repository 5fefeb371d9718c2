package resources

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spaghettifunk/pixello/engine/core"
)

// handle owns exactly one native object. It is shared by every owner token
// that refers to it and released when the last one is dropped.
type handle struct {
	id             uuid.UUID
	resourceType   ResourceType
	source         string
	referenceCount atomic.Int32
	released       atomic.Bool
	release        func()
	tracker        *Tracker
}

func newHandle(resourceType ResourceType, source string, release func(), tracker *Tracker) *ref {
	h := &handle{
		id:           uuid.New(),
		resourceType: resourceType,
		source:       source,
		release:      release,
		tracker:      tracker,
	}
	h.referenceCount.Store(1)
	if tracker != nil {
		tracker.add(h)
	}
	return &ref{h: h}
}

func (h *handle) acquire() {
	h.referenceCount.Add(1)
}

// drop releases the native object when the count reaches zero. The CAS on
// released guards against a count that was driven below zero.
func (h *handle) drop() {
	if h.referenceCount.Add(-1) > 0 {
		return
	}
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	core.LogDebug("releasing %s %s (%s)", h.resourceType, h.id, h.source)
	if h.release != nil {
		h.release()
	}
	if h.tracker != nil {
		h.tracker.remove(h)
	}
}

// ref is one owner of a handle. Copies of a resource value share the same
// ref; Clone creates a new one.
type ref struct {
	h       *handle
	dropped atomic.Bool
}

func (r *ref) alive() bool {
	return r != nil && !r.dropped.Load() && !r.h.released.Load()
}

func (r *ref) clone() *ref {
	if !r.alive() {
		return nil
	}
	r.h.acquire()
	return &ref{h: r.h}
}

// drop is idempotent per owner.
func (r *ref) drop() {
	if r == nil || !r.dropped.CompareAndSwap(false, true) {
		return
	}
	r.h.drop()
}

func (r *ref) id() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.h.id
}

func (r *ref) references() int32 {
	if r == nil {
		return 0
	}
	return r.h.referenceCount.Load()
}
