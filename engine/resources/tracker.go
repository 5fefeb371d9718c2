package resources

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker keeps the set of live native handles. The engine uses it to report
// leaks at teardown; it never releases anything itself.
type Tracker struct {
	mutex sync.Mutex
	live  map[uuid.UUID]*handle
}

func NewTracker() *Tracker {
	return &Tracker{
		live: make(map[uuid.UUID]*handle),
	}
}

func (t *Tracker) add(h *handle) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.live[h.id] = h
}

func (t *Tracker) remove(h *handle) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	delete(t.live, h.id)
}

// Live returns the number of handles not yet released.
func (t *Tracker) Live() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return len(t.live)
}

func (t *Tracker) LiveByType(resourceType ResourceType) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	n := 0
	for _, h := range t.live {
		if h.resourceType == resourceType {
			n++
		}
	}
	return n
}

// Sources lists the load paths of the live handles, for leak reports.
func (t *Tracker) Sources() []string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	out := make([]string, 0, len(t.live))
	for _, h := range t.live {
		out = append(out, h.resourceType.String()+":"+h.source)
	}
	return out
}
