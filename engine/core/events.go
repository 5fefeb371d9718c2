package core

type EventKind uint8

const (
	EVENT_KIND_NONE EventKind = iota
	EVENT_KIND_QUIT
	EVENT_KIND_KEY_DOWN
	EVENT_KIND_KEY_UP
	EVENT_KIND_MOUSE_MOTION
	EVENT_KIND_MOUSE_BUTTON
	EVENT_KIND_MOUSE_WHEEL
	EVENT_KIND_FILE_CHANGED
	MAX_EVENT_KIND
)

// Event is anything the backend queue (or the asset watcher) can produce.
type Event interface {
	Kind() EventKind
}

// QuitEvent is sent when the window is closed.
type QuitEvent struct{}

type KeyDownEvent struct {
	Key    Keycap
	Repeat bool
}

type KeyUpEvent struct {
	Key Keycap
}

// MouseMotionEvent carries the new absolute position and the relative motion
// since the previous motion event.
type MouseMotionEvent struct {
	X, Y   int32
	DX, DY int32
}

// MouseButtonEvent is a press (Down) or release. Clicks is the consecutive
// click count reported by the backend on presses.
type MouseButtonEvent struct {
	Button Button
	Down   bool
	Clicks uint8
	X, Y   int32
}

type MouseWheelEvent struct {
	DX, DY int32
}

type FileOp uint8

const (
	FILE_OP_CREATE FileOp = iota + 1
	FILE_OP_WRITE
	FILE_OP_REMOVE
	FILE_OP_RENAME
)

func (o FileOp) String() string {
	switch o {
	case FILE_OP_CREATE:
		return "create"
	case FILE_OP_WRITE:
		return "write"
	case FILE_OP_REMOVE:
		return "remove"
	case FILE_OP_RENAME:
		return "rename"
	}
	return "unknown"
}

// AssetKind classifies a file by extension.
type AssetKind uint8

const (
	ASSET_KIND_NONE AssetKind = iota
	ASSET_KIND_IMAGE
	ASSET_KIND_FONT
	ASSET_KIND_BITMAP_FONT
	ASSET_KIND_SOUND
	ASSET_KIND_MUSIC
	ASSET_KIND_CONFIG
)

// FileChangedEvent is produced by the asset watcher, never by the backend.
type FileChangedEvent struct {
	Path  string
	Asset AssetKind
	Op    FileOp
}

func (QuitEvent) Kind() EventKind        { return EVENT_KIND_QUIT }
func (KeyDownEvent) Kind() EventKind     { return EVENT_KIND_KEY_DOWN }
func (KeyUpEvent) Kind() EventKind       { return EVENT_KIND_KEY_UP }
func (MouseMotionEvent) Kind() EventKind { return EVENT_KIND_MOUSE_MOTION }
func (MouseButtonEvent) Kind() EventKind { return EVENT_KIND_MOUSE_BUTTON }
func (MouseWheelEvent) Kind() EventKind  { return EVENT_KIND_MOUSE_WHEEL }

func (FileChangedEvent) Kind() EventKind { return EVENT_KIND_FILE_CHANGED }

// Should return true if handled.
type FnOnEvent func(ev Event) bool

type ListenerID uint32

type registeredListener struct {
	kind     EventKind
	callback FnOnEvent
}

// EventBus dispatches events to listeners registered per kind. It is owned by
// a single engine and only touched from the loop goroutine.
type EventBus struct {
	ids        identifiers
	listeners  map[ListenerID]*registeredListener
	registered [MAX_EVENT_KIND][]ListenerID
}

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[ListenerID]*registeredListener),
	}
}

// Register a callback for the given kind. Listeners are invoked in
// registration order.
func (b *EventBus) Register(kind EventKind, onEvent FnOnEvent) ListenerID {
	if kind == EVENT_KIND_NONE || kind >= MAX_EVENT_KIND || onEvent == nil {
		LogWarn("refusing to register listener for event kind %d", kind)
		return InvalidListenerID
	}
	id := ListenerID(b.ids.acquire())
	b.listeners[id] = &registeredListener{kind: kind, callback: onEvent}
	b.registered[kind] = append(b.registered[kind], id)
	return id
}

// Unregister removes a listener. Returns false if the id is unknown.
func (b *EventBus) Unregister(id ListenerID) bool {
	l, ok := b.listeners[id]
	if !ok {
		return false
	}
	delete(b.listeners, id)
	ids := b.registered[l.kind]
	for i, other := range ids {
		if other == id {
			b.registered[l.kind] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	b.ids.release(uint32(id))
	return true
}

// Fire sends an event to the listeners of its kind. If a listener returns
// true the event is considered handled and is not passed on.
func (b *EventBus) Fire(ev Event) bool {
	kind := ev.Kind()
	if kind >= MAX_EVENT_KIND {
		return false
	}
	// Listeners may unregister themselves while being called.
	ids := append([]ListenerID(nil), b.registered[kind]...)
	for _, id := range ids {
		l, ok := b.listeners[id]
		if !ok {
			continue
		}
		if l.callback(ev) {
			return true
		}
	}
	return false
}

// Count returns the number of listeners for a kind.
func (b *EventBus) Count(kind EventKind) int {
	if kind >= MAX_EVENT_KIND {
		return 0
	}
	return len(b.registered[kind])
}
