package core

type Button uint8

const (
	BUTTON_UNKNOWN Button = iota
	BUTTON_LEFT
	BUTTON_MIDDLE
	BUTTON_RIGHT
	BUTTON_MAX_BUTTONS
)

func (b Button) String() string {
	switch b {
	case BUTTON_LEFT:
		return "left"
	case BUTTON_MIDDLE:
		return "middle"
	case BUTTON_RIGHT:
		return "right"
	}
	return "unknown"
}

type ButtonState uint8

const (
	BUTTON_STATE_UP ButtonState = iota
	BUTTON_STATE_DOWN
)

// MouseButton is the per-frame view of one button. Click and DoubleClick are
// one frame pulses: they are set by a press in this frame and cleared once the
// frame's update has run.
type MouseButton struct {
	State       ButtonState
	Click       bool
	DoubleClick bool
}

func (b MouseButton) Down() bool { return b.State == BUTTON_STATE_DOWN }

// Mouse state structure
type MouseState struct {
	// Absolute position, updated on motion events.
	X, Y int32
	// Relative motion accumulated during this frame.
	DX, DY int32
	// Wheel motion accumulated during this frame.
	WheelX, WheelY int32
	// True iff at least one motion event arrived this frame.
	Moved bool

	Left   MouseButton
	Middle MouseButton
	Right  MouseButton
}

// Button returns the state of the given button, or the zero value for
// BUTTON_UNKNOWN.
func (m MouseState) Button(b Button) MouseButton {
	switch b {
	case BUTTON_LEFT:
		return m.Left
	case BUTTON_MIDDLE:
		return m.Middle
	case BUTTON_RIGHT:
		return m.Right
	}
	return MouseButton{}
}

// InputState is the input snapshot the engine rebuilds every frame from the
// polled events. The keyboard is not part of it: keys are queried live.
type InputState struct {
	mouse MouseState
}

func NewInputState() *InputState {
	return &InputState{}
}

// BeginFrame resets the per-frame accumulators. Must run before polling.
func (s *InputState) BeginFrame() {
	s.mouse.Moved = false
	s.mouse.DX = 0
	s.mouse.DY = 0
	s.mouse.WheelX = 0
	s.mouse.WheelY = 0
}

// Process folds one event into the snapshot. Events that do not concern the
// mouse are ignored.
func (s *InputState) Process(ev Event) {
	switch e := ev.(type) {
	case MouseMotionEvent:
		s.mouse.X = e.X
		s.mouse.Y = e.Y
		s.mouse.DX += e.DX
		s.mouse.DY += e.DY
		s.mouse.Moved = true
	case MouseButtonEvent:
		if e.Down {
			s.processButtonDown(e.Button, e.Clicks)
		} else {
			s.processButtonUp(e.Button)
		}
	case MouseWheelEvent:
		s.mouse.WheelX += e.DX
		s.mouse.WheelY += e.DY
	}
}

func (s *InputState) button(b Button) *MouseButton {
	switch b {
	case BUTTON_LEFT:
		return &s.mouse.Left
	case BUTTON_MIDDLE:
		return &s.mouse.Middle
	case BUTTON_RIGHT:
		return &s.mouse.Right
	}
	return nil
}

func (s *InputState) processButtonDown(b Button, clicks uint8) {
	mb := s.button(b)
	if mb == nil {
		return
	}
	mb.State = BUTTON_STATE_DOWN
	switch clicks {
	case 1:
		mb.Click = true
		mb.DoubleClick = false
	case 2:
		mb.Click = false
		mb.DoubleClick = true
	}
}

// Releases never touch the pulses.
func (s *InputState) processButtonUp(b Button) {
	mb := s.button(b)
	if mb == nil {
		return
	}
	mb.State = BUTTON_STATE_UP
}

// EndFrame clears the click pulses on every button. The engine calls it once
// per frame, right after the update hook.
func (s *InputState) EndFrame() {
	for _, mb := range []*MouseButton{&s.mouse.Left, &s.mouse.Middle, &s.mouse.Right} {
		mb.Click = false
		mb.DoubleClick = false
	}
}

// Mouse returns a copy of the current mouse snapshot.
func (s *InputState) Mouse() MouseState {
	return s.mouse
}
