package core

import "testing"

func TestClickIsOneFramePulse(t *testing.T) {
	s := NewInputState()

	s.BeginFrame()
	s.Process(MouseButtonEvent{Button: BUTTON_LEFT, Down: true, Clicks: 1})
	if m := s.Mouse(); !m.Left.Click || m.Left.DoubleClick || !m.Left.Down() {
		t.Fatalf("expected a click on the left button, got %+v", m.Left)
	}
	s.EndFrame()

	s.BeginFrame()
	if m := s.Mouse(); m.Left.Click {
		t.Fatalf("click must not survive the end of frame")
	}
	if m := s.Mouse(); !m.Left.Down() {
		t.Fatalf("button state is a level and must stay DOWN")
	}
}

func TestDoubleClickExcludesClick(t *testing.T) {
	s := NewInputState()
	s.BeginFrame()
	s.Process(MouseButtonEvent{Button: BUTTON_RIGHT, Down: true, Clicks: 2})
	m := s.Mouse()
	if !m.Right.DoubleClick || m.Right.Click {
		t.Fatalf("expected only a double click, got %+v", m.Right)
	}
}

func TestOtherClickCountsSetNoPulse(t *testing.T) {
	s := NewInputState()
	s.BeginFrame()
	s.Process(MouseButtonEvent{Button: BUTTON_LEFT, Down: true, Clicks: 3})
	m := s.Mouse()
	if m.Left.Click || m.Left.DoubleClick {
		t.Fatalf("three clicks should be neither click nor double click, got %+v", m.Left)
	}
	if !m.Left.Down() {
		t.Fatalf("button should still be DOWN")
	}
}

func TestButtonUpKeepsPulse(t *testing.T) {
	s := NewInputState()
	s.BeginFrame()
	s.Process(MouseButtonEvent{Button: BUTTON_LEFT, Down: true, Clicks: 1})
	s.Process(MouseButtonEvent{Button: BUTTON_LEFT, Down: false})
	m := s.Mouse()
	if !m.Left.Click {
		t.Fatalf("release in the same frame must not clear the click")
	}
	if m.Left.Down() {
		t.Fatalf("button should be UP after release")
	}
}

func TestMiddleButtonDoesNotTouchRight(t *testing.T) {
	s := NewInputState()
	s.BeginFrame()
	s.Process(MouseButtonEvent{Button: BUTTON_MIDDLE, Down: true, Clicks: 1})
	m := s.Mouse()
	if !m.Middle.Click {
		t.Fatalf("expected a middle click")
	}
	if m.Right.Down() || m.Right.Click {
		t.Fatalf("middle press leaked into the right button: %+v", m.Right)
	}
}

func TestRelativeMotionResetsEachFrame(t *testing.T) {
	s := NewInputState()

	s.BeginFrame()
	s.Process(MouseMotionEvent{X: 10, Y: 20, DX: 3, DY: -4})
	m := s.Mouse()
	if m.DX != 3 || m.DY != -4 || !m.Moved {
		t.Fatalf("expected delta (3,-4) and moved, got %+v", m)
	}
	s.EndFrame()

	s.BeginFrame()
	m = s.Mouse()
	if m.DX != 0 || m.DY != 0 || m.Moved {
		t.Fatalf("expected no motion on a quiet frame, got %+v", m)
	}
	if m.X != 10 || m.Y != 20 {
		t.Fatalf("absolute position must persist, got (%d,%d)", m.X, m.Y)
	}
}

func TestRelativeMotionAccumulates(t *testing.T) {
	s := NewInputState()
	s.BeginFrame()
	s.Process(MouseMotionEvent{X: 1, Y: 1, DX: 1, DY: 1})
	s.Process(MouseMotionEvent{X: 3, Y: 0, DX: 2, DY: -1})
	m := s.Mouse()
	if m.DX != 3 || m.DY != 0 {
		t.Fatalf("expected accumulated delta (3,0), got (%d,%d)", m.DX, m.DY)
	}
	if m.X != 3 || m.Y != 0 {
		t.Fatalf("expected last absolute position (3,0), got (%d,%d)", m.X, m.Y)
	}
}
