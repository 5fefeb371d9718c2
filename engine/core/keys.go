package core

import (
	"fmt"
	"strings"
)

// Keycap names a physical key independently of the backend scancodes.
type Keycap uint16

const (
	KEY_UNKNOWN Keycap = iota
	KEY_ESCAPE
	KEY_ENTER
	KEY_SPACE
	KEY_BACKSPACE
	KEY_TAB
	KEY_UP
	KEY_DOWN
	KEY_LEFT
	KEY_RIGHT
	KEY_LSHIFT
	KEY_RSHIFT
	KEY_LCONTROL
	KEY_RCONTROL
	KEY_LALT
	KEY_RALT
	KEY_A
	KEY_B
	KEY_C
	KEY_D
	KEY_E
	KEY_F
	KEY_G
	KEY_H
	KEY_I
	KEY_J
	KEY_K
	KEY_L
	KEY_M
	KEY_N
	KEY_O
	KEY_P
	KEY_Q
	KEY_R
	KEY_S
	KEY_T
	KEY_U
	KEY_V
	KEY_W
	KEY_X
	KEY_Y
	KEY_Z
	KEY_0
	KEY_1
	KEY_2
	KEY_3
	KEY_4
	KEY_5
	KEY_6
	KEY_7
	KEY_8
	KEY_9
	KEY_F1
	KEY_F2
	KEY_F3
	KEY_F4
	KEY_F5
	KEY_F6
	KEY_F7
	KEY_F8
	KEY_F9
	KEY_F10
	KEY_F11
	KEY_F12
	KEYS_MAX_KEYS
)

var keycapNames = [KEYS_MAX_KEYS]string{
	KEY_UNKNOWN:   "unknown",
	KEY_ESCAPE:    "escape",
	KEY_ENTER:     "enter",
	KEY_SPACE:     "space",
	KEY_BACKSPACE: "backspace",
	KEY_TAB:       "tab",
	KEY_UP:        "up",
	KEY_DOWN:      "down",
	KEY_LEFT:      "left",
	KEY_RIGHT:     "right",
	KEY_LSHIFT:    "lshift",
	KEY_RSHIFT:    "rshift",
	KEY_LCONTROL:  "lcontrol",
	KEY_RCONTROL:  "rcontrol",
	KEY_LALT:      "lalt",
	KEY_RALT:      "ralt",
}

func init() {
	for k := KEY_A; k <= KEY_Z; k++ {
		keycapNames[k] = string(rune('a' + (k - KEY_A)))
	}
	for k := KEY_0; k <= KEY_9; k++ {
		keycapNames[k] = string(rune('0' + (k - KEY_0)))
	}
	for k := KEY_F1; k <= KEY_F12; k++ {
		keycapNames[k] = fmt.Sprintf("f%d", 1+k-KEY_F1)
	}
}

func (k Keycap) String() string {
	if k >= KEYS_MAX_KEYS {
		return keycapNames[KEY_UNKNOWN]
	}
	return keycapNames[k]
}

// ParseKeycap maps a configuration name ("escape", "q", "f5", ...) to a Keycap.
// "none" and the empty string map to KEY_UNKNOWN, which never matches a key press.
func ParseKeycap(name string) (Keycap, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "none":
		return KEY_UNKNOWN, nil
	case "esc":
		return KEY_ESCAPE, nil
	case "return":
		return KEY_ENTER, nil
	}
	for k := KEY_ESCAPE; k < KEYS_MAX_KEYS; k++ {
		if keycapNames[k] == name {
			return k, nil
		}
	}
	return KEY_UNKNOWN, fmt.Errorf("unknown key %q", name)
}
