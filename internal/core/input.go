package core

import "strings"

// Buttons is the set of buttons held during one simulation tick.
// It is the decoded equivalent of a gamepad register: one bit per button.
type Buttons uint8

// Button bits. Movement buttons are level-triggered; Map, Pause and Restart
// are meant to be consumed on their rising edge.
const (
	ButtonUp Buttons = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonJump
	ButtonMap
	ButtonPause
	ButtonRestart
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonLeft, "Left"},
	{ButtonRight, "Right"},
	{ButtonJump, "Jump"},
	{ButtonMap, "Map"},
	{ButtonPause, "Pause"},
	{ButtonRestart, "Restart"},
}

// Has reports whether every bit of mask is held.
func (b Buttons) Has(mask Buttons) bool {
	return mask != 0 && b&mask == mask
}

// With returns b with mask added.
func (b Buttons) With(mask Buttons) Buttons {
	return b | mask
}

// Pressed returns the buttons that went down since prev: b & (b ^ prev).
func (b Buttons) Pressed(prev Buttons) Buttons {
	return b & (b ^ prev)
}

// String returns a human-readable list such as "Up+Jump".
func (b Buttons) String() string {
	if b == 0 {
		return "None"
	}
	var parts []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// InputSource supplies the held buttons for the current tick.
// The terminal platform implements it with a key-hold tracker.
type InputSource interface {
	ButtonsPressed() Buttons
}
