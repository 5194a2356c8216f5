package tui

import "github.com/vovakirdan/mazecaster/internal/core"

// DefaultHoldTicks is how long one key press keeps a movement button down.
const DefaultHoldTicks = 8

// DefaultEdgeHoldTicks is how long one press keeps Map, Pause or Restart
// down. Terminals wait 250-500ms before auto-repeating a held key, so the
// hold must outlast that gap or the first repeat reads as a new press.
const DefaultEdgeHoldTicks = 30

// edgeButtons are consumed on their rising edge by the game.
const edgeButtons = core.ButtonMap | core.ButtonPause | core.ButtonRestart

// HoldTracker turns terminal key presses into held buttons.
// Terminals send a press and then auto-repeats but never a release, so
// each press holds its button for a fixed number of ticks and every
// repeat refreshes the hold. The result behaves like a gamepad register
// sampled once per tick.
type HoldTracker struct {
	ticks     int
	edgeTicks int
	remain    [8]int // Remaining ticks per button bit
}

var _ core.InputSource = (*HoldTracker)(nil)

// NewHoldTracker creates a tracker. ticks <= 0 uses DefaultHoldTicks.
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &HoldTracker{ticks: ticks, edgeTicks: DefaultEdgeHoldTicks}
}

// SetTicks changes the movement hold for later presses. ticks <= 0 is ignored.
func (h *HoldTracker) SetTicks(ticks int) {
	if ticks > 0 {
		h.ticks = ticks
	}
}

// SetEdgeTicks changes the hold for Map, Pause and Restart. ticks <= 0 is ignored.
func (h *HoldTracker) SetEdgeTicks(ticks int) {
	if ticks > 0 {
		h.edgeTicks = ticks
	}
}

// Press marks every button in b as held for its hold duration.
// Pressing one direction releases its opposite immediately.
func (h *HoldTracker) Press(b core.Buttons) {
	if b.Has(core.ButtonUp) {
		h.release(core.ButtonDown)
	}
	if b.Has(core.ButtonDown) {
		h.release(core.ButtonUp)
	}
	if b.Has(core.ButtonLeft) {
		h.release(core.ButtonRight)
	}
	if b.Has(core.ButtonRight) {
		h.release(core.ButtonLeft)
	}

	for i := range h.remain {
		bit := core.Buttons(1 << i)
		if b&bit == 0 {
			continue
		}
		h.remain[i] = h.ticks
		if edgeButtons&bit != 0 {
			h.remain[i] = max(h.edgeTicks, h.ticks)
		}
	}
}

// ButtonsPressed returns the buttons held for this tick and ages every
// hold by one. Call it exactly once per simulation tick.
func (h *HoldTracker) ButtonsPressed() core.Buttons {
	var held core.Buttons
	for i := range h.remain {
		if h.remain[i] > 0 {
			held |= 1 << i
			h.remain[i]--
		}
	}
	return held
}

// Reset releases all buttons.
func (h *HoldTracker) Reset() {
	h.remain = [8]int{}
}

func (h *HoldTracker) release(b core.Buttons) {
	for i := range h.remain {
		if b&(1<<i) != 0 {
			h.remain[i] = 0
		}
	}
}
