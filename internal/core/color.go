package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style; games only pick roles.
type Color uint8

// Palette roles. The first four mirror a four-shade handheld palette.
const (
	ColorDefault Color = iota
	ColorDark          // Darkest shade: vertical-family walls, map background
	ColorMid           // Horizontal-family walls, map walls
	ColorLight         // Ground, map floor
	ColorAccent        // Sky, doorways, player marker
	ColorText          // HUD and message text
	ColorWarn          // Illusion warnings
)
