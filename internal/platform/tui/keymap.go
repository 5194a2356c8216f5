package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazecaster/internal/core"
)

// GameKeyMap holds the in-game bindings. Each binding presses one button.
type GameKeyMap struct {
	Forward key.Binding
	Back    key.Binding
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Map     key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Jump, k.Map, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.Left, k.Right},
		{k.Jump, k.Map, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Forward: key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/up", "forward")),
		Back:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/down", "back")),
		Left:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/d", "turn")),
		Right:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/right", "turn right")),
		Jump:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		Map:     key.NewBinding(key.WithKeys("m", "z"), key.WithHelp("m", "map")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuKeyMap holds the bindings shared by the menus.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Scoreboard, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings, with vim-style keys.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("up/down", "game")),
		Down:       key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("down/j", "next game")),
		Left:       key.NewBinding(key.WithKeys("a", "left", "h"), key.WithHelp("left/right", "level")),
		Right:      key.NewBinding(key.WithKeys("d", "right", "l"), key.WithHelp("right/l", "next level")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc/b", "back")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Game GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game: DefaultGameKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to the button it presses.
// Returns 0 for unbound keys and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (b core.Buttons, isQuit bool) {
	k := km.Game
	switch {
	case key.Matches(msg, k.Quit):
		return 0, true
	case key.Matches(msg, k.Forward):
		return core.ButtonUp, false
	case key.Matches(msg, k.Back):
		return core.ButtonDown, false
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, false
	case key.Matches(msg, k.Right):
		return core.ButtonRight, false
	case key.Matches(msg, k.Jump):
		return core.ButtonJump, false
	case key.Matches(msg, k.Map):
		return core.ButtonMap, false
	case key.Matches(msg, k.Pause):
		return core.ButtonPause, false
	case key.Matches(msg, k.Restart):
		return core.ButtonRestart, false
	}

	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := km.Menu
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Left):
		return MenuActionLeft
	case key.Matches(msg, k.Right):
		return MenuActionRight
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	}

	return MenuActionNone
}
