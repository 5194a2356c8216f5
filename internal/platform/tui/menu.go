package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazecaster/internal/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze"
	"github.com/vovakirdan/mazecaster/internal/games/maze/levels"
	"github.com/vovakirdan/mazecaster/internal/registry"
	"github.com/vovakirdan/mazecaster/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID  string
	Title   string
	LevelID string
}

// MenuModel is the Bubble Tea model for the game and level picker.
type MenuModel struct {
	items          []MenuItem
	levels         []levels.Level
	levelErr       error
	cursor         int
	levelCursor    int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Levels come from the built-in
// set merged with the configured levels directory.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	catalog, err := levels.Catalog(maze.GetLevelsDir())
	if err != nil || len(catalog) == 0 {
		catalog = levels.Builtin()
	}

	levelCursor := 0
	for i, l := range catalog {
		if l.ID == maze.GetLevel() {
			levelCursor = i
			break
		}
	}

	return MenuModel{
		items:       items,
		levels:      catalog,
		levelErr:    err,
		levelCursor: levelCursor,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, nil

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if n := len(m.levels); n > 0 {
			m.levelCursor = (m.levelCursor + n - 1) % n
		}

	case MenuActionRight:
		if n := len(m.levels); n > 0 {
			m.levelCursor = (m.levelCursor + 1) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			selected.LevelID = m.currentLevel().ID
			m.selected = &selected
			return m, nil
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, nil
	}

	return m, nil
}

func (m MenuModel) currentLevel() levels.Level {
	if len(m.levels) == 0 {
		return levels.Level{ID: levels.DefaultID, Name: levels.DefaultID}
	}
	return m.levels[m.levelCursor]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := StyleFor(core.ColorAccent).Bold(true)
	textStyle := StyleFor(core.ColorText)
	dimStyle := StyleFor(core.ColorLight)

	var lines []string
	lines = append(lines,
		"",
		titleStyle.Render("M A Z E C A S T E R"),
		"",
		dimStyle.Render("Select a game"),
		"",
	)

	for i, item := range m.items {
		cursor := "  "
		style := dimStyle
		if i == m.cursor {
			cursor = "> "
			style = textStyle
		}
		lines = append(lines, style.Render(cursor+item.Title))
	}

	lvl := m.currentLevel()
	lines = append(lines,
		"",
		textStyle.Render(fmt.Sprintf("< Level: %s >", lvl.Name)),
		dimStyle.Render(fmt.Sprintf("%d/%d  %s", m.levelCursor+1, max(len(m.levels), 1), lvl.ID)),
	)
	if m.levelErr != nil {
		lines = append(lines, StyleFor(core.ColorWarn).Render("Custom levels unavailable"))
	}

	lines = append(lines,
		"",
		help.New().ShortHelpView(m.keyMapper.Menu.ShortHelp()),
	)

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 {
		return block + "\n"
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block) + "\n"
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
