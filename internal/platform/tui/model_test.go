package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazecaster/internal/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze"
	mazecore "github.com/vovakirdan/mazecaster/internal/games/maze/core"
	"github.com/vovakirdan/mazecaster/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, store *storage.Store, session string) (GameModel, *maze.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	game := maze.New(mazecore.VariantFull)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	var buf bytes.Buffer
	m := NewGameModel(game, store, cfg, GameOptions{
		Session: session,
		Logger:  log.New(&buf),
	})
	m.Init()
	if game.Err() != nil {
		t.Fatalf("Reset() error = %v", game.Err())
	}
	return m, game
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm
}

func TestGameModelHeldKeyMoves(t *testing.T) {
	m, game := newTestModel(t, nil, "")
	start := game.Snapshot()

	m = update(t, m, runeKey('w'))
	for range DefaultHoldTicks {
		m = update(t, m, TickMsg{})
	}
	moved := game.Snapshot()
	if moved.X == start.X && moved.Y == start.Y {
		t.Error("holding W should move the player")
	}
	if moved.Tick != uint64(DefaultHoldTicks) {
		t.Errorf("Tick = %d, expected %d", moved.Tick, DefaultHoldTicks)
	}

	// The hold has expired, so further ticks leave the player in place
	m = update(t, m, TickMsg{})
	after := game.Snapshot()
	if after.X != moved.X || after.Y != moved.Y {
		t.Error("player kept moving after the hold expired")
	}
}

func TestGameModelPauseAndBack(t *testing.T) {
	m, game := newTestModel(t, nil, "")

	// Back is ignored while playing
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc while playing should not leave the game")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if !game.Snapshot().Paused || !m.State().Paused {
		t.Fatal("P should pause the game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
	if m.IsQuitting() {
		t.Error("back should not quit the session")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m, _ := newTestModel(t, nil, "")
	m.opts.Standalone = true

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if !m.IsQuitting() {
		t.Error("back in standalone mode should quit")
	}
}

func TestGameModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t, nil, "")
	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("Q should quit")
	}
	if cmd == nil {
		t.Error("Q should return tea.Quit")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, nil, "")

	m = update(t, m, runeKey('w'))
	for range 4 {
		m = update(t, m, TickMsg{})
	}
	before := game.Snapshot()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	after := game.Snapshot()
	if after.Tick != before.Tick || after.X != before.X || after.Y != before.Y {
		t.Errorf("resize reset the run: %+v -> %+v", before, after)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelJournal(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	newTestModel(t, store, "tester")

	entries, err := store.RecentSignals(maze.IDFull, 10)
	if err != nil {
		t.Fatalf("RecentSignals() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, expected 1", len(entries))
	}
	if entries[0].Token != maze.TokenStarted || entries[0].Session != "tester" {
		t.Errorf("entry = %+v, expected started by tester", entries[0])
	}
}

// buttonsFunc is a scripted core.InputSource.
type buttonsFunc func() core.Buttons

func (f buttonsFunc) ButtonsPressed() core.Buttons { return f() }

// newEscapeModel plays the short testdata hall, which Up alone escapes.
func newEscapeModel(t *testing.T, store *storage.Store, input core.InputSource) (GameModel, *maze.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	maze.SetLevelsDir("../../games/maze/testdata/levels")
	maze.SetLevel("alpha")
	t.Cleanup(func() {
		maze.SetLevelsDir("")
		maze.SetLevel("")
	})

	game := maze.New(mazecore.VariantFull)
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, GameOptions{
		Logger: log.New(&bytes.Buffer{}),
		Input:  input,
	})
	m.Init()
	if game.Err() != nil {
		t.Fatalf("Reset() error = %v", game.Err())
	}
	return m, game
}

func TestGameModelUsesInputSource(t *testing.T) {
	ticks := 0
	m, game := newEscapeModel(t, nil, buttonsFunc(func() core.Buttons {
		ticks++
		return core.ButtonUp
	}))
	start := game.Snapshot()

	// Keys are tracked but the injected source drives the game.
	m = update(t, m, runeKey('p'))
	for range 5 {
		m = update(t, m, TickMsg{})
	}
	if ticks != 5 {
		t.Errorf("ButtonsPressed() called %d times, expected once per tick", ticks)
	}
	snap := game.Snapshot()
	if snap.Paused {
		t.Error("P reached the game past the injected source")
	}
	if snap.X == start.X {
		t.Error("scripted Up did not move the player")
	}
}

func TestGameModelSavesEscapeScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	next := core.ButtonUp
	m, _ := newEscapeModel(t, store, buttonsFunc(func() core.Buttons { return next }))

	for range 120 {
		m = update(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("expected GameOver after reaching the doorway")
	}

	scores, err := store.TopScores(maze.IDFull, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 10000 {
		t.Fatalf("scores = %+v, expected one escape at 10000", scores)
	}
	if n, _ := store.CountSignals(maze.IDFull, maze.TokenEscaped); n != 1 {
		t.Errorf("escaped signals = %d, expected 1", n)
	}

	// Restart starts a new scoring run.
	next = core.ButtonRestart
	m = update(t, m, TickMsg{})
	if m.State().GameOver {
		t.Fatal("restart did not leave the game-over screen")
	}
	next = core.ButtonUp
	for range 120 {
		m = update(t, m, TickMsg{})
	}
	if high, _ := store.AllScores(maze.IDFull); len(high) != 2 {
		t.Errorf("scores after second escape = %d, expected 2", len(high))
	}
}

func TestGameModelDefaultSession(t *testing.T) {
	m, _ := newTestModel(t, nil, "")
	if m.opts.Session != "local" {
		t.Errorf("Session = %q, expected local", m.opts.Session)
	}
}

func TestMenuLevelCycling(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if got := m.currentLevel().ID; got != "lighthouse" {
		t.Fatalf("initial level = %q, expected lighthouse", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if got := m.currentLevel().ID; got != "mirage" {
		t.Errorf("level after right = %q, expected mirage", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if got := m.currentLevel().ID; got != "lighthouse" {
		t.Errorf("level should wrap to lighthouse, got %q", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Enter should select a game")
	}
	if sel.LevelID != "mirage" {
		t.Errorf("LevelID = %q, expected mirage", sel.LevelID)
	}
}

func TestSessionStartsSelectedLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, GameOptions{
		Logger: log.New(&bytes.Buffer{}),
	})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRight})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	if !s.inGame || s.gameModel == nil {
		t.Fatal("Enter should start a game")
	}
	g, ok := s.gameModel.game.(*maze.Game)
	if !ok {
		t.Fatalf("game = %T, expected *maze.Game", s.gameModel.game)
	}
	if g.Level().ID != "mirage" {
		t.Errorf("level = %q, expected mirage", g.Level().ID)
	}
}

func TestRenderScreenColorRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetPen(core.ColorMid)
	s.Set(0, 0, '#')
	s.Set(1, 0, '#')
	out := RenderScreen(s)
	if !bytes.Contains([]byte(out), []byte("##")) {
		t.Errorf("RenderScreen() = %q, expected grouped run", out)
	}
}
