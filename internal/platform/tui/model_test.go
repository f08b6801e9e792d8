package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/m2048/internal/core"
	"github.com/vovakirdan/m2048/internal/registry"
	"github.com/vovakirdan/m2048/internal/storage"
)

// fakeGame scores 4 points per move and records what the platform sends.
type fakeGame struct {
	resets int
	steps  []core.InputFrame
	score  int
	moves  int
	cfg    core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.score = 0
	g.moves = 0
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	g.score += 4
	g.moves++
	return core.StepResult{State: g.State(), Changed: true}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE BOARD")
}

func (g *fakeGame) State() core.GameState { return core.GameState{Score: g.score} }
func (g *fakeGame) Controls() string      { return "none" }
func (g *fakeGame) BoardText() string     { return "2 . . 4" }

func (g *fakeGame) RunStats() registry.RunStats {
	return registry.RunStats{MaxTile: 8, Moves: g.moves, GridSize: 4}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestModel(t *testing.T, opts Options) (GameModel, *fakeGame) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	game := &fakeGame{}
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}, opts)
	return m, game
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func TestGameModelResetsOnCreate(t *testing.T) {
	_, game := newTestModel(t, Options{})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if game.cfg.ScreenH != 24-footerHeight || game.cfg.ScreenW != 80 {
		t.Errorf("game screen = %dx%d, want 80x%d", game.cfg.ScreenW, game.cfg.ScreenH, 24-footerHeight)
	}
	if game.cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", game.cfg.Seed)
	}
}

func TestGameModelOneStepPerKey(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, runeKey('w'))
	press(t, m, runeKey('x'))

	if len(game.steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(game.steps))
	}
	if !game.steps[0].Has(core.ActionLeft) || !game.steps[1].Has(core.ActionUp) {
		t.Errorf("steps = %v, want left then up", game.steps)
	}
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	m, game := newTestModel(t, Options{})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(GameModel)

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-footerHeight)
	}
}

func TestGameModelQuitSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, Options{Store: store})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := press(t, m, runeKey('q'))

	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}

	// A second quit must not record the run again.
	m.recordScore()

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 8 || scores[0].Moves != 2 || scores[0].MaxTile != 8 || scores[0].GridSize != 4 {
		t.Errorf("saved entry = %+v", scores[0])
	}
}

func TestGameModelRestartSavesAndResets(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, Options{Store: store})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, runeKey('r'))

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if game.cfg.Seed == 7 {
		t.Error("restart should pick a new seed")
	}

	// The new run is recorded separately.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	press(t, m, runeKey('q'))

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 2 {
		t.Errorf("saved %d scores, want 2", len(scores))
	}
}

func TestGameModelZeroScoreNotSaved(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, Options{Store: store})

	press(t, m, runeKey('q'))

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 0 {
		t.Errorf("saved %d scores, want 0", len(scores))
	}
}

func TestGameModelBack(t *testing.T) {
	m, _ := newTestModel(t, Options{Embedded: true})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Error("embedded back should return to the menu without quitting")
	}

	m, _ = newTestModel(t, Options{})
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || cmd == nil {
		t.Error("standalone back should quit")
	}
}

func TestGameModelCopyBoard(t *testing.T) {
	var copied string
	m, _ := newTestModel(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "2 . . 4" {
		t.Errorf("copied %q, want board text", copied)
	}
	if !strings.Contains(m.View(), "copied") {
		t.Error("footer should confirm the copy")
	}

	m, _ = newTestModel(t, Options{Clipboard: func(string) error { return errors.New("no display") }})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "copy failed" {
		t.Errorf("status = %q, want copy failed", m.status)
	}

	m, _ = newTestModel(t, Options{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "clipboard unavailable" {
		t.Errorf("status = %q, want clipboard unavailable", m.status)
	}

	// Any other key clears the status line.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.status != "" {
		t.Errorf("status = %q, want cleared", m.status)
	}
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "screenshot saved") {
		t.Fatalf("status = %q", m.status)
	}

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshot files = %v (err %v), want 1", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "FAKE BOARD") {
		t.Errorf("screenshot starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	view := m.View()
	if !strings.Contains(view, "FAKE BOARD") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(view, "restart") {
		t.Error("view should contain the help footer")
	}

	m, _ = press(t, m, runeKey('q'))
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
