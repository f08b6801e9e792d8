// Package tui provides the Bubble Tea integration for the 2048 platform.
// It maps key presses to game actions, renders screen buffers and runs the
// menu, scoreboard and SSH session flows.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/m2048/internal/core"
	"github.com/vovakirdan/m2048/internal/registry"
	"github.com/vovakirdan/m2048/internal/storage"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

// Options configure a GameModel.
type Options struct {
	Store         *storage.Store
	Logger        *log.Logger
	Painter       *Painter
	ScreenshotDir string             // Defaults to ~/.m2048/screenshots
	Clipboard     func(string) error // nil disables board copy
	Embedded      bool               // Back returns to a parent menu instead of quitting
}

// SystemClipboard returns the local clipboard writer, or nil when the
// platform has no clipboard utility.
func SystemClipboard() func(string) error {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll
}

// GameModel is the Bubble Tea model for one game.
// It is event driven: every key press runs at most one Step.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	footer     lipgloss.Style
	status     string
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewGameModel creates a model and resets the game for the given screen.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Painter == nil {
		opts.Painter = defaultPainter
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	game.Reset(m.gameConfig())
	return m
}

// gameConfig returns the runtime config sized to the game screen.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW = m.screen.Width()
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board keeps its state; the game relayouts on the next Render.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes one key press.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyBoard()
		return m, nil
	}

	m.status = ""

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.recordScore()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.recordScore()
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.recordScore()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.scoreSaved = false
		return m, nil

	default:
		m.game.Step(core.FrameOf(action))
		return m, nil
	}
}

// recordScore saves the current run once, if it scored anything.
func (m *GameModel) recordScore() {
	state := m.game.State()
	if m.scoreSaved || state.Score <= 0 {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  state.Score,
	}
	if r, ok := m.game.(registry.RunReporter); ok {
		stats := r.RunStats()
		entry.MaxTile = stats.MaxTile
		entry.Moves = stats.Moves
		entry.GridSize = stats.GridSize
	}

	saved, err := m.opts.Store.SaveScore(entry)
	if err != nil {
		m.opts.Logger.Warn("could not save score", "game", entry.GameID, "error", err)
		return
	}
	m.opts.Logger.Debug("score saved", "game", saved.GameID, "score", saved.Score, "run", saved.RunID)
}

// saveScreenshot writes the current screen to a text file and returns a status line.
func (m *GameModel) saveScreenshot() string {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "screenshot failed: no home directory"
		}
		dir = filepath.Join(home, ".m2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	return "screenshot saved to " + path
}

// copyBoard copies the plain-text board to the clipboard and returns a status line.
func (m *GameModel) copyBoard() string {
	if m.opts.Clipboard == nil {
		return "clipboard unavailable"
	}
	if err := m.opts.Clipboard(m.game.BoardText()); err != nil {
		m.opts.Logger.Warn("could not copy board", "error", err)
		return "copy failed"
	}
	return "board copied to clipboard"
}

// View renders the game screen and the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	return m.opts.Painter.Render(m.screen) + "\n" + m.footer.Render(footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
