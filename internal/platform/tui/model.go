package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/replay"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// Options carries the optional collaborators of a game model.
type Options struct {
	Store    *storage.Store
	Recorder *replay.Recorder // Receives every tick until the first game over
	Logger   *log.Logger

	// AllowBack lets "b" leave a paused or finished game. Used by the
	// SSH session to return to the mode picker.
	AllowBack bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	recorder   *replay.Recorder
	log        *log.Logger
	keys       *KeyMapper
	loop       uint64
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	banner     string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		recorder:   opts.Recorder,
		log:        logger,
		keys:       NewKeyMapper(),
		loop:       nextLoop(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		allowBack:  opts.AllowBack,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is in world units, so a resize only changes the viewport
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.allowBack && m.keys.IsBack(msg) && (m.gameState.GameOver || m.gameState.Paused) {
		m.stopRecording()
		m.backToMenu = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.stopRecording()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.banner = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	if m.recorder != nil {
		if err := m.recorder.Record(m.inputFrame); err != nil {
			m.log.Error("recording stopped", "err", err)
			m.stopRecording()
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.stopRecording()
		if !m.scoreSaved {
			m.saveScore()
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *Model) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.banner = m.recordBanner()
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Wave); err != nil {
		m.log.Error("score not saved", "err", err)
		return
	}
	m.log.Info("score saved", "mode", m.game.ID(), "score", m.gameState.Score, "wave", m.gameState.Wave)
}

// recordBanner compares the finished run with the stored bests. It must run
// before the run itself is saved.
func (m *Model) recordBanner() string {
	id := m.game.ID()
	best, err := m.store.HighScore(id)
	if err != nil {
		m.log.Warn("high score lookup failed", "err", err)
		return ""
	}
	if m.gameState.Score > best {
		m.log.Info("new high score", "mode", id, "score", m.gameState.Score, "previous", best)
		return "NEW HIGH SCORE"
	}
	bestWave, err := m.store.BestWave(id)
	if err != nil {
		m.log.Warn("best wave lookup failed", "err", err)
		return ""
	}
	if m.gameState.Wave > bestWave {
		m.log.Info("new best wave", "mode", id, "wave", m.gameState.Wave, "previous", bestWave)
		return "NEW BEST WAVE"
	}
	return ""
}

// stopRecording flushes and detaches the recorder. Safe to call repeatedly.
func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	ticks := m.recorder.Ticks()
	if h, ok := m.game.(replay.Hasher); ok {
		if err := m.recorder.End(h.StateHash()); err != nil {
			m.log.Error("replay trailer not written", "err", err)
		}
	}
	if err := m.recorder.Close(); err != nil {
		m.log.Error("replay not flushed", "err", err)
	} else {
		m.log.Info("replay saved", "ticks", ticks)
	}
	m.recorder = nil
}

// saveScreenshot writes the current frame as plain text under ~/.shmup/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".shmup", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.banner != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.banner)
	}
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the mode picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game in the current terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.stopRecording()
	}
	return err
}
