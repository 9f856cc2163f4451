package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/replay"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// scriptedGame ends after a fixed number of ticks and remembers its input.
type scriptedGame struct {
	ticks    int
	endAfter int
	resets   int
	inputs   [][]core.Action
	state    core.GameState
}

func (g *scriptedGame) ID() string    { return "tui_stub" }
func (g *scriptedGame) Title() string { return "Stub" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
	g.inputs = nil
	g.state = core.GameState{Wave: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	g.ticks++
	g.inputs = append(g.inputs, in.List())
	g.state.Score += 10
	if g.ticks%3 == 0 {
		g.state.Wave++
	}
	if g.endAfter > 0 && g.ticks >= g.endAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) StateHash() uint64 { return uint64(g.ticks)<<32 | uint64(g.state.Score) }

func init() {
	registry.Register("tui_stub", func() registry.Game { return &scriptedGame{endAfter: 5} })
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}
}

// tick delivers one tick addressed to m's loop.
func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{Loop: m.loop})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelForwardsInputOncePerTick(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m, _ = press(m, runeKey('a'))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = tick(t, m)

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.inputs))
	}
	if len(g.inputs[0]) != 2 || g.inputs[0][0] != core.ActionLeft || g.inputs[0][1] != core.ActionFire {
		t.Errorf("first frame = %v, expected [Left Fire]", g.inputs[0])
	}
	if len(g.inputs[1]) != 0 {
		t.Errorf("second frame = %v, expected input to be cleared", g.inputs[1])
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	next, cmd := m.Update(TickMsg{Loop: m.loop + 1000})
	if cmd != nil {
		t.Error("a tick from another loop should not schedule anything")
	}
	if next.(Model).game.(*scriptedGame).ticks != 0 {
		t.Error("a tick from another loop should not step the game")
	}
}

func TestModelSavesScoreOnceWithWave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAfter: 4}
	m := NewModel(g, testRuntime(), Options{Store: store})
	m.Init()

	for range 6 {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	scores, err := store.AllScores("tui_stub")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(scores))
	}
	if scores[0].Score != 40 || scores[0].Wave != 2 {
		t.Errorf("saved run = %+v, expected score 40 at wave 2", scores[0])
	}
}

func TestModelAnnouncesRecords(t *testing.T) {
	tests := []struct {
		name      string
		prevScore int
		prevWave  int
		banner    string
	}{
		{"beats the high score", 20, 5, "NEW HIGH SCORE"},
		{"beats only the best wave", 100, 1, "NEW BEST WAVE"},
		{"beats nothing", 100, 5, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
			if err != nil {
				t.Fatalf("storage.Open() failed: %v", err)
			}
			defer store.Close()
			if _, err := store.SaveScore("tui_stub", tc.prevScore, tc.prevWave); err != nil {
				t.Fatalf("SaveScore() failed: %v", err)
			}

			// Ends with score 40 at wave 2
			m := NewModel(&scriptedGame{endAfter: 4}, testRuntime(), Options{Store: store})
			m.Init()
			for range 4 {
				m = tick(t, m)
			}

			if m.banner != tc.banner {
				t.Errorf("banner = %q, expected %q", m.banner, tc.banner)
			}
			if tc.banner != "" && !strings.Contains(m.View(), tc.banner) {
				t.Errorf("view does not show %q", tc.banner)
			}
		})
	}
}

func TestModelRestartResetsGame(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()
	m = tick(t, m)

	m, _ = press(m, runeKey('r'))
	m = tick(t, m)

	if g.resets != 2 {
		t.Errorf("Reset called %d times, expected 2", g.resets)
	}
	if m.State().GameOver || m.scoreSaved {
		t.Error("restart should clear the game over state")
	}
}

func TestModelRecordsUntilGameOver(t *testing.T) {
	var buf bytes.Buffer
	rec, err := replay.NewRecorder(&buf, replay.Header{Mode: "tui_stub", Seed: 7, TickRate: 60})
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}

	g := &scriptedGame{endAfter: 3}
	m := NewModel(g, testRuntime(), Options{Recorder: rec})
	m.Init()

	m, _ = press(m, runeKey('d'))
	for range 5 {
		m = tick(t, m)
	}
	if m.recorder != nil {
		t.Fatal("recorder should be detached after game over")
	}

	r, err := replay.NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader() failed: %v", err)
	}
	played, err := replay.Run(t.Context(), r, &scriptedGame{endAfter: 3})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if played.Ticks != 3 || played.State.Score != 30 {
		t.Errorf("playback = %+v, expected 3 ticks and score 30", played)
	}
	if !played.Verified {
		t.Error("playback should be verified against the recorded trailer")
	}
}

func TestModelQuitStopsRecording(t *testing.T) {
	var buf bytes.Buffer
	rec, err := replay.NewRecorder(&buf, replay.Header{Mode: "tui_stub"})
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}

	m := NewModel(&scriptedGame{}, testRuntime(), Options{Recorder: rec})
	m.Init()
	m = tick(t, m)

	m, cmd := press(m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.recorder != nil {
		t.Error("quitting should flush and detach the recorder")
	}
	if buf.Len() == 0 {
		t.Error("recorded frames should be flushed on quit")
	}
}

func TestModelBackOnlyWhenAllowed(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m, _ = press(m, runeKey('p'))
	m = tick(t, m)
	m, _ = press(m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored without AllowBack")
	}

	m = NewModel(&scriptedGame{}, testRuntime(), Options{AllowBack: true})
	m.Init()
	m, _ = press(m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored while playing")
	}
	m, _ = press(m, runeKey('p'))
	m = tick(t, m)
	m, _ = press(m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := NewModel(&scriptedGame{}, testRuntime(), Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = next.(Model)
	if m.screen.Width() != 30 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, expected 30x10", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "STUB") {
		t.Error("View() should contain the rendered game")
	}
}
