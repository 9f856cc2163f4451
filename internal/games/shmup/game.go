// Package shmup implements the bullet-pattern shooter on top of the logic
// engine. Entities live in a donburi world; each tick runs a fixed sequence
// of systems and applies queued entity changes at the end.
package shmup

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Start at the configured wave
	ModeRush                     // Start at wave 5 with short breaks
)

// rushStartWave is the first wave of rush mode.
const rushStartWave = 5

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives gameplay events. Silent unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParseDifficultyPreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("shmup", func() registry.Game { return New() })
	registry.Register("shmup_rush", func() registry.Game { return NewRush() })
}

// Game implements the shooter.
type Game struct {
	mode GameMode

	world    donburi.World
	commands *CommandQueue
	planner  *logic.Planner
	assets   Assets
	waves    waveState

	state        string
	score        int
	tick         uint64
	intermission int

	runtime    core.RuntimeConfig
	cfg        config.ShmupConfig
	difficulty *config.DifficultyManager
	log        *log.Logger
}

// New creates a new game in campaign mode.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewRush creates a new game in rush mode.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return "shmup_rush"
	}
	return "shmup"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Shmup (Rush)"
	}
	return "Shmup"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.log = logger.WithPrefix(g.ID())

	// Load game config
	cfg, err := config.LoadShmup(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultShmupConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyShmupPreset(&cfg, difficultyPreset)
	}

	g.reset(runtime, cfg)
}

// reset starts a fresh run with an already loaded config.
func (g *Game) reset(runtime core.RuntimeConfig, cfg config.ShmupConfig) {
	if g.log == nil {
		g.log = logger.WithPrefix(g.ID())
	}
	g.runtime = runtime
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.world = donburi.NewWorld()
	g.commands = NewCommandQueue()
	g.planner = logic.NewPlanner(cfg.World.Width, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness must be seedable
	if g.assets == nil {
		g.assets = DefaultAssets()
	}

	g.state = StatePlaying
	g.score = 0
	g.tick = 0

	g.intermission = cfg.Waves.Intermission
	start := cfg.Waves.StartWave
	if start == 0 {
		start = 1
	}
	if g.mode == ModeRush {
		start = max(start, rushStartWave)
		g.intermission /= 3
	}

	g.spawnPlayer()
	g.startWave(start)
}

func (g *Game) playerStart() dmath.Vec2 {
	return dmath.NewVec2(
		(g.cfg.World.Width-g.cfg.Player.Width)/2,
		g.cfg.World.Height-g.cfg.Player.Height-20,
	)
}

func (g *Game) spawnPlayer() {
	entry := g.world.Entry(g.world.Create(TagPlayer, Transform, Hitbox, Player, Sprite))
	Transform.SetValue(entry, TransformData{Position: g.playerStart()})
	Hitbox.SetValue(entry, HitboxData{W: g.cfg.Player.Width, H: g.cfg.Player.Height})
	Player.SetValue(entry, PlayerData{
		Lives:  g.cfg.Player.Lives,
		Reload: logic.Reload{Period: g.cfg.Player.Reload},
	})
	Sprite.SetValue(entry, SpriteData{Sheet: SheetPlayer})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.reset(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	g.updatePlayer(in)
	g.oscillateEnemies()
	if err := g.fireEnemies(); err != nil {
		g.log.Error("enemy fire aborted", "tick", g.tick, "err", err)
	}
	g.integrate()
	g.collide()
	if err := g.advanceWaves(); err != nil {
		g.log.Error("wave spawn failed", "wave", g.waves.wave, "err", err)
	}
	g.commands.Flush(g.world)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     int(g.waves.wave),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Config returns the config the current run uses.
func (g *Game) Config() config.ShmupConfig {
	return g.cfg
}
