// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid shmup config")

// ShmupConfig contains all configuration for the shooter.
type ShmupConfig struct {
	World      ShmupWorld            `yaml:"world"`
	Player     ShmupPlayer           `yaml:"player"`
	Bullets    ShmupBullets          `yaml:"bullets"`
	Waves      ShmupWaves            `yaml:"waves"`
	Enemies    map[string]ShmupEnemy `yaml:"enemies"`
	Difficulty DifficultyConfig      `yaml:"difficulty"`
}

// ShmupWorld is the logical playfield size in world units.
type ShmupWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShmupPlayer defines the player ship.
type ShmupPlayer struct {
	Speed             float64 `yaml:"speed"`
	Reload            int     `yaml:"reload"`
	Lives             int     `yaml:"lives"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	BulletSpeed       float64 `yaml:"bullet_speed"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
	RespawnTicks      int     `yaml:"respawn_ticks"` // Ticks the ship stays down after a hit
}

// ShmupBullets defines projectile geometry.
type ShmupBullets struct {
	MuzzleOffset []float64 `yaml:"muzzle_offset"` // [x, y] from the enemy's top-left corner
	Width        float64   `yaml:"width"`
	Height       float64   `yaml:"height"`
}

// Muzzle returns the muzzle offset as a vector.
func (b ShmupBullets) Muzzle() dmath.Vec2 {
	if len(b.MuzzleOffset) != 2 {
		return dmath.Vec2{}
	}
	return dmath.NewVec2(b.MuzzleOffset[0], b.MuzzleOffset[1])
}

// ShmupWaves defines wave pacing.
type ShmupWaves struct {
	SpawnInterval int    `yaml:"spawn_interval"` // Ticks between roster entries
	Intermission  int    `yaml:"intermission"`   // Ticks between a cleared wave and the next
	StartWave     uint32 `yaml:"start_wave"`
}

// ShmupEnemy defines one enemy type.
type ShmupEnemy struct {
	Archetype string  `yaml:"archetype"`
	Bounces   uint32  `yaml:"bounces"`   // bouncing only
	TurnRate  float64 `yaml:"turn_rate"` // tracking only
	Axis      string  `yaml:"axis"`      // "horizontal" or "vertical"
	Amplitude float64 `yaml:"amplitude"` // Oscillation range around the spawn point
	Speed     float64 `yaml:"speed"`     // 0 = stationary
	Reload    int     `yaml:"reload"`    // Ticks between shots
	HP        int     `yaml:"hp"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// BuildArchetype returns the bullet archetype this enemy fires.
func (e ShmupEnemy) BuildArchetype() (logic.Archetype, error) {
	return logic.ParseArchetype(e.Archetype, e.Bounces, e.TurnRate)
}

// MovementAxis returns the oscillation axis, defaulting to horizontal.
func (e ShmupEnemy) MovementAxis() (logic.Axis, error) {
	switch e.Axis {
	case "", "horizontal":
		return logic.AxisX, nil
	case "vertical":
		return logic.AxisY, nil
	default:
		return logic.AxisX, fmt.Errorf("unknown axis %q", e.Axis)
	}
}

// Enemy returns the configuration for an enemy type.
func (c ShmupConfig) Enemy(t logic.EnemyType) (ShmupEnemy, bool) {
	e, ok := c.Enemies[t.String()]
	return e, ok
}

// Validate checks that the config can drive a game.
func (c ShmupConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	}
	if c.Player.Lives <= 0 {
		return fmt.Errorf("%w: player lives must be positive", ErrInvalidConfig)
	}
	if c.Player.Reload < 0 || c.Player.RespawnTicks < 0 {
		return fmt.Errorf("%w: player timing is negative", ErrInvalidConfig)
	}
	if len(c.Bullets.MuzzleOffset) != 2 {
		return fmt.Errorf("%w: muzzle_offset needs exactly two values", ErrInvalidConfig)
	}
	if c.Waves.SpawnInterval < 0 || c.Waves.Intermission < 0 {
		return fmt.Errorf("%w: wave timing is negative", ErrInvalidConfig)
	}

	for name, e := range c.Enemies {
		if _, err := logic.ParseEnemyType(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		a, err := e.BuildArchetype()
		if err != nil {
			return fmt.Errorf("%w: enemy %s: %w", ErrInvalidConfig, name, err)
		}
		if a.Kind() == logic.KindPlayerOwned {
			return fmt.Errorf("%w: enemy %s: %w", ErrInvalidConfig, name, logic.ErrPlayerOwnedArchetype)
		}
		if _, err := e.MovementAxis(); err != nil {
			return fmt.Errorf("%w: enemy %s: %w", ErrInvalidConfig, name, err)
		}
		if e.Reload < 0 {
			return fmt.Errorf("%w: enemy %s reload is negative", ErrInvalidConfig, name)
		}
		if e.HP <= 0 {
			return fmt.Errorf("%w: enemy %s hp must be positive", ErrInvalidConfig, name)
		}
	}

	for _, t := range logic.AllEnemyTypes() {
		if _, ok := c.Enemy(t); !ok {
			return fmt.Errorf("%w: enemy %s is not configured", ErrInvalidConfig, t)
		}
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave" or "none"
	MaxAt int    `yaml:"max_at"` // Wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy movement at max difficulty
	ReloadReduction float64 `yaml:"reload_reduction"` // Fraction of the reload period removed at max difficulty
	MinReload       int     `yaml:"min_reload"`       // Floor for shortened reload periods
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParseDifficultyPreset maps a preset name to its DifficultyPreset.
// An empty or unknown name reports false.
func ParseDifficultyPreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
