package shmup

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

// waveState tracks the roster being spawned and the pause between waves.
type waveState struct {
	wave         uint32
	roster       []logic.RosterEntry
	next         int // Index of the next roster entry to spawn
	countdown    int // Ticks until the next spawn
	intermission int // Ticks left before the next wave once this one is cleared
}

// remaining returns how many roster entries have not spawned yet.
func (w *waveState) remaining() int {
	return len(w.roster) - w.next
}

// startWave allocates a roster for wave n and resets the pacing counters.
func (g *Game) startWave(n uint32) {
	g.waves = waveState{
		wave:         n,
		roster:       logic.Allocate(n),
		intermission: g.intermission,
	}
	g.log.Info("wave started",
		"wave", n,
		"target", logic.TargetDifficulty(n),
		"enemies", len(g.waves.roster),
	)
}

// advanceWaves spawns the next roster entry when its interval has elapsed and
// starts the following wave once the current one is spawned and cleared.
func (g *Game) advanceWaves() error {
	w := &g.waves

	if w.remaining() > 0 {
		if w.countdown > 0 {
			w.countdown--
			return nil
		}
		spawn, err := g.buildEnemy(w.roster[w.next], w.wave)
		if err != nil {
			return err
		}
		g.commands.Spawn(spawn)
		w.next++
		w.countdown = max(g.cfg.Waves.SpawnInterval-1, 0)
		return nil
	}

	if countEnemies(g.world) > 0 {
		return nil
	}
	if w.intermission > 0 {
		w.intermission--
		return nil
	}
	g.startWave(w.wave + 1)
	return nil
}

// buildEnemy resolves a roster entry into the components of a new enemy.
// Reload periods and movement speed are fixed at spawn from the wave's
// difficulty level.
func (g *Game) buildEnemy(entry logic.RosterEntry, wave uint32) (EnemySpawn, error) {
	spec, ok := g.cfg.Enemy(entry.Type)
	if !ok {
		return EnemySpawn{}, fmt.Errorf("shmup: enemy %s not configured", entry.Type)
	}
	archetype, err := spec.BuildArchetype()
	if err != nil {
		return EnemySpawn{}, fmt.Errorf("shmup: enemy %s: %w", entry.Type, err)
	}
	axis, err := spec.MovementAxis()
	if err != nil {
		return EnemySpawn{}, fmt.Errorf("shmup: enemy %s: %w", entry.Type, err)
	}

	pos := entry.Position
	speed := g.difficulty.Speed(spec.Speed, int(wave))
	pattern, vel := g.movement(axis, pos, spec, speed)

	return EnemySpawn{
		Transform: TransformData{Position: pos, Velocity: vel},
		Hitbox:    HitboxData{W: spec.Width, H: spec.Height},
		Enemy: EnemyData{
			Type:      entry.Type,
			Archetype: archetype,
			Pattern:   pattern,
			Reload:    logic.NewReload(g.difficulty.ReloadPeriod(spec.Reload, int(wave))),
			HP:        spec.HP,
		},
	}, nil
}

// movement builds an oscillation range of the enemy's amplitude around its
// spawn point, kept inside the world.
func (g *Game) movement(axis logic.Axis, pos dmath.Vec2, spec config.ShmupEnemy, speed float64) (logic.MovementPattern, dmath.Vec2) {
	if axis == logic.AxisY {
		lo := core.ClampF(pos.Y-spec.Amplitude, 0, pos.Y)
		hi := core.ClampF(pos.Y+spec.Amplitude, pos.Y, g.cfg.World.Height-spec.Height)
		return logic.VerticalOscillation(lo, hi), dmath.NewVec2(0, speed)
	}
	lo := core.ClampF(pos.X-spec.Amplitude, 0, pos.X)
	hi := core.ClampF(pos.X+spec.Amplitude, pos.X, g.cfg.World.Width-spec.Width)
	return logic.HorizontalOscillation(lo, hi), dmath.NewVec2(speed, 0)
}
