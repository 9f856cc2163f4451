package shmup

import (
	"math"

	"github.com/yohamta/donburi"
)

// Snapshot is a summary of the game state used by determinism tests and
// replay output. Entity data is flattened in world iteration order.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	Wave      uint32
	RosterOut int // Roster entries not yet spawned
	Lives     int
	PlayerX   float64
	PlayerY   float64
	Dead      bool

	Enemies       int
	EnemyBullets  int
	PlayerBullets int

	// Each enemy is 5 values: Type, X, Y, HP, Countdown
	EnemyData []float64
	// Each bullet is 5 values: Faction, X, Y, VX, VY
	BulletData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Score:     g.score,
		Wave:      g.waves.wave,
		RosterOut: g.waves.remaining(),
	}

	if pe, ok := playerEntry(g.world); ok {
		p := Player.Get(pe)
		tr := Transform.Get(pe)
		snap.Lives = p.Lives
		snap.Dead = p.Dead
		snap.PlayerX = tr.Position.X
		snap.PlayerY = tr.Position.Y
	}

	Enemy.Each(g.world, func(entry *donburi.Entry) {
		e := Enemy.Get(entry)
		tr := Transform.Get(entry)
		snap.Enemies++
		snap.EnemyData = append(snap.EnemyData,
			float64(e.Type), tr.Position.X, tr.Position.Y, float64(e.HP), float64(e.Reload.Countdown))
	})

	Bullet.Each(g.world, func(entry *donburi.Entry) {
		b := Bullet.Get(entry)
		tr := Transform.Get(entry)
		if b.Damages == FactionPlayer {
			snap.EnemyBullets++
		} else {
			snap.PlayerBullets++
		}
		snap.BulletData = append(snap.BulletData,
			float64(b.Damages), tr.Position.X, tr.Position.Y, tr.Velocity.X, tr.Velocity.Y)
	})

	return snap
}

// StateHash fingerprints the current state for replay verification.
func (g *Game) StateHash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RosterOut) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	if snap.Dead {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	return h
}
