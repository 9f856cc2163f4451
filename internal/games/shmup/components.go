package shmup

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

// Faction says which side a bullet hurts.
type Faction uint8

const (
	FactionPlayer Faction = iota // Hurts the player
	FactionEnemy                 // Hurts enemies
)

// TransformData is the position and velocity of an entity in world units.
// Position is the top-left corner of the hitbox.
type TransformData struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
}

// HitboxData is the collision size of an entity.
type HitboxData struct {
	W, H float64
}

// Box returns the world-space box at the given position.
func (h HitboxData) Box(pos dmath.Vec2) core.Box {
	return core.Box{Pos: pos, W: h.W, H: h.H}
}

// EnemyData is the firing and movement state of an enemy.
type EnemyData struct {
	Type      logic.EnemyType
	Archetype logic.Archetype
	Pattern   logic.MovementPattern
	Reload    logic.Reload
	HP        int
}

// BulletData is the state of a projectile.
type BulletData struct {
	Archetype   logic.Archetype
	Damages     Faction
	BouncesLeft uint32
}

// PlayerData is the player ship's state.
type PlayerData struct {
	Lives        int
	Reload       logic.Reload
	Invulnerable int  // Ticks of remaining invulnerability
	Dead         bool // Ship is down; enemies hold fire until it respawns
	RespawnIn    int
}

// SpriteData selects a glyph from a sprite sheet.
type SpriteData struct {
	Sheet string
	Frame int
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Hitbox    = donburi.NewComponentType[HitboxData]()
	Enemy     = donburi.NewComponentType[EnemyData]()
	Bullet    = donburi.NewComponentType[BulletData]()
	Player    = donburi.NewComponentType[PlayerData]()
	Sprite    = donburi.NewComponentType[SpriteData]()
)

var (
	TagPlayer = donburi.NewTag().SetName("Player")
	TagEnemy  = donburi.NewTag().SetName("Enemy")
	TagBullet = donburi.NewTag().SetName("Bullet")
)
