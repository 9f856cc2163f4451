package shmup

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

// ShotRequest asks for a bullet entity to be created at the end of the tick.
type ShotRequest struct {
	Position  dmath.Vec2
	Velocity  dmath.Vec2
	Archetype logic.Archetype
	Damages   Faction
	Sprite    SpriteData
	Size      HitboxData
}

// EnemySpawn asks for an enemy entity to be created at the end of the tick.
type EnemySpawn struct {
	Transform TransformData
	Hitbox    HitboxData
	Enemy     EnemyData
}

// CommandQueue defers entity creation and removal until every system of a
// tick has run, so systems never see entities created or removed mid-tick.
type CommandQueue struct {
	shots    []ShotRequest
	spawns   []EnemySpawn
	despawns []donburi.Entity
}

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Shoot queues a bullet.
func (q *CommandQueue) Shoot(r ShotRequest) {
	q.shots = append(q.shots, r)
}

// Spawn queues an enemy.
func (q *CommandQueue) Spawn(s EnemySpawn) {
	q.spawns = append(q.spawns, s)
}

// Despawn queues an entity for removal. Removing the same entity twice is safe.
func (q *CommandQueue) Despawn(e donburi.Entity) {
	q.despawns = append(q.despawns, e)
}

// Shots returns the queued shot requests.
func (q *CommandQueue) Shots() []ShotRequest {
	return q.shots
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.shots) + len(q.spawns) + len(q.despawns)
}

// Reset drops all pending commands.
func (q *CommandQueue) Reset() {
	q.shots = q.shots[:0]
	q.spawns = q.spawns[:0]
	q.despawns = q.despawns[:0]
}

// Flush applies removals first, then creates enemies and bullets in the order
// they were queued.
func (q *CommandQueue) Flush(w donburi.World) {
	for _, e := range q.despawns {
		if w.Valid(e) {
			w.Remove(e)
		}
	}

	for _, s := range q.spawns {
		entry := w.Entry(w.Create(TagEnemy, Transform, Hitbox, Enemy, Sprite))
		Transform.SetValue(entry, s.Transform)
		Hitbox.SetValue(entry, s.Hitbox)
		Enemy.SetValue(entry, s.Enemy)
		Sprite.SetValue(entry, SpriteData{Sheet: SheetEnemies, Frame: int(s.Enemy.Type)})
	}

	for _, r := range q.shots {
		entry := w.Entry(w.Create(TagBullet, Transform, Hitbox, Bullet, Sprite))
		Transform.SetValue(entry, TransformData{Position: r.Position, Velocity: r.Velocity})
		Hitbox.SetValue(entry, r.Size)

		var bounces uint32
		if b, ok := r.Archetype.(logic.Bouncing); ok {
			bounces = b.Bounces
		}
		Bullet.SetValue(entry, BulletData{Archetype: r.Archetype, Damages: r.Damages, BouncesLeft: bounces})
		Sprite.SetValue(entry, r.Sprite)
	}

	q.Reset()
}
