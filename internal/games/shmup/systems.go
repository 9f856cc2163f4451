package shmup

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

// ErrPlayerUnavailable is returned when the player entity cannot be resolved
// while enemies are firing.
var ErrPlayerUnavailable = errors.New("shmup: player entity unavailable")

// despawnMargin is how far past the world edge a bullet may travel before it
// is removed.
const despawnMargin = 32.0

// playerEntry returns the player's entry, if any.
func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	return TagPlayer.First(w)
}

// updatePlayer applies movement input, runs the player's reload and queues
// player shots. A downed ship only counts down to respawn.
func (g *Game) updatePlayer(in core.InputFrame) {
	entry, ok := playerEntry(g.world)
	if !ok {
		return
	}
	p := Player.Get(entry)
	tr := Transform.Get(entry)
	hb := Hitbox.Get(entry)

	if p.Invulnerable > 0 {
		p.Invulnerable--
	}

	if p.Dead {
		tr.Velocity = dmath.Vec2{}
		p.RespawnIn--
		if p.RespawnIn <= 0 {
			p.Dead = false
			p.Invulnerable = g.cfg.Player.InvulnerableTicks
			tr.Position = g.playerStart()
			g.log.Debug("player respawned", "lives", p.Lives)
		}
		return
	}

	var dir dmath.Vec2
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if !dir.IsZero() {
		dir = dir.Normalized()
	}
	tr.Velocity = dir.MulScalar(g.cfg.Player.Speed)

	p.Reload.Cool()
	if in.Has(core.ActionFire) && p.Reload.Ready() {
		if err := g.firePlayer(tr.Position, hb); err != nil {
			g.log.Error("player fire aborted", "err", err)
			return
		}
		p.Reload.Trigger()
	}
}

func (g *Game) firePlayer(pos dmath.Vec2, hb *HitboxData) error {
	if _, err := g.assets.Lookup(SheetBullets); err != nil {
		return err
	}
	size := HitboxData{W: g.cfg.Bullets.Width, H: g.cfg.Bullets.Height}
	g.commands.Shoot(ShotRequest{
		Position:  dmath.NewVec2(pos.X+hb.W/2-size.W/2, pos.Y-size.H),
		Velocity:  dmath.NewVec2(0, -g.cfg.Player.BulletSpeed),
		Archetype: logic.PlayerOwned{},
		Damages:   FactionEnemy,
		Sprite:    SpriteData{Sheet: SheetBullets, Frame: bulletFrame(logic.PlayerOwned{})},
		Size:      size,
	})
	return nil
}

// oscillateEnemies reflects enemies that left their movement range.
func (g *Game) oscillateEnemies() {
	Enemy.Each(g.world, func(entry *donburi.Entry) {
		e := Enemy.Get(entry)
		tr := Transform.Get(entry)
		logic.Oscillate(tr.Position, &tr.Velocity, e.Pattern)
	})
}

// fireEnemies runs every enemy's reload and queues a bullet for each one that
// fires. Nothing happens while the player is down. The pass plans every shot
// before touching any reload; on error no reload changes and no bullet is
// produced this tick.
func (g *Game) fireEnemies() error {
	pe, ok := playerEntry(g.world)
	if !ok || !pe.HasComponent(Player) || !pe.HasComponent(Transform) {
		return ErrPlayerUnavailable
	}
	if Player.Get(pe).Dead {
		return nil
	}

	ptr := Transform.Get(pe)
	target := logic.Target{Position: ptr.Position, Velocity: ptr.Velocity}

	if _, err := g.assets.Lookup(SheetBullets); err != nil {
		return err
	}

	muzzle := g.cfg.Bullets.Muzzle()
	size := HitboxData{W: g.cfg.Bullets.Width, H: g.cfg.Bullets.Height}

	var (
		shots   []ShotRequest
		enemies []*EnemyData
		planErr error
	)
	Enemy.Each(g.world, func(entry *donburi.Entry) {
		if planErr != nil {
			return
		}
		e := Enemy.Get(entry)
		enemies = append(enemies, e)
		if !e.Reload.Ready() {
			return
		}
		origin := Transform.Get(entry).Position
		vel, err := g.planner.Plan(origin, e.Archetype, target)
		if err != nil {
			planErr = fmt.Errorf("enemy %s: %w", e.Type, err)
			return
		}
		shots = append(shots, ShotRequest{
			Position:  origin.Add(muzzle),
			Velocity:  vel,
			Archetype: e.Archetype,
			Damages:   FactionPlayer,
			Sprite:    SpriteData{Sheet: SheetBullets, Frame: bulletFrame(e.Archetype)},
			Size:      size,
		})
	})
	if planErr != nil {
		return planErr
	}

	for _, e := range enemies {
		e.Reload.Tick()
	}
	for _, s := range shots {
		g.commands.Shoot(s)
	}
	return nil
}

// integrate moves every entity by its velocity. Bouncing bullets reflect off
// the side walls while they have bounces left; other bullets leaving the
// world are removed.
func (g *Game) integrate() {
	width := g.cfg.World.Width
	height := g.cfg.World.Height

	Transform.Each(g.world, func(entry *donburi.Entry) {
		tr := Transform.Get(entry)
		tr.Position = tr.Position.Add(tr.Velocity)

		hb := Hitbox.Get(entry)
		switch {
		case entry.HasComponent(Player):
			tr.Position.X = core.ClampF(tr.Position.X, 0, width-hb.W)
			tr.Position.Y = core.ClampF(tr.Position.Y, 0, height-hb.H)
		case entry.HasComponent(Bullet):
			b := Bullet.Get(entry)
			// Walls sit at 0 and width-hb.W and the shot starts at origin+muzzle,
			// so the path drifts slightly from the planner's 0..width unrolling.
			if b.BouncesLeft > 0 {
				if tr.Position.X < 0 {
					tr.Position.X = -tr.Position.X
					tr.Velocity.X = -tr.Velocity.X
					b.BouncesLeft--
				} else if right := width - hb.W; tr.Position.X > right {
					tr.Position.X = 2*right - tr.Position.X
					tr.Velocity.X = -tr.Velocity.X
					b.BouncesLeft--
				}
			}
			if outside(tr.Position, hb, width, height) {
				g.commands.Despawn(entry.Entity())
			}
		}
	})
}

func outside(pos dmath.Vec2, hb *HitboxData, width, height float64) bool {
	return pos.X+hb.W < -despawnMargin || pos.X > width+despawnMargin ||
		pos.Y+hb.H < -despawnMargin || pos.Y > height+despawnMargin
}

// collide resolves bullet hits. Each bullet hits at most one target.
func (g *Game) collide() {
	pe, hasPlayer := playerEntry(g.world)
	var playerBox core.Box
	var player *PlayerData
	if hasPlayer {
		player = Player.Get(pe)
		playerBox = Hitbox.Get(pe).Box(Transform.Get(pe).Position)
	}

	removed := make(map[donburi.Entity]bool)

	Bullet.Each(g.world, func(be *donburi.Entry) {
		b := Bullet.Get(be)
		box := Hitbox.Get(be).Box(Transform.Get(be).Position)

		switch b.Damages {
		case FactionPlayer:
			if !hasPlayer || player.Dead || player.Invulnerable > 0 {
				return
			}
			if box.Intersects(playerBox) {
				removed[be.Entity()] = true
				g.commands.Despawn(be.Entity())
				g.hitPlayer(player)
			}
		case FactionEnemy:
			Enemy.Each(g.world, func(ee *donburi.Entry) {
				if removed[be.Entity()] || removed[ee.Entity()] {
					return
				}
				if !box.Intersects(Hitbox.Get(ee).Box(Transform.Get(ee).Position)) {
					return
				}
				removed[be.Entity()] = true
				g.commands.Despawn(be.Entity())

				e := Enemy.Get(ee)
				e.HP--
				if e.HP <= 0 {
					removed[ee.Entity()] = true
					g.commands.Despawn(ee.Entity())
					g.score += e.Type.Weight() * 10
				}
			})
		}
	})
}

func (g *Game) hitPlayer(p *PlayerData) {
	p.Lives--
	p.Dead = true
	p.RespawnIn = g.cfg.Player.RespawnTicks
	g.log.Info("player hit", "lives", p.Lives, "wave", g.waves.wave)

	if p.Lives <= 0 {
		g.state = StateGameOver
		g.log.Info("game over", "score", g.score, "wave", g.waves.wave, "tick", g.tick)
	}
}

func countEnemies(w donburi.World) int {
	n := 0
	Enemy.Each(w, func(*donburi.Entry) { n++ })
	return n
}
