package shmup

import (
	"fmt"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Minimum terminal size for a playable field.
const (
	minScreenW = 20
	minScreenH = 12
)

// hudRows is the number of rows above the playfield border.
const hudRows = 2

// cellAspect is the height-to-width ratio of a terminal cell.
const cellAspect = 2.0

// viewport maps world coordinates to screen cells inside the field border.
type viewport struct {
	x0, y0 int // First inner cell
	w, h   int // Inner size in cells
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	innerH := dst.Height() - hudRows - 2
	innerW := int(float64(innerH) * g.cfg.World.Width / g.cfg.World.Height * cellAspect)
	innerW = core.Clamp(innerW, 1, dst.Width()-2)

	return viewport{
		x0: (dst.Width()-innerW-2)/2 + 1,
		y0: hudRows + 1,
		w:  innerW,
		h:  innerH,
		sx: float64(innerW) / g.cfg.World.Width,
		sy: float64(innerH) / g.cfg.World.Height,
	}
}

// cell returns the screen cell for a world point, clamped inside the field.
func (v viewport) cell(p dmath.Vec2) (int, int) {
	x := core.Clamp(int(p.X*v.sx), 0, v.w-1)
	y := core.Clamp(int(p.Y*v.sy), 0, v.h-1)
	return v.x0 + x, v.y0 + y
}

// inside reports whether a world point maps into the field.
func (v viewport) inside(p dmath.Vec2) bool {
	x, y := int(p.X*v.sx), int(p.Y*v.sy)
	return p.X >= 0 && p.Y >= 0 && x < v.w && y < v.h
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.viewport(dst)
	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(v.x0-1, v.y0-1, v.w+2, v.h+2))

	g.renderEntities(dst, v, Enemy.Each)
	g.renderEntities(dst, v, Bullet.Each)
	g.renderPlayer(dst, v)

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and wave indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	lives := 0
	if pe, ok := playerEntry(g.world); ok {
		lives = Player.Get(pe).Lives
	}
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", lives))

	waveText := fmt.Sprintf("Wave: %d", g.waves.wave)
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderEntities draws every entity visited by each as a row of glyphs
// spanning its scaled hitbox width.
func (g *Game) renderEntities(dst *core.Screen, v viewport, each func(donburi.World, func(*donburi.Entry))) {
	each(g.world, func(entry *donburi.Entry) {
		sheet, err := g.assets.Lookup(Sprite.Get(entry).Sheet)
		if err != nil {
			return
		}
		glyph, color := sheet.Frame(Sprite.Get(entry).Frame)

		tr := Transform.Get(entry)
		hb := Hitbox.Get(entry)
		center := tr.Position.Add(dmath.NewVec2(hb.W/2, hb.H/2))
		if !v.inside(center) {
			return
		}

		x, y := v.cell(center)
		span := core.Max(1, int(hb.W*v.sx))
		for i := 0; i < span; i++ {
			dst.SetColored(x-span/2+i, y, glyph, color)
		}
	})
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	pe, ok := playerEntry(g.world)
	if !ok {
		return
	}
	p := Player.Get(pe)
	if p.Dead {
		return
	}
	// Blink while invulnerable
	if p.Invulnerable > 0 && (p.Invulnerable/6)%2 == 0 {
		return
	}

	sheet, err := g.assets.Lookup(SheetPlayer)
	if err != nil {
		return
	}
	glyph, color := sheet.Frame(Sprite.Get(pe).Frame)

	tr := Transform.Get(pe)
	hb := Hitbox.Get(pe)
	x, y := v.cell(tr.Position.Add(dmath.NewVec2(hb.W/2, hb.H/2)))
	dst.SetColored(x, y, glyph, color)
}

// renderOverlay draws state messages over the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	centerY := dst.Height() / 2

	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(centerY, "PAUSED")
		dst.DrawTextCentered(centerY+1, "Press P to resume")
	case StateGameOver:
		dst.DrawTextCentered(centerY-1, "GAME OVER")
		dst.DrawTextCentered(centerY, fmt.Sprintf("Score: %d  Wave: %d", g.score, g.waves.wave))
		dst.DrawTextCentered(centerY+1, "R restart  Q quit")
	default:
		if g.waves.remaining() == 0 && g.waves.intermission < g.intermission && countEnemies(g.world) == 0 {
			dst.DrawTextCentered(centerY, fmt.Sprintf("WAVE %d CLEAR", g.waves.wave))
		}
	}
}
