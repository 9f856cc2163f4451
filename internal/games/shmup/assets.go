package shmup

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/logic"
)

// Sprite sheet names.
const (
	SheetBullets = "bullets"
	SheetEnemies = "enemies"
	SheetPlayer  = "player"
)

// ErrSpriteMissing is returned when a sprite sheet is not in the asset table.
var ErrSpriteMissing = errors.New("shmup: sprite sheet missing")

// SpriteSheet is a set of terminal glyphs sharing a color.
type SpriteSheet struct {
	Glyphs []rune
	Colors []core.Color // Per-frame; falls back to the last entry
}

// Frame returns the glyph and color of frame i, wrapping around.
func (s SpriteSheet) Frame(i int) (rune, core.Color) {
	if len(s.Glyphs) == 0 {
		return '?', core.ColorDefault
	}
	i = ((i % len(s.Glyphs)) + len(s.Glyphs)) % len(s.Glyphs)
	c := core.ColorDefault
	if len(s.Colors) > 0 {
		c = s.Colors[core.Min(i, len(s.Colors)-1)]
	}
	return s.Glyphs[i], c
}

// Assets maps sheet names to sprite sheets.
type Assets map[string]SpriteSheet

// Lookup returns the named sheet or ErrSpriteMissing.
func (a Assets) Lookup(name string) (SpriteSheet, error) {
	s, ok := a[name]
	if !ok {
		return SpriteSheet{}, fmt.Errorf("%w: %q", ErrSpriteMissing, name)
	}
	return s, nil
}

// DefaultAssets returns the built-in glyph sheets. Bullet frames are indexed
// by archetype kind and enemy frames by enemy type.
func DefaultAssets() Assets {
	return Assets{
		SheetBullets: {
			Glyphs: []rune{'|', '•', '◆', 'o', '*', '^'},
			Colors: []core.Color{
				core.ColorBrightRed,
				core.ColorBrightYellow,
				core.ColorBrightMagenta,
				core.ColorOrange,
				core.ColorBrightCyan,
				core.ColorBrightGreen,
			},
		},
		SheetEnemies: {
			Glyphs: []rune{'w', 'W', 'v', 'V', 'Ж', 'Ψ', 'Ω'},
			Colors: []core.Color{
				core.ColorRed,
				core.ColorRed,
				core.ColorYellow,
				core.ColorYellow,
				core.ColorMagenta,
				core.ColorCyan,
				core.ColorOrange,
			},
		},
		SheetPlayer: {
			Glyphs: []rune{'A'},
			Colors: []core.Color{core.ColorBrightGreen},
		},
	}
}

func bulletFrame(a logic.Archetype) int {
	return int(a.Kind())
}
