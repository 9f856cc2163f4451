package core

import "strconv"

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by sprites, the HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// extended holds the 256-color codes for entries past the 16 base colors.
var extended = map[Color]int{
	ColorOrange: 208,
	ColorGray:   245,
}

// ANSI returns the terminal color code for c, or "" for the default color.
func (c Color) ANSI() string {
	switch {
	case c == ColorDefault:
		return ""
	case c <= ColorWhite:
		return strconv.Itoa(int(c))
	case c <= ColorBrightWhite:
		// Bright variants are 9-15; ANSI 8 is bright black
		return strconv.Itoa(int(c) + 1)
	}
	if code, ok := extended[c]; ok {
		return strconv.Itoa(code)
	}
	return ""
}
