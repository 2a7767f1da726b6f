package ldtk

import (
	"fmt"
	"image/color"
)

// ParseHexColor parses a color in the form #rrggbb.
func ParseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
}

// BackgroundColor returns the level's effective background color.
func (l *Level) BackgroundColor() (color.RGBA, bool) {
	if l == nil {
		return color.RGBA{}, false
	}
	if l.LevelBgColor != nil {
		if c, ok := ParseHexColor(*l.LevelBgColor); ok {
			return c, true
		}
	}
	return ParseHexColor(l.BgColor)
}
