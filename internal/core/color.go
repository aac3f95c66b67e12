package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit foreground color for a screen cell.
// The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns a color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Predefined colors for game elements.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorBlack   = RGB(0, 0, 0)
	ColorYellow  = RGB(255, 255, 0)
	ColorGray    = RGB(200, 200, 200)
)

// IsSet reports whether the color differs from the terminal default.
func (c Color) IsSet() bool {
	return c.set
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rrggbb" or "rgb(r,g,b)" notation.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil //#nosec G115 -- masked by shifts

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return Color{}, fmt.Errorf("core: invalid rgb color %q", s)
		}
		var comp [3]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, fmt.Errorf("core: invalid rgb component in %q: %w", s, err)
			}
			comp[i] = uint8(n)
		}
		return RGB(comp[0], comp[1], comp[2]), nil
	}
	return Color{}, fmt.Errorf("core: unsupported color %q", s)
}
