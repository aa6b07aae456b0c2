package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque fill attribute for surface pixels.
// It holds either a CSS color name ("lightsteelblue") or a hex triplet ("#bada55").
// The zero value is ColorNone, meaning a cleared pixel.
type Color string

// ColorNone marks a pixel that has been cleared or never painted.
const ColorNone Color = ""

// cssColors maps the CSS color names accepted in configs to hex triplets.
var cssColors = map[string]string{
	"black":          "#000000",
	"white":          "#ffffff",
	"red":            "#ff0000",
	"green":          "#008000",
	"lime":           "#00ff00",
	"blue":           "#0000ff",
	"yellow":         "#ffff00",
	"orange":         "#ffa500",
	"purple":         "#800080",
	"magenta":        "#ff00ff",
	"cyan":           "#00ffff",
	"gray":           "#808080",
	"grey":           "#808080",
	"hotpink":        "#ff69b4",
	"lightsteelblue": "#b0c4de",
	"steelblue":      "#4682b4",
	"darkgreen":      "#006400",
	"olivedrab":      "#6b8e23",
	"crimson":        "#dc143c",
	"gold":           "#ffd700",
}

// Hex resolves the color to a normalized "#rrggbb" triplet.
func (c Color) Hex() (string, error) {
	if c == ColorNone {
		return "", fmt.Errorf("core: empty color")
	}
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if hex, ok := cssColors[s]; ok {
		return hex, nil
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("core: invalid color %q: %w", string(c), err)
	}
	return parsed.Hex(), nil
}

// Valid reports whether the color can be resolved for display.
func (c Color) Valid() bool {
	_, err := c.Hex()
	return err == nil
}

// String returns the color as written in configuration.
func (c Color) String() string {
	if c == ColorNone {
		return "none"
	}
	return string(c)
}
