package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/celebrate"
	"github.com/ritwika/khel/internal/ui/theme"
)

var confettiTints = []color.Color{
	theme.Accent,
	theme.Secondary,
	theme.Success,
	theme.MoodHappy,
	theme.Error,
}

// RenderConfetti draws a confetti field over a blank width×height canvas.
// Particle positions are normalized; this is the only place they meet
// actual cell coordinates.
func RenderConfetti(f *celebrate.Field, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	type cell struct {
		glyph rune
		tint  int
	}
	cells := make(map[[2]int]cell)
	for _, p := range f.Particles() {
		x := int(p.X * float64(width))
		y := int(p.Y * float64(height))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		cells[[2]int{x, y}] = cell{glyph: p.Glyph, tint: p.Tint}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, ok := cells[[2]int{x, y}]
			if !ok {
				b.WriteByte(' ')
				continue
			}
			tint := confettiTints[c.tint%len(confettiTints)]
			b.WriteString(lipgloss.NewStyle().Foreground(tint).Render(string(c.glyph)))
		}
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
