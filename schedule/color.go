package schedule

import (
	"fmt"
	"hash/fnv"

	"github.com/edulify/coursecal/course"
)

// Hue bands per category. Internally-scheduled courses draw from the
// warm half of the wheel, externally-time-boxed ones from the cool half,
// so the two kinds never share a band on a rendered calendar.
const (
	internalHueBase = 0
	externalHueBase = 200
	hueSpan         = 160
)

// ColorFor derives a stable display color from the course identifier.
// The same course always renders the same color across calls.
func ColorFor(c course.Course) string {
	h := fnv.New32a()
	h.Write([]byte(c.ID))

	base := internalHueBase
	if c.Category == course.CategoryExternal {
		base = externalHueBase
	}
	hue := base + int(h.Sum32()%hueSpan)

	r, g, b := hslToRGB(float64(hue), 0.55, 0.50)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hslToRGB converts hue (degrees), saturation and lightness (0..1) to
// 8-bit RGB channels.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - abs(mod2(hp)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return channel(r + m), channel(g + m), channel(b + m)
}

func channel(v float64) uint8 {
	n := int(v*255 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}
