package render

import (
	"chat-stats/errors"
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts an SVG color name ("white", "navy") or a hex triplet ("#1e90ff", "#fff").
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", errors.ErrInvalidColor, s, err)
		}
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w %q", errors.ErrInvalidColor, s)
}

// wordColor picks a saturated color of random hue.
func wordColor(rng *rand.Rand) color.Color {
	return colorful.Hsl(rng.Float64()*360, 0.8, 0.5)
}
