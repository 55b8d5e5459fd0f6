package probe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// namedColors maps the color names the canonical surface recognizes to
// concrete RGBA values. The set mirrors the names exercised by the
// upstream suites plus the go-chart palette basics.
var namedColors = map[string]drawing.Color{
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
}

var hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ParseColor resolves a color spec (named color or 6-digit hex) to a
// drawing.Color. Unknown specs return an error; fuzz cases rely on this
// to probe the accept-or-reject contract.
func ParseColor(spec string) (drawing.Color, error) {
	if c, ok := namedColors[strings.ToLower(spec)]; ok {
		return c, nil
	}
	if hexColorRe.MatchString(spec) {
		return drawing.ColorFromHex(strings.TrimPrefix(spec, "#")), nil
	}
	return drawing.Color{}, fmt.Errorf("unrecognized color %q", spec)
}

// ValidColor reports whether spec parses as a color.
func ValidColor(spec string) bool {
	_, err := ParseColor(spec)
	return err == nil
}

// WithAlpha scales the alpha channel of c by alpha in [0, 1].
func WithAlpha(c drawing.Color, alpha float64) drawing.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}
