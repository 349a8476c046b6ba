package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go-drawing-shapes/internal/config"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for names that are neither an SVG color
// keyword nor a #rgb / #rrggbb string.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor resolves a color name ("fuchsia", "Gray") or a hex string
// ("#f0f", "#ff00ff").
func ParseColor(name string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:], name)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func parseHex(s, name string) (color.RGBA, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Palette resolves color names for a renderer. Unknown names fall back to
// config.FallbackColor and are reported once each.
type Palette struct {
	logger  logrus.FieldLogger
	cache   map[string]color.RGBA
	invalid map[string]bool
}

// NewPalette creates a resolver. logger may be nil.
func NewPalette(logger logrus.FieldLogger) *Palette {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &Palette{
		logger:  logger,
		cache:   make(map[string]color.RGBA),
		invalid: make(map[string]bool),
	}
}

// Resolve returns the RGBA value for name.
func (p *Palette) Resolve(name string) color.RGBA {
	if c, ok := p.cache[name]; ok {
		return c
	}
	c, err := ParseColor(name)
	if err != nil {
		if !p.invalid[name] {
			p.invalid[name] = true
			p.logger.WithError(err).Warn("falling back to default color")
		}
		c = config.FallbackColor
	}
	p.cache[name] = c
	return c
}

// BackgroundOf returns the canvas background, or config.BackgroundColor
// when the canvas has none.
func (p *Palette) BackgroundOf(c *Canvas) color.RGBA {
	if c.Background() == "" {
		return config.BackgroundColor
	}
	return p.Resolve(c.Background())
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
