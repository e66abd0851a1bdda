package theme

import (
	"fmt"

	"git.lost.host/meutraa/firewall/internal/game"
	"github.com/lucasb-eyer/go-colorful"
)

type DefaultTheme struct {
}

const (
	burstSym = "✶"
	// Share of red mixed into the shield at the height of a miss flash.
	missFlashBlend = 0.5
)

var (
	threatSyms = [...]string{"▶", "◀", "▼"} // indexed by approach direction
	arcSyms    = [...]string{"(", ")", "⌒"}

	shieldColor  = colorful.Color{R: 0.35, G: 0.6, B: 1.0}
	threatColor  = colorful.Color{R: 0.85, G: 0.3, B: 0.9}
	plasmaColor  = colorful.Color{R: 0.2, G: 0.85, B: 1.0}
	missColor    = colorful.Color{R: 1, G: 0, B: 0}
	pulseColor   = colorful.Color{R: 1, G: 1, B: 1}
	black        = colorful.Color{}
	styleColours = map[Style]colorful.Color{
		StyleHUD:    {R: 0.3, G: 0.8, B: 0.9},
		StyleTitle:  {R: 0.3, G: 0.9, B: 0.85},
		StyleBody:   {R: 1, G: 1, B: 1},
		StyleHint:   {R: 0.7, G: 0.7, B: 0.7},
		StyleButton: {R: 0.3, G: 0.9, B: 0.85},
	}
)

func paint(c colorful.Color, s string) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", r, g, b, s)
}

// fade darkens c towards the background as alpha drops to 0.
func fade(c colorful.Color, alpha float64) colorful.Color {
	return c.BlendRgb(black, 1-clamp(alpha))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (t *DefaultTheme) RenderThreat(d game.Direction) string {
	return paint(threatColor, threatSyms[d])
}

func (t *DefaultTheme) RenderShield(glyph string, miss, pulse float64) string {
	c := ShieldColor(miss, pulse)
	return paint(c, glyph)
}

// ShieldColor mixes the miss flash and hit pulse into the shield's base colour.
func ShieldColor(miss, pulse float64) colorful.Color {
	c := shieldColor.BlendRgb(missColor, missFlashBlend*clamp(miss))
	return c.BlendRgb(pulseColor, 0.5*clamp(pulse))
}

func (t *DefaultTheme) RenderArc(d game.Direction, alpha float64) string {
	return paint(fade(plasmaColor, alpha), arcSyms[d])
}

func (t *DefaultTheme) RenderBurst(alpha float64) string {
	return paint(fade(pulseColor.BlendRgb(threatColor, 1-clamp(alpha)), alpha), burstSym)
}

func (t *DefaultTheme) RenderText(s string, style Style, alpha float64) string {
	c, ok := styleColours[style]
	if !ok {
		c = styleColours[StyleBody]
	}
	return paint(fade(c, alpha), s)
}
