package theme

import (
	"fmt"
	"strings"
	"testing"

	"git.lost.host/meutraa/firewall/internal/game"
)

func TestShieldColor(t *testing.T) {
	if ShieldColor(0, 0) != shieldColor {
		t.Fatal("idle shield is not the base colour")
	}
	c := ShieldColor(1, 0)
	if c.R <= shieldColor.R || c.B >= shieldColor.B {
		t.Fatalf("miss flash did not move towards red: %v", c)
	}
	if r, _, _ := c.RGB255(); r != 172 {
		t.Fatalf("expected a half red blend, got r=%d", r)
	}
	if ShieldColor(5, 0) != c {
		t.Fatal("flash strength is not clamped")
	}
}

func TestRenderText(t *testing.T) {
	th := DefaultTheme{}
	out := th.RenderText("[ PLAY ]", StyleButton, 1)
	r, g, b := styleColours[StyleButton].RGB255()
	prefix := fmt.Sprintf("\033[38;2;%v;%v;%vm", r, g, b)
	if !strings.HasPrefix(out, prefix) || !strings.HasSuffix(out, "[ PLAY ]\033[0m") {
		t.Fatalf("unexpected escape sequence %q", out)
	}
	if th.RenderText("x", StyleButton, 0) != "\033[38;2;0;0;0mx\033[0m" {
		t.Fatal("fully faded text is not black")
	}
}

func TestRenderThreat(t *testing.T) {
	th := DefaultTheme{}
	for i, d := range game.Directions {
		if !strings.Contains(th.RenderThreat(d), threatSyms[i]) {
			t.Fatalf("%v threat has the wrong glyph", d)
		}
	}
}
