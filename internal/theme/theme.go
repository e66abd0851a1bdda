package theme

import "git.lost.host/meutraa/firewall/internal/game"

type Style uint8

const (
	StyleHUD Style = iota
	StyleTitle
	StyleBody
	StyleHint
	StyleButton
)

type Theme interface {
	RenderThreat(d game.Direction) string
	// miss and pulse run from 1 at the moment of impact down to 0
	RenderShield(glyph string, miss, pulse float64) string
	RenderArc(d game.Direction, alpha float64) string
	RenderBurst(alpha float64) string
	RenderText(s string, style Style, alpha float64) string
}
