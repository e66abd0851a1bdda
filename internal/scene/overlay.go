package scene

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
	"git.lost.host/meutraa/firewall/internal/theme"
)

const (
	shieldGlyph = "◉"

	arcLength   = 250 * time.Millisecond
	burstLength = 300 * time.Millisecond
	flashLength = 500 * time.Millisecond
	pulseLength = 300 * time.Millisecond

	Title         = "THE FIREWALL"
	WonTitle      = "NOISE NEUTRALIZED"
	PlayButton    = "[ PLAY ]"
	ContinueLabel = "[ CONTINUE ]"
	AssistNotice  = "shield assist engaged"

	assistFrames = 120
)

var hints = []string{
	"Threats close in on the shield.",
	"Tap their side as they reach it.",
	"← a h   → d l   ↑ w k",
}

type effectKind uint8

const (
	effectArc effectKind = iota
	effectBurst
)

type effect struct {
	kind      effectKind
	direction game.Direction
	pos       Position
	start     time.Duration
	length    time.Duration
}

func (e *effect) alpha(at time.Duration) float64 {
	return 1 - float64(at-e.start)/float64(e.length)
}

func decay(since time.Duration, length time.Duration) float64 {
	if since < 0 || since >= length {
		return 0
	}
	return 1 - float64(since)/float64(length)
}

// Render draws the frame for the current session time.
func (p *Program) Render() {
	switch {
	case !p.Clock.Started():
		p.renderReady()
		return
	case p.won && p.buttonVisible():
		p.renderWon()
		return
	}
	p.renderHUD()
	p.renderShield()
	p.renderFlights()
	p.renderEffects()
}

func (p *Program) text(row int, s string, style theme.Style) {
	p.Renderer.Fill(row, p.layout.centred(s), p.Theme.RenderText(s, style, 1))
}

func (p *Program) renderReady() {
	p.text(p.layout.title, Title, theme.StyleTitle)
	for i, h := range hints {
		p.text(p.layout.title+2+i, h, theme.StyleHint)
	}
	p.text(p.layout.button, PlayButton, theme.StyleButton)
}

func (p *Program) renderWon() {
	s := fmt.Sprintf("%d/%d Deflected", p.engine.Hits(), p.engine.Total())
	p.text(p.layout.title, WonTitle, theme.StyleTitle)
	p.text(p.layout.title+1, s, theme.StyleBody)
	p.text(p.layout.button, ContinueLabel, theme.StyleButton)
}

func (p *Program) renderHUD() {
	s := fmt.Sprintf("%d / %d", p.engine.Processed(), p.engine.Total())
	p.Renderer.Fill(1, p.layout.width-len(s), p.Theme.RenderText(s, theme.StyleHUD, 1))
	if p.assisted {
		p.Renderer.Fill(1, 2, p.Theme.RenderText("ASSIST", theme.StyleHint, 1))
	}
}

func (p *Program) renderShield() {
	var miss, pulse float64
	if p.flashed {
		miss = decay(p.at-p.missAt, flashLength)
	}
	if p.pulsed {
		pulse = decay(p.at-p.pulseAt, pulseLength)
	}
	s := p.layout.shield
	p.Renderer.Fill(s.Row, s.Col, p.Theme.RenderShield(shieldGlyph, miss, pulse))
}

func (p *Program) renderFlights() {
	if p.engine.State() != engine.Playing {
		return
	}
	for _, t := range p.engine.Active() {
		f, ok := p.flights[t.Beat]
		if !ok {
			continue
		}
		pos := f.position(p.layout, p.at, p.ReducedMotion)
		p.Renderer.Fill(pos.Row, pos.Col, p.Theme.RenderThreat(f.direction))
	}
}

func (p *Program) renderEffects() {
	live := p.effects[:0]
	for _, e := range p.effects {
		a := e.alpha(p.at)
		if a <= 0 {
			continue
		}
		if a > 1 {
			a = 1
		}
		switch e.kind {
		case effectArc:
			p.Renderer.Fill(e.pos.Row, e.pos.Col, p.Theme.RenderArc(e.direction, a))
		case effectBurst:
			p.Renderer.Fill(e.pos.Row, e.pos.Col, p.Theme.RenderBurst(a))
		}
		live = append(live, e)
	}
	p.effects = live
}
