// Package scene hosts one firewall session: it feeds inputs and time into
// the engine, animates threats towards the shield and draws the overlays.
package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"git.lost.host/meutraa/firewall/internal/clock"
	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
	"git.lost.host/meutraa/firewall/internal/input"
	"git.lost.host/meutraa/firewall/internal/render"
	"git.lost.host/meutraa/firewall/internal/score"
	"git.lost.host/meutraa/firewall/internal/theme"
	"github.com/charmbracelet/log"
)

type Program struct {
	Schedule *game.Schedule
	Renderer render.Renderer
	Theme    theme.Theme
	Clock    *clock.Session
	// Optional. Runs are saved here once won.
	Scorer score.Scorer
	// Optional. Receives every engine event after the scene.
	Notifier      engine.Notifier
	Log           *log.Logger
	ReducedMotion bool

	engine   *engine.Engine
	recorder score.Recorder
	layout   layout
	at       time.Duration

	flights map[int]*flight
	effects []*effect

	missAt, pulseAt time.Duration
	flashed         bool
	pulsed          bool
	won             bool
	wonAt           time.Duration
	assisted        bool
	abandoned       bool
	done            bool
	history         *score.History
}

func (p *Program) Init() error {
	if nil == p.Renderer {
		return errors.New("scene needs a renderer")
	}
	if nil == p.Schedule {
		p.Schedule = game.BeatMap()
	}
	if nil == p.Theme {
		p.Theme = &theme.DefaultTheme{}
	}
	if nil == p.Clock {
		p.Clock = clock.New(0)
	}
	if nil == p.Log {
		p.Log = log.New(io.Discard)
	}
	notifiers := engine.Notifiers{p}
	if nil != p.Notifier {
		notifiers = append(notifiers, p.Notifier)
	}
	var err error
	p.engine, err = engine.New(p.Schedule, engine.DefaultConfig(),
		engine.WithNotifier(notifiers),
		engine.WithLogger(p.Log),
	)
	if nil != err {
		return fmt.Errorf("unable to create engine: %w", err)
	}
	p.flights = map[int]*flight{}
	p.resize()
	return nil
}

func (p *Program) resize() {
	w, h := p.Renderer.Size()
	if w != p.layout.width || h != p.layout.height {
		p.layout = newLayout(w, h)
	}
}

// Run drives frames until the player leaves or ctx is done.
func (p *Program) Run(ctx context.Context, src input.Source, period time.Duration) error {
	err := p.Renderer.RenderLoop(ctx, period, p.Frame(src.Events()))
	p.quit()
	return err
}

// Frame returns the per frame callback: drain inputs, then advance time,
// then draw. Inputs go first so a tap stamped before the frame is judged
// before the sweep can expire its threat.
func (p *Program) Frame(events <-chan input.Event) func(now time.Time) bool {
	return func(now time.Time) bool {
		for drained := false; !drained; {
			select {
			case ev, ok := <-events:
				if !ok {
					p.quit()
					drained = true
					continue
				}
				p.Handle(ev)
			default:
				drained = true
			}
		}
		if !p.done {
			p.Update(now)
		}
		p.Render()
		return !p.done
	}
}

func (p *Program) Handle(ev input.Event) {
	switch ev.Action {
	case input.ActionQuit:
		p.quit()
	case input.ActionConfirm:
		p.confirm()
	case input.ActionTap:
		if !ev.Keyed && p.buttonVisible() && p.onButton(ev.Point.Y) {
			p.confirm()
			return
		}
		p.tap(ev)
	}
}

func (p *Program) confirm() {
	switch p.engine.State() {
	case engine.Ready:
		p.Clock.Start()
		p.engine.Start()
	case engine.Won:
		if p.buttonVisible() && p.engine.Advance() {
			p.done = true
		}
	}
}

func (p *Program) tap(ev input.Event) {
	if p.engine.State() != engine.Playing {
		return
	}
	at := p.Clock.At(ev.At)
	point := p.layout.area.Center(ev.Zone)
	if !ev.Keyed {
		point = p.layout.point(ev.Point.X, ev.Point.Y)
	}
	res := p.engine.Tap(point, p.layout.area, at)
	if !res.Zoned {
		return
	}
	p.recorder.Tap(res.Zone, at)
	pos := p.layout.arc(res.Zone)
	p.effects = append(p.effects, &effect{
		kind:      effectArc,
		direction: res.Zone,
		pos:       pos,
		start:     at,
		length:    arcLength,
	})
}

func (p *Program) quit() {
	if p.done {
		return
	}
	p.done = true
	p.abandoned = p.engine.State() == engine.Playing
	p.engine.Stop()
}

// Update moves the session to now and lands any flights that have
// arrived. With reduced motion nothing lands and the sweep judges
// untouched threats.
func (p *Program) Update(now time.Time) {
	p.resize()
	if !p.Clock.Started() {
		return
	}
	p.at = p.Clock.At(now)
	p.engine.Tick(p.at)
	if p.ReducedMotion || p.engine.State() != engine.Playing {
		return
	}

	beats := make([]int, 0, len(p.flights))
	for beat := range p.flights {
		beats = append(beats, beat)
	}
	sort.Ints(beats)
	for _, beat := range beats {
		f, ok := p.flights[beat]
		if !ok || f.landed || p.at < f.lands() {
			continue
		}
		f.landed = true
		if p.engine.Arrive(beat, f.lands()) {
			p.recorder.Arrival(beat, f.lands())
		}
	}
}

// Notify receives engine events. It only touches scene state.
func (p *Program) Notify(ev engine.Event) {
	switch ev.Kind {
	case engine.KindSpawned:
		p.flights[ev.Beat] = newFlight(ev.Beat, ev.Direction, ev.Due, ev.At)
	case engine.KindHit, engine.KindMiss:
		pos := p.layout.contact(ev.Direction)
		if f, ok := p.flights[ev.Beat]; ok {
			pos = f.position(p.layout, ev.At, p.ReducedMotion)
			delete(p.flights, ev.Beat)
		}
		p.effects = append(p.effects, &effect{kind: effectBurst, pos: pos, start: ev.At, length: burstLength})
		if ev.Kind == engine.KindHit {
			p.pulseAt, p.pulsed = ev.At, true
		} else {
			p.missAt, p.flashed = ev.At, true
		}
	case engine.KindAssist:
		p.assisted = true
		p.Renderer.AddDecoration(p.layout.centred(AssistNotice), 2,
			p.Theme.RenderText(AssistNotice, theme.StyleHint, 1), assistFrames)
	case engine.KindWon:
		p.won, p.wonAt = true, ev.At
		p.save(ev)
	}
}

func (p *Program) save(ev engine.Event) {
	p.history = &score.History{
		Hits:     ev.Hits,
		Misses:   ev.Misses,
		Assisted: p.assisted,
		Inputs:   p.recorder.Inputs(),
	}
	if nil == p.Scorer {
		return
	}
	if err := p.Scorer.Save(p.Schedule, p.history); nil != err {
		p.Log.Error("unable to save run", "err", err)
		return
	}
	p.Log.Info("run saved", "id", p.history.ID, "hits", ev.Hits, "misses", ev.Misses)
}

// buttonVisible is true while PLAY or CONTINUE is on screen.
func (p *Program) buttonVisible() bool {
	switch p.engine.State() {
	case engine.Ready:
		return true
	case engine.Won:
		return p.at >= p.wonAt+game.VictoryPause
	}
	return false
}

// onButton takes a 0-based clicked row.
func (p *Program) onButton(row float64) bool {
	r := int(row) + 1
	return r >= p.layout.button-1 && r <= p.layout.button+1
}

// History is the saved record of a won run.
func (p *Program) History() (*score.History, bool) {
	return p.history, nil != p.history
}

// Abandoned is true when the player left mid session.
func (p *Program) Abandoned() bool { return p.abandoned }

func (p *Program) Engine() *engine.Engine { return p.engine }
