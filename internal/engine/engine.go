package engine

import (
	"fmt"
	"io"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
	"github.com/charmbracelet/log"
)

// Config carries the chapter tuning. Hosts use DefaultConfig; tests build
// their own.
type Config struct {
	LeadTime        time.Duration
	Window          time.Duration
	AssistWindow    time.Duration
	MissThreshold   int
	MinimumDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		LeadTime:        game.LeadTime,
		Window:          game.DefaultWindow,
		AssistWindow:    game.AssistWindow,
		MissThreshold:   game.MissThreshold,
		MinimumDuration: game.MinimumDuration,
	}
}

func (c Config) validate() error {
	switch {
	case c.LeadTime <= 0:
		return fmt.Errorf("lead time %v: %w", c.LeadTime, ErrInvalidConfig)
	case c.Window <= 0:
		return fmt.Errorf("window %v: %w", c.Window, ErrInvalidConfig)
	case c.AssistWindow < c.Window:
		return fmt.Errorf("assist window %v narrower than %v: %w", c.AssistWindow, c.Window, ErrInvalidConfig)
	case c.MissThreshold < 0:
		return fmt.Errorf("miss threshold %d: %w", c.MissThreshold, ErrInvalidConfig)
	}
	return nil
}

type Option func(*Engine)

// WithNotifier sets where events are sent.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notify = n }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if nil != l {
			e.log = l
		}
	}
}

// Engine resolves one firewall session. It is not safe for concurrent use:
// ticks, taps and arrivals must all come from the same goroutine.
type Engine struct {
	cfg        Config
	schedule   *game.Schedule
	threats    *Lifecycle
	difficulty Difficulty
	progress   *Progress
	session    Session
	notify     Notifier
	log        *log.Logger

	elapsed  time.Duration
	ticked   bool
	assisted bool
	stopped  bool
}

func New(schedule *game.Schedule, cfg Config, opts ...Option) (*Engine, error) {
	if nil == schedule {
		return nil, fmt.Errorf("no schedule: %w", ErrInvalidConfig)
	}
	if err := cfg.validate(); nil != err {
		return nil, err
	}
	e := &Engine{
		cfg:      cfg,
		schedule: schedule,
		threats:  NewLifecycle(schedule),
		difficulty: Difficulty{
			Window:       cfg.Window,
			AssistWindow: cfg.AssistWindow,
			Threshold:    cfg.MissThreshold,
		},
		progress: NewProgress(schedule.Len(), cfg.MinimumDuration),
		notify:   Notifiers(nil),
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start begins play. The caller anchors its session clock at zero here.
func (e *Engine) Start() bool {
	if e.stopped || !e.session.Start() {
		return false
	}
	e.log.Info("session started", "beats", e.schedule.Len())
	e.notify.Notify(Event{Kind: KindStarted})
	return true
}

// Tick advances the session to elapsed: spawn first, then sweep, then check
// for the win. Time never runs backwards; an older elapsed is clamped.
func (e *Engine) Tick(elapsed time.Duration) {
	if e.stopped || e.session.State() != Playing {
		return
	}
	if e.ticked && elapsed < e.elapsed {
		elapsed = e.elapsed
	}
	e.elapsed, e.ticked = elapsed, true

	for _, t := range e.threats.AdvanceSpawning(elapsed, e.cfg.LeadTime) {
		e.notify.Notify(Event{
			Kind:      KindSpawned,
			Beat:      t.Beat,
			Direction: t.Direction,
			Due:       t.Due,
			At:        elapsed,
			Hits:      e.progress.Hits(),
			Misses:    e.progress.Misses(),
		})
	}
	e.threats.SweepExpired(elapsed, e.Tolerance, func(beat int) {
		e.resolveMiss(beat, game.CauseSweep, elapsed)
	})

	if e.progress.Won(e.threats.Exhausted(), elapsed) && e.session.Win() {
		e.log.Info("session won", "hits", e.progress.Hits(), "misses", e.progress.Misses(), "elapsed", elapsed)
		e.notify.Notify(Event{Kind: KindWon, At: elapsed, Hits: e.progress.Hits(), Misses: e.progress.Misses()})
	}
}

// TapResult describes what a tap did.
type TapResult struct {
	Accepted bool // the session was playing
	Zone     game.Direction
	Zoned    bool // the tap fell in a zone rather than the dead band
	Hit      bool
	Beat     int
	Delta    time.Duration
}

// Tap resolves a tap at p on area at session time at. Taps that match
// nothing are not penalised.
func (e *Engine) Tap(p Point, a Area, at time.Duration) TapResult {
	if e.stopped || e.session.State() != Playing {
		return TapResult{}
	}
	res := TapResult{Accepted: true}
	res.Zone, res.Zoned = Zone(p, a)
	if !res.Zoned {
		return res
	}
	t, delta, ok := Match(e.threats.Active(), res.Zone, at, e.Tolerance())
	if !ok {
		return res
	}
	if !e.resolveHit(t.Beat, at, delta) {
		return res
	}
	res.Hit, res.Beat, res.Delta = true, t.Beat, delta
	return res
}

// Arrive is called when a threat's travel lands on the shield untouched.
// The beat is judged a miss straight away unless it already was judged.
func (e *Engine) Arrive(beat int, at time.Duration) bool {
	if e.stopped || e.session.State() != Playing {
		return false
	}
	if _, ok := e.threats.Threat(beat); !ok {
		return false
	}
	return e.resolveMiss(beat, game.CauseArrival, at)
}

// Advance records the continue action on the won screen, at most once.
func (e *Engine) Advance() bool {
	if e.stopped || !e.session.Advance() {
		return false
	}
	e.notify.Notify(Event{Kind: KindAdvance, At: e.elapsed, Hits: e.progress.Hits(), Misses: e.progress.Misses()})
	return true
}

// Stop ends the session: live threats are discarded and every later call is
// a no-op.
func (e *Engine) Stop() {
	if e.stopped {
		return
	}
	e.stopped = true
	e.threats.Reset()
	e.log.Debug("session stopped", "state", e.session.State())
}

func (e *Engine) resolveHit(beat int, at, delta time.Duration) bool {
	if _, ok := e.threats.Take(beat); !ok {
		return false
	}
	e.progress.hit()
	d := e.schedule.Direction(beat)
	e.log.Debug("hit", "beat", beat, "direction", d, "delta", delta)
	e.notify.Notify(Event{
		Kind:      KindHit,
		Beat:      beat,
		Direction: d,
		Due:       e.schedule.At(beat),
		At:        at,
		Delta:     delta,
		Cause:     game.CauseTap,
		Hits:      e.progress.Hits(),
		Misses:    e.progress.Misses(),
	})
	return true
}

func (e *Engine) resolveMiss(beat int, cause game.Cause, at time.Duration) bool {
	if _, ok := e.threats.Take(beat); !ok {
		return false
	}
	e.progress.miss()
	d := e.schedule.Direction(beat)
	e.log.Debug("miss", "beat", beat, "direction", d, "cause", cause)
	e.notify.Notify(Event{
		Kind:      KindMiss,
		Beat:      beat,
		Direction: d,
		Due:       e.schedule.At(beat),
		At:        at,
		Cause:     cause,
		Hits:      e.progress.Hits(),
		Misses:    e.progress.Misses(),
	})
	if !e.assisted && e.difficulty.Assist(e.progress.Misses()) {
		e.assisted = true
		e.log.Info("assist engaged", "misses", e.progress.Misses(), "window", e.Tolerance())
		e.notify.Notify(Event{Kind: KindAssist, At: at, Hits: e.progress.Hits(), Misses: e.progress.Misses()})
	}
	return true
}

// Tolerance is the hit window in force right now.
func (e *Engine) Tolerance() time.Duration {
	return e.difficulty.Tolerance(e.progress.Misses())
}

func (e *Engine) Assisted() bool {
	return e.difficulty.Assist(e.progress.Misses())
}

func (e *Engine) State() State                { return e.session.State() }
func (e *Engine) Schedule() *game.Schedule    { return e.schedule }
func (e *Engine) Elapsed() time.Duration      { return e.elapsed }
func (e *Engine) Hits() int                   { return e.progress.Hits() }
func (e *Engine) Misses() int                 { return e.progress.Misses() }
func (e *Engine) Processed() int              { return e.progress.Processed() }
func (e *Engine) Total() int                  { return e.progress.Total() }
func (e *Engine) Active() []*game.Threat      { return e.threats.Active() }
func (e *Engine) Resolved(beat int) bool      { return e.threats.Resolved(beat) }
func (e *Engine) Cursors() (spawn, sweep int) { return e.threats.Cursors() }
func (e *Engine) Stopped() bool               { return e.stopped }
