package scene

import (
	"context"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/firewall/internal/clock"
	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
	"git.lost.host/meutraa/firewall/internal/input"
	"git.lost.host/meutraa/firewall/internal/score"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeRenderer struct {
	fills       []string
	decorations []string
}

func (r *fakeRenderer) Init() error             { return nil }
func (r *fakeRenderer) Deinit() error           { return nil }
func (r *fakeRenderer) Size() (int, int)        { return 80, 24 }
func (r *fakeRenderer) Fill(_, _ int, s string) { r.fills = append(r.fills, s) }

func (r *fakeRenderer) AddDecoration(_, _ int, content string, _ int) {
	r.decorations = append(r.decorations, content)
}

func (r *fakeRenderer) RenderLoop(ctx context.Context, _ time.Duration, render func(now time.Time) bool) error {
	for render(time.Now()) {
		if nil != ctx.Err() {
			return ctx.Err()
		}
	}
	return nil
}

func (r *fakeRenderer) shows(s string) bool {
	for _, f := range r.fills {
		if strings.Contains(f, s) {
			return true
		}
	}
	return false
}

type fakeScorer struct {
	saved []*score.History
}

func (s *fakeScorer) Init() error { return nil }
func (s *fakeScorer) Deinit()     {}
func (s *fakeScorer) Save(_ *game.Schedule, h *score.History) error {
	s.saved = append(s.saved, h)
	return nil
}
func (s *fakeScorer) Load(*game.Schedule) ([]score.History, error) { return nil, nil }
func (s *fakeScorer) Score(*game.Schedule, *score.History) (score.Score, error) {
	return score.Score{}, nil
}

func TestProgram(t *testing.T) {
	Convey("Given a scene over three beats", t, func() {
		base := time.Unix(1000, 0)
		now := base
		at := func(d time.Duration) time.Time { return base.Add(d) }
		r := &fakeRenderer{}
		scorer := &fakeScorer{}
		p := &Program{
			Schedule: game.MustSchedule([]time.Duration{2 * time.Second, 3 * time.Second, 4 * time.Second}),
			Renderer: r,
			Clock:    clock.NewWithNow(func() time.Time { return now }, 0),
			Scorer:   scorer,
		}
		So(p.Init(), ShouldBeNil)

		tap := func(d game.Direction, when time.Duration) {
			p.Handle(input.Event{Action: input.ActionTap, Keyed: true, Zone: d, At: at(when)})
		}

		Convey("When it has not started", func() {
			p.Render()
			tap(game.Left, 2*time.Second)

			Convey("Then the ready overlay is shown and taps do nothing", func() {
				So(r.shows(Title), ShouldBeTrue)
				So(r.shows(PlayButton), ShouldBeTrue)
				So(p.Engine().State(), ShouldEqual, engine.Ready)
				So(p.recorder.Inputs(), ShouldBeEmpty)
			})
		})

		Convey("When PLAY is clicked", func() {
			p.Handle(input.Event{Action: input.ActionTap, Point: engine.Point{X: 10, Y: float64(p.layout.button - 1)}, At: now})

			Convey("Then the session starts", func() {
				So(p.Engine().State(), ShouldEqual, engine.Playing)
			})
		})

		Convey("When the session is playing", func() {
			p.Handle(input.Event{Action: input.ActionConfirm, At: now})
			p.Update(at(0))

			Convey("Then the first threat is in flight", func() {
				So(p.flights, ShouldContainKey, 0)
				So(p.flights[0].travel, ShouldEqual, 2*time.Second)
			})

			Convey("Then a tap on its side deflects it", func() {
				p.Update(at(1900 * time.Millisecond))
				tap(game.Left, 2*time.Second)
				So(p.Engine().Hits(), ShouldEqual, 1)
				So(p.flights, ShouldNotContainKey, 0)
				So(p.recorder.Inputs(), ShouldResemble, []game.Input{{Kind: game.InputTap, Zone: game.Left, At: 2 * time.Second}})

				r.fills = nil
				p.Render()
				So(r.shows("1 / 3"), ShouldBeTrue)
			})

			Convey("Then a threat that lands untouched is a miss on arrival", func() {
				p.Update(at(1900 * time.Millisecond))
				p.Update(at(3 * time.Second))
				So(p.Engine().Misses(), ShouldEqual, 2)
				So(p.Engine().Resolved(1), ShouldBeTrue)
				So(p.recorder.Inputs(), ShouldContain, game.Input{Kind: game.InputArrival, Beat: 1, At: 3 * time.Second})
			})

			Convey("Then leaving abandons it", func() {
				p.Handle(input.Event{Action: input.ActionQuit})
				So(p.Abandoned(), ShouldBeTrue)
				So(p.Engine().Stopped(), ShouldBeTrue)
			})
		})

		Convey("When motion is reduced", func() {
			p.ReducedMotion = true
			p.Handle(input.Event{Action: input.ActionConfirm, At: now})
			p.Update(at(1900 * time.Millisecond))
			p.Update(at(3 * time.Second))

			Convey("Then nothing lands and a late tap still deflects", func() {
				So(p.Engine().Resolved(1), ShouldBeFalse)
				tap(game.Right, 3100*time.Millisecond)
				So(p.Engine().Hits(), ShouldEqual, 1)
			})
		})

		Convey("When the session is won", func() {
			p.Handle(input.Event{Action: input.ActionConfirm, At: now})
			p.Update(at(45 * time.Second))

			Convey("Then the run is saved", func() {
				So(p.Engine().State(), ShouldEqual, engine.Won)
				So(scorer.saved, ShouldHaveLength, 1)
				So(scorer.saved[0].Misses, ShouldEqual, 3)
				h, ok := p.History()
				So(ok, ShouldBeTrue)
				So(h, ShouldEqual, scorer.saved[0])
			})

			Convey("Then CONTINUE waits for the victory pause", func() {
				p.Handle(input.Event{Action: input.ActionConfirm})
				So(p.done, ShouldBeFalse)

				p.Update(at(45*time.Second + game.VictoryPause))
				r.fills = nil
				p.Render()
				So(r.shows(WonTitle), ShouldBeTrue)
				So(r.shows("0/3 Deflected"), ShouldBeTrue)
				So(r.shows(ContinueLabel), ShouldBeTrue)

				frame := p.Frame(nil)
				p.Handle(input.Event{Action: input.ActionConfirm})
				So(frame(at(47*time.Second)), ShouldBeFalse)
				So(p.Abandoned(), ShouldBeFalse)
			})
		})
	})
}

func TestFrame(t *testing.T) {
	Convey("Given a frame callback", t, func() {
		r := &fakeRenderer{}
		p := &Program{Renderer: r}
		So(p.Init(), ShouldBeNil)
		events := make(chan input.Event, 4)
		frame := p.Frame(events)

		Convey("When PLAY is pressed between frames", func() {
			events <- input.Event{Action: input.ActionConfirm, At: time.Now()}

			Convey("Then the next frame starts the session", func() {
				So(frame(time.Now()), ShouldBeTrue)
				So(p.Engine().State(), ShouldEqual, engine.Playing)
			})
		})

		Convey("When the input source closes", func() {
			close(events)

			Convey("Then the frame loop ends", func() {
				So(frame(time.Now()), ShouldBeFalse)
			})
		})

		Convey("When run against a source that quits", func() {
			events <- input.Event{Action: input.ActionQuit}
			err := p.Run(context.Background(), source(events), time.Millisecond)

			Convey("Then Run returns cleanly", func() {
				So(err, ShouldBeNil)
				So(p.done, ShouldBeTrue)
			})
		})
	})
}

func TestFlight(t *testing.T) {
	Convey("Given a flight spawned late", t, func() {
		f := newFlight(4, game.Top, 2*time.Second, 1990*time.Millisecond)
		l := newLayout(80, 24)

		Convey("Then it still travels for the minimum", func() {
			So(f.travel, ShouldEqual, game.MinimumTravel)
			So(f.lands(), ShouldEqual, 2040*time.Millisecond)
		})

		Convey("Then it moves from the edge to the contact cell", func() {
			So(f.position(l, f.from, false), ShouldResemble, l.edge(game.Top))
			So(f.position(l, f.lands(), false), ShouldResemble, l.contact(game.Top))
			So(f.position(l, f.from, true), ShouldResemble, l.contact(game.Top))
		})
	})
}

type source chan input.Event

func (s source) Events() <-chan input.Event { return s }
func (s source) Close() error               { return nil }
