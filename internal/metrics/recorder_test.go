package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func counter(r *Recorder, name string, labels map[string]string) float64 {
	families, err := r.Registry().Gather()
	So(err, ShouldBeNil)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if labels[l.GetName()] != l.GetValue() {
					continue metrics
				}
			}
			switch {
			case nil != m.GetCounter():
				return m.GetCounter().GetValue()
			case nil != m.GetGauge():
				return m.GetGauge().GetValue()
			case nil != m.GetHistogram():
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return 0
}

func TestRecorder(t *testing.T) {
	Convey("Given a recorder on its own registry", t, func() {
		r := NewRecorder(WithRegistry(prometheus.NewRegistry()))

		Convey("When a session plays out", func() {
			r.Notify(engine.Event{Kind: engine.KindStarted})
			r.Notify(engine.Event{Kind: engine.KindSpawned, Beat: 0})
			r.Notify(engine.Event{Kind: engine.KindSpawned, Beat: 1})
			r.Notify(engine.Event{Kind: engine.KindHit, Beat: 0, Cause: game.CauseTap, Delta: -40 * time.Millisecond})
			r.Notify(engine.Event{Kind: engine.KindMiss, Beat: 1, Cause: game.CauseSweep})

			Convey("Then spawns and resolutions are counted", func() {
				So(counter(r, "firewall_engine_threats_spawned_total", nil), ShouldEqual, 2)
				So(counter(r, "firewall_engine_resolutions_total", map[string]string{"judgement": "hit", "cause": game.CauseTap.String()}), ShouldEqual, 1)
				So(counter(r, "firewall_engine_resolutions_total", map[string]string{"judgement": "miss", "cause": game.CauseSweep.String()}), ShouldEqual, 1)
				So(counter(r, "firewall_engine_hit_error_seconds", nil), ShouldEqual, 1)
				So(counter(r, "firewall_engine_sessions_playing", nil), ShouldEqual, 1)
			})

			Convey("And winning leaves no session playing", func() {
				r.Notify(engine.Event{Kind: engine.KindWon})
				So(counter(r, "firewall_engine_sessions_playing", nil), ShouldEqual, 0)
				So(counter(r, "firewall_engine_sessions_total", map[string]string{"event": "won"}), ShouldEqual, 1)
			})

			Convey("And abandoning leaves no session playing", func() {
				r.Abandon()
				So(counter(r, "firewall_engine_sessions_playing", nil), ShouldEqual, 0)
				So(counter(r, "firewall_engine_sessions_total", map[string]string{"event": "abandoned"}), ShouldEqual, 1)
			})
		})

		Convey("When scraped", func() {
			r.Notify(engine.Event{Kind: engine.KindSpawned})
			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

			Convey("Then the exposition carries the counters", func() {
				So(rec.Code, ShouldEqual, 200)
				So(strings.Contains(rec.Body.String(), "firewall_engine_threats_spawned_total 1"), ShouldBeTrue)
			})
		})

		Convey("When the namespace is overridden", func() {
			o := NewRecorder(WithNamespace("qa"), WithSubsystem("chapter"))
			o.Notify(engine.Event{Kind: engine.KindSpawned})

			Convey("Then metric names follow it", func() {
				So(counter(o, "qa_chapter_threats_spawned_total", nil), ShouldEqual, 1)
			})
		})
	})
}
