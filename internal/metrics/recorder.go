package metrics

import (
	"net/http"

	"git.lost.host/meutraa/firewall/internal/engine"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is an engine.Notifier. One recorder may be shared by every
// session of a host; the collectors are safe for concurrent use.
type Recorder struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	spawned     prometheus.Counter
	resolutions *prometheus.CounterVec
	delta       prometheus.Histogram
	sessions    *prometheus.CounterVec
	active      prometheus.Gauge
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: "firewall",
		subsystem: "engine",
		buckets:   []float64{0.01, 0.025, 0.05, 0.075, 0.1, 0.15, 0.2, 0.3},
	}
	for _, opt := range opts {
		opt(r)
	}
	if nil == r.registry {
		r.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(r.registry)
	r.spawned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "threats_spawned_total",
		Help:      "Threats that entered the active set.",
	})
	r.resolutions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "resolutions_total",
		Help:      "Resolved threats by judgement and cause.",
	}, []string{"judgement", "cause"})
	r.delta = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "hit_error_seconds",
		Help:      "Absolute distance of deflecting taps from their due time.",
		Buckets:   r.buckets,
	})
	r.sessions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "sessions_total",
		Help:      "Session transitions by kind.",
	}, []string{"event"})
	r.active = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "sessions_playing",
		Help:      "Sessions started and not yet won or stopped.",
	})
	return r
}

func (r *Recorder) Notify(ev engine.Event) {
	switch ev.Kind {
	case engine.KindSpawned:
		r.spawned.Inc()
	case engine.KindHit, engine.KindMiss:
		judgement := "hit"
		if ev.Kind == engine.KindMiss {
			judgement = "miss"
		}
		r.resolutions.WithLabelValues(judgement, ev.Cause.String()).Inc()
		if ev.Kind == engine.KindHit {
			d := ev.Delta
			if d < 0 {
				d = -d
			}
			r.delta.Observe(d.Seconds())
		}
	case engine.KindStarted:
		r.sessions.WithLabelValues(ev.Kind.String()).Inc()
		r.active.Inc()
	case engine.KindWon:
		r.sessions.WithLabelValues(ev.Kind.String()).Inc()
		r.active.Dec()
	case engine.KindAssist, engine.KindAdvance:
		r.sessions.WithLabelValues(ev.Kind.String()).Inc()
	}
}

// Abandon marks a playing session that ended without a win.
func (r *Recorder) Abandon() {
	r.sessions.WithLabelValues("abandoned").Inc()
	r.active.Dec()
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
