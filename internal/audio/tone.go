package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// Oscillator streams a fixed length wave and then ends.
func Oscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0], samples[i][1] = v, v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	total    int
}

// Envelope ramps s in over attack, then decays linearly to silence at
// duration.
func Envelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), total: rate.N(duration)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if decay := e.total - e.attack; decay > 0 {
			vol = float64(e.total-e.position) / float64(decay)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// volume scales s linearly; zero is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

const (
	impactLength = 180 * time.Millisecond
	thudLength   = 260 * time.Millisecond
	winLength    = 420 * time.Millisecond
)

// Impact is the bright two partial tone of a deflected threat.
func Impact(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		volume(Envelope(Oscillator(660, impactLength, WaveSine, rate), impactLength, 5*time.Millisecond, rate), 0.35),
		volume(Envelope(Oscillator(1320, impactLength, WaveTriangle, rate), impactLength/2, 5*time.Millisecond, rate), 0.15),
	)
}

// Thud is the low square tone of a breach.
func Thud(rate beep.SampleRate) beep.Streamer {
	return volume(Envelope(Oscillator(90, thudLength, WaveSquare, rate), thudLength, 10*time.Millisecond, rate), 0.25)
}

// Fanfare rises through a major triad.
func Fanfare(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		return volume(Envelope(Oscillator(freq, winLength/3, WaveSine, rate), winLength/3, 10*time.Millisecond, rate), 0.3)
	}
	return beep.Seq(note(523.25), note(659.25), note(783.99))
}
