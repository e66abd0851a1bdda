package audio

import (
	"math"
	"testing"
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"github.com/faiface/beep"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || total > int(SampleRate) {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle} {
		n, peak := drain(Oscillator(440, 100*time.Millisecond, w, SampleRate))
		if n != SampleRate.N(100*time.Millisecond) {
			t.Fatalf("wave %d streamed %d samples", w, n)
		}
		if peak > 1 {
			t.Fatalf("wave %d out of range: %f", w, peak)
		}
	}
}

func TestEnvelopeSilencesEnds(t *testing.T) {
	s := Envelope(Oscillator(100, time.Second, WaveSquare, SampleRate), 50*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(50*time.Millisecond))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Fatalf("envelope did not start silent: %f", buf[0][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Fatalf("envelope did not decay: %f", last)
	}
	if m, _ := s.Stream(buf); m != 0 {
		t.Fatalf("envelope streamed past its duration: %d", m)
	}
}

func TestTonesEnd(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"impact":  Impact(SampleRate),
		"thud":    Thud(SampleRate),
		"fanfare": Fanfare(SampleRate),
	} {
		n, peak := drain(s)
		if n == 0 || n > int(SampleRate) {
			t.Fatalf("%s streamed %d samples", name, n)
		}
		if peak == 0 || peak > 1 {
			t.Fatalf("%s peak %f", name, peak)
		}
	}
}

func TestMutedPlayer(t *testing.T) {
	p := NewPlayer(true, 0, nil)
	if err := p.Open(); nil != err {
		t.Fatal(err)
	}
	p.Notify(engine.Event{Kind: engine.KindHit})
	if p.Played() != 0 {
		t.Fatal("muted player queued a sound")
	}
}

func TestClosedPlayerCounts(t *testing.T) {
	p := NewPlayer(false, 0, nil)
	p.Notify(engine.Event{Kind: engine.KindHit})
	p.Notify(engine.Event{Kind: engine.KindMiss})
	p.Notify(engine.Event{Kind: engine.KindSpawned})
	if p.Played() != 2 {
		t.Fatalf("expected 2 sounds, got %d", p.Played())
	}
	if err := p.Close(); nil != err {
		t.Fatal(err)
	}
}

func TestUnsupportedTrack(t *testing.T) {
	p := NewPlayer(false, 0, nil)
	if err := p.LoadTrack("track.wav"); nil == err {
		t.Fatal("expected an error")
	}
}
