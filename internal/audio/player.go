// Package audio plays feedback tones for engine events and the optional
// backing track, mixed through one speaker.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

const SampleRate = beep.SampleRate(44100)

// Player is an engine.Notifier. A muted player accepts events and plays
// nothing, so hosts without audio can wire it the same way.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	track  beep.StreamSeekCloser
	format beep.Format
	muted  bool
	delay  time.Duration // silence before the track, matching the clock's start delay
	open   bool
	played int
	log    *log.Logger
}

func NewPlayer(muted bool, delay time.Duration, logger *log.Logger) *Player {
	return &Player{
		rate:  SampleRate,
		mixer: &beep.Mixer{},
		muted: muted,
		delay: delay,
		log:   logger,
	}
}

// Open initialises the speaker and starts the mixer.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted || p.open {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/30)); nil != err {
		return fmt.Errorf("unable to initialise speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// LoadTrack decodes an mp3 or ogg file to be started with the session.
func (p *Player) LoadTrack(path string) error {
	f, err := os.Open(path)
	if nil != err {
		return fmt.Errorf("unable to open track: %w", err)
	}
	var s beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".mp3":
		s, format, err = mp3.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported track format %s", path)
	}
	if nil != err {
		f.Close()
		return fmt.Errorf("unable to decode track: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if nil != p.track {
		p.track.Close()
	}
	p.track, p.format = s, format
	return nil
}

func (p *Player) play(s beep.Streamer) {
	p.played++
	if !p.open {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Notify(ev engine.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	switch ev.Kind {
	case engine.KindStarted:
		if nil == p.track {
			return
		}
		var s beep.Streamer = p.track
		if p.format.SampleRate != p.rate {
			s = beep.Resample(4, p.format.SampleRate, p.rate, s)
		}
		if p.delay > 0 {
			s = beep.Seq(beep.Silence(p.rate.N(p.delay)), s)
		}
		p.play(s)
	case engine.KindHit:
		p.play(Impact(p.rate))
	case engine.KindMiss:
		p.play(Thud(p.rate))
	case engine.KindWon:
		p.play(Fanfare(p.rate))
	case engine.KindAssist:
		if nil != p.log {
			p.log.Debug("assist window engaged", "misses", ev.Misses)
		}
	}
}

// Played counts sounds queued since the player was created.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		p.open = false
	}
	if nil != p.track {
		err := p.track.Close()
		p.track = nil
		return err
	}
	return nil
}
