package engine

import (
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

// Kind classifies what an Event reports.
type Kind uint8

const (
	KindSpawned Kind = iota + 1
	KindHit
	KindMiss
	KindStarted
	KindAssist // the widened window has taken over
	KindWon
	KindAdvance // the player asked to leave the won screen
)

func (k Kind) String() string {
	switch k {
	case KindSpawned:
		return "spawned"
	case KindHit:
		return "hit"
	case KindMiss:
		return "miss"
	case KindStarted:
		return "started"
	case KindAssist:
		return "assist"
	case KindWon:
		return "won"
	case KindAdvance:
		return "advance"
	}
	return "unknown"
}

// Event is emitted by the engine for presentation, audio, metrics and
// chapter sequencing. Beat fields are only meaningful for spawn, hit and
// miss events.
type Event struct {
	Kind      Kind
	Beat      int
	Direction game.Direction
	Due       time.Duration
	At        time.Duration // session time the event happened
	Delta     time.Duration // tap time minus due time, hits only
	Cause     game.Cause
	Hits      int
	Misses    int
}

// Notifier receives engine events synchronously on the tick thread.
// Implementations must not call back into the engine.
type Notifier interface {
	Notify(ev Event)
}

type NotifierFunc func(ev Event)

func (f NotifierFunc) Notify(ev Event) { f(ev) }

// Notifiers fans an event out in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(ev Event) {
	for _, n := range ns {
		if nil != n {
			n.Notify(ev)
		}
	}
}
