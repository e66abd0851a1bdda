// Package input turns key presses and clicks into timestamped events.
// Readers run on their own goroutine and only stamp and forward events; all
// judging happens on the frame loop that drains Events.
package input

import (
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
)

type Action uint8

const (
	ActionTap     Action = iota + 1
	ActionConfirm        // PLAY / CONTINUE
	ActionQuit
)

type Event struct {
	Action Action
	// Keyed taps carry a zone; clicks carry the cell that was clicked,
	// 0-based from the top left.
	Keyed bool
	Zone  game.Direction
	Point engine.Point
	At    time.Time
}

type Source interface {
	Events() <-chan Event
	Close() error
}

func tap(d game.Direction) Event {
	return Event{Action: ActionTap, Keyed: true, Zone: d}
}

// runeEvent maps the printable bindings shared by every source.
func runeEvent(r rune) (Event, bool) {
	switch r {
	case 'a', 'A', 'h':
		return tap(game.Left), true
	case 'd', 'D', 'l':
		return tap(game.Right), true
	case 'w', 'W', 'k':
		return tap(game.Top), true
	case ' ', '\r', '\n':
		return Event{Action: ActionConfirm}, true
	case 'q', 'Q', 0x03:
		return Event{Action: ActionQuit}, true
	}
	return Event{}, false
}
