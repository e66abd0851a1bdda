package scene

import (
	"math"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

// flight is the travel of one threat from the screen edge to the shield.
type flight struct {
	beat      int
	direction game.Direction
	from      time.Duration // session time it spawned
	travel    time.Duration
	landed    bool
}

func newFlight(beat int, d game.Direction, due, now time.Duration) *flight {
	travel := due - now
	if travel < game.MinimumTravel {
		travel = game.MinimumTravel
	}
	return &flight{beat: beat, direction: d, from: now, travel: travel}
}

func (f *flight) lands() time.Duration {
	return f.from + f.travel
}

// progress runs from 0 at the edge to 1 on contact.
func (f *flight) progress(at time.Duration) float64 {
	p := float64(at-f.from) / float64(f.travel)
	return math.Max(0, math.Min(1, p))
}

func (f *flight) position(l layout, at time.Duration, reduced bool) Position {
	to := l.contact(f.direction)
	if reduced {
		return to
	}
	from := l.edge(f.direction)
	p := f.progress(at)
	return Position{
		Col: from.Col + int(math.Round(p*float64(to.Col-from.Col))),
		Row: from.Row + int(math.Round(p*float64(to.Row-from.Row))),
	}
}
