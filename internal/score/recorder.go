package score

import (
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

// Recorder collects the input log of a run as it is played.
type Recorder struct {
	inputs []game.Input
}

func (r *Recorder) Tap(zone game.Direction, at time.Duration) {
	r.inputs = append(r.inputs, game.Input{Kind: game.InputTap, Zone: zone, At: at})
}

func (r *Recorder) Arrival(beat int, at time.Duration) {
	r.inputs = append(r.inputs, game.Input{Kind: game.InputArrival, Beat: beat, At: at})
}

func (r *Recorder) Inputs() []game.Input {
	out := make([]game.Input, len(r.inputs))
	copy(out, r.inputs)
	return out
}
