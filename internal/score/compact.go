package score

import (
	"sort"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

type InputsCompact struct {
	Index int
	Times []time.Duration
}

type ArrivalCompact struct {
	Beat int
	Time time.Duration
}

type LogCompact struct {
	Taps     []InputsCompact
	Arrivals []ArrivalCompact
}

// compactInputs groups tap times per zone, which stores a run in roughly
// half the space of the flat log.
func compactInputs(inputs []game.Input) LogCompact {
	log := LogCompact{Taps: make([]InputsCompact, len(game.Directions))}
	for i := range log.Taps {
		log.Taps[i] = InputsCompact{Index: i, Times: []time.Duration{}}
	}
	for _, in := range inputs {
		switch in.Kind {
		case game.InputTap:
			z := int(in.Zone)
			if z >= len(log.Taps) {
				continue
			}
			log.Taps[z].Times = append(log.Taps[z].Times, in.At)
		case game.InputArrival:
			log.Arrivals = append(log.Arrivals, ArrivalCompact{Beat: in.Beat, Time: in.At})
		}
	}
	return log
}

// uncompactInputs rebuilds the log in time order. At equal times arrivals
// come before taps.
func uncompactInputs(log LogCompact) []game.Input {
	ins := []game.Input{}
	for _, a := range log.Arrivals {
		ins = append(ins, game.Input{Kind: game.InputArrival, Beat: a.Beat, At: a.Time})
	}
	for _, c := range log.Taps {
		for _, t := range c.Times {
			ins = append(ins, game.Input{Kind: game.InputTap, Zone: game.Direction(c.Index), At: t})
		}
	}
	sort.SliceStable(ins, func(i, j int) bool {
		if ins[i].At != ins[j].At {
			return ins[i].At < ins[j].At
		}
		return ins[i].Kind == game.InputArrival && ins[j].Kind != game.InputArrival
	})
	return ins
}
