package score

import (
	"sort"
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
)

// ReplayRate is the tick cadence recorded runs are judged at.
const ReplayRate = 120

// Replay judges an input log through a fresh engine. Ticks run at
// ReplayRate, so a run played at another frame rate can differ at the edges
// of a window.
func Replay(schedule *game.Schedule, inputs []game.Input) (Score, error) {
	var score Score
	var sum time.Duration
	notify := engine.NotifierFunc(func(ev engine.Event) {
		switch ev.Kind {
		case engine.KindHit:
			score.TotalError += abs(ev.Delta)
			sum += ev.Delta
		case engine.KindAssist:
			score.Assisted = true
		}
	})
	e, err := engine.New(schedule, engine.DefaultConfig(), engine.WithNotifier(notify))
	if nil != err {
		return score, err
	}

	ins := make([]game.Input, len(inputs))
	copy(ins, inputs)
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].At < ins[j].At })

	end := schedule.Last() + game.AssistWindow
	if end < game.MinimumDuration {
		end = game.MinimumDuration
	}
	if n := len(ins); n > 0 && ins[n-1].At > end {
		end = ins[n-1].At
	}

	area := engine.Area{Width: 1, Height: 1}
	step := time.Second / ReplayRate
	e.Start()
	i := 0
	for now := time.Duration(0); e.State() == engine.Playing && now <= end+step; now += step {
		for ; i < len(ins) && ins[i].At <= now; i++ {
			switch ins[i].Kind {
			case game.InputTap:
				e.Tap(area.Center(ins[i].Zone), area, ins[i].At)
			case game.InputArrival:
				e.Arrive(ins[i].Beat, ins[i].At)
			}
		}
		e.Tick(now)
	}

	score.Hits, score.Misses = e.Hits(), e.Misses()
	if score.Hits > 0 {
		score.Mean = sum / time.Duration(score.Hits)
	}
	return score, nil
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}
