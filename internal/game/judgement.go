package game

// Judgement is the terminal outcome of a beat.
type Judgement uint8

const (
	Hit Judgement = iota + 1
	Miss
)

func (j Judgement) String() string {
	switch j {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return "none"
}

// Cause records which path judged a miss.
type Cause uint8

const (
	CauseTap Cause = iota
	CauseArrival
	CauseSweep
)

func (c Cause) String() string {
	switch c {
	case CauseTap:
		return "tap"
	case CauseArrival:
		return "arrival"
	case CauseSweep:
		return "sweep"
	}
	return "unknown"
}
