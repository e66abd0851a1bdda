package engine

import "time"

// Difficulty widens the hit window once enough beats have been missed.
// It holds no state: the tier is derived from the miss count on every call,
// and since misses never decrease the window never narrows again.
type Difficulty struct {
	Window       time.Duration
	AssistWindow time.Duration
	Threshold    int
}

func (d Difficulty) Assist(misses int) bool {
	return misses >= d.Threshold
}

func (d Difficulty) Tolerance(misses int) time.Duration {
	if d.Assist(misses) {
		return d.AssistWindow
	}
	return d.Window
}
