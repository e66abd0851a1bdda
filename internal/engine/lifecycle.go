package engine

import (
	"sort"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

// Lifecycle owns every threat from spawn to resolution and guarantees each
// beat is resolved exactly once.
//
// Two independent cursors walk the schedule: spawn marks the next beat to
// create a threat for, sweep the next beat whose deadline has not yet been
// checked. Both only move forward.
type Lifecycle struct {
	schedule *game.Schedule
	active   map[int]*game.Threat
	resolved []bool
	spawn    int
	sweep    int
}

func NewLifecycle(schedule *game.Schedule) *Lifecycle {
	return &Lifecycle{
		schedule: schedule,
		active:   make(map[int]*game.Threat),
		resolved: make([]bool, schedule.Len()),
	}
}

// AdvanceSpawning creates a threat for every beat due within lead of elapsed.
func (l *Lifecycle) AdvanceSpawning(elapsed, lead time.Duration) []*game.Threat {
	var spawned []*game.Threat
	for l.spawn < l.schedule.Len() {
		due := l.schedule.At(l.spawn)
		if due-lead > elapsed {
			break
		}
		t := &game.Threat{
			Beat:      l.spawn,
			Direction: l.schedule.Direction(l.spawn),
			Due:       due,
			SpawnedAt: elapsed,
		}
		l.active[l.spawn] = t
		spawned = append(spawned, t)
		l.spawn++
	}
	return spawned
}

// SweepExpired hands every unresolved beat whose deadline (due + window) is
// before elapsed to miss, and moves the sweep cursor past it either way.
// window is read per beat because a miss can widen it mid-sweep.
func (l *Lifecycle) SweepExpired(elapsed time.Duration, window func() time.Duration, miss func(beat int)) {
	for l.sweep < l.schedule.Len() {
		if l.schedule.At(l.sweep)+window() >= elapsed {
			break
		}
		beat := l.sweep
		l.sweep++
		if !l.resolved[beat] {
			miss(beat)
		}
	}
}

// Take marks beat resolved and removes its threat. ok is false when the beat
// was already resolved or does not exist; only the caller that gets ok may
// judge the beat. The returned threat is nil if it was never spawned.
func (l *Lifecycle) Take(beat int) (threat *game.Threat, ok bool) {
	if beat < 0 || beat >= len(l.resolved) || l.resolved[beat] {
		return nil, false
	}
	l.resolved[beat] = true
	threat = l.active[beat]
	delete(l.active, beat)
	return threat, true
}

// Threat returns the live threat for beat, if any.
func (l *Lifecycle) Threat(beat int) (*game.Threat, bool) {
	t, ok := l.active[beat]
	return t, ok
}

// Active lists live threats ordered by beat.
func (l *Lifecycle) Active() []*game.Threat {
	threats := make([]*game.Threat, 0, len(l.active))
	for _, t := range l.active {
		threats = append(threats, t)
	}
	sort.Slice(threats, func(i, j int) bool { return threats[i].Beat < threats[j].Beat })
	return threats
}

func (l *Lifecycle) Resolved(beat int) bool {
	return beat >= 0 && beat < len(l.resolved) && l.resolved[beat]
}

// Cursors returns the spawn and sweep cursors.
func (l *Lifecycle) Cursors() (spawn, sweep int) {
	return l.spawn, l.sweep
}

// Exhausted reports whether both cursors have walked the whole schedule.
func (l *Lifecycle) Exhausted() bool {
	return l.spawn >= l.schedule.Len() && l.sweep >= l.schedule.Len()
}

// Reset drops every live threat. Cursors are parked at the end so nothing is
// spawned or swept afterwards.
func (l *Lifecycle) Reset() {
	l.active = make(map[int]*game.Threat)
	l.spawn = l.schedule.Len()
	l.sweep = l.schedule.Len()
}
