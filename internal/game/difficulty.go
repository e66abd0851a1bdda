package game

import "time"

// Tuning for the firewall chapter, fixed for a play-through.
const (
	// Threats spawn this long before they are due so their travel lands on the beat.
	LeadTime = 2 * time.Second
	// Floor on travel time when a threat spawns late.
	MinimumTravel = 50 * time.Millisecond

	DefaultWindow = 150 * time.Millisecond
	AssistWindow  = 300 * time.Millisecond
	// Misses before the assisted window takes over.
	MissThreshold = 5

	// The session cannot be won before the backing section has played out.
	MinimumDuration = 45 * time.Second
	VictoryPause    = 1500 * time.Millisecond
)
