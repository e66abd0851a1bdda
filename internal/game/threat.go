package game

import "time"

// Threat is the in-flight representation of one unresolved beat.
type Threat struct {
	Beat      int           // Index into the schedule
	Direction Direction     // Fixed for the threat's lifetime
	Due       time.Duration // When the threat reaches the shield
	SpawnedAt time.Duration // Session time the threat was created
}
