package game

import "time"

// Kicks on beats 1 and 3 of each 4/4 measure of the main track at ~85 BPM.
var beatMap = []time.Duration{
	706 * time.Millisecond,
	2118 * time.Millisecond,
	3530 * time.Millisecond,
	4942 * time.Millisecond,
	6353 * time.Millisecond,
	7765 * time.Millisecond,
	9176 * time.Millisecond,
	10588 * time.Millisecond,
	12000 * time.Millisecond,
	13412 * time.Millisecond,
	14824 * time.Millisecond,
	16235 * time.Millisecond,
	17647 * time.Millisecond,
	19059 * time.Millisecond,
	20471 * time.Millisecond,
	21882 * time.Millisecond,
	23294 * time.Millisecond,
	24706 * time.Millisecond,
	26118 * time.Millisecond,
	27529 * time.Millisecond,
	28941 * time.Millisecond,
	30353 * time.Millisecond,
	31765 * time.Millisecond,
	33176 * time.Millisecond,
	34588 * time.Millisecond,
	36000 * time.Millisecond,
	37412 * time.Millisecond,
	38824 * time.Millisecond,
	40235 * time.Millisecond,
	41647 * time.Millisecond,
	43059 * time.Millisecond,
	44471 * time.Millisecond,
}

// BeatMap returns the compiled-in schedule for the chapter.
func BeatMap() *Schedule {
	return MustSchedule(beatMap)
}
