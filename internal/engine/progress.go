package engine

import "time"

// Progress counts judged beats and decides when the session is won.
type Progress struct {
	hits, misses int
	total        int
	floor        time.Duration
}

func NewProgress(total int, floor time.Duration) *Progress {
	return &Progress{total: total, floor: floor}
}

func (p *Progress) Hits() int      { return p.hits }
func (p *Progress) Misses() int    { return p.misses }
func (p *Progress) Total() int     { return p.total }
func (p *Progress) Processed() int { return p.hits + p.misses }

func (p *Progress) hit()  { p.hits++ }
func (p *Progress) miss() { p.misses++ }

// Won reports whether the schedule has been walked by both cursors and the
// minimum session duration has passed.
func (p *Progress) Won(exhausted bool, elapsed time.Duration) bool {
	return exhausted && elapsed >= p.floor
}
