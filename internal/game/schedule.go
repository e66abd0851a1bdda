package game

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

// Schedule is the immutable, ordered list of beat timestamps a session is
// driven by. A beat's index is its identity for the whole session.
type Schedule struct {
	beats []time.Duration
}

// NewSchedule copies beats and rejects empty, negative or descending input.
// Equal neighbouring timestamps are allowed.
func NewSchedule(beats []time.Duration) (*Schedule, error) {
	if len(beats) == 0 {
		return nil, ErrEmptySchedule
	}
	for i, b := range beats {
		if b < 0 {
			return nil, fmt.Errorf("beat %d at %v: %w", i, b, ErrNegativeBeat)
		}
		if i > 0 && b < beats[i-1] {
			return nil, fmt.Errorf("beat %d at %v before beat %d at %v: %w", i, b, i-1, beats[i-1], ErrUnorderedSchedule)
		}
	}
	cp := make([]time.Duration, len(beats))
	copy(cp, beats)
	return &Schedule{beats: cp}, nil
}

// MustSchedule is NewSchedule for compiled-in maps.
func MustSchedule(beats []time.Duration) *Schedule {
	s, err := NewSchedule(beats)
	if nil != err {
		panic(err)
	}
	return s
}

func (s *Schedule) Len() int {
	return len(s.beats)
}

// At returns the due time of beat i.
func (s *Schedule) At(i int) time.Duration {
	return s.beats[i]
}

// Direction returns the approach direction of beat i.
func (s *Schedule) Direction(i int) Direction {
	return DirectionForBeat(i)
}

// Last returns the due time of the final beat.
func (s *Schedule) Last() time.Duration {
	return s.beats[len(s.beats)-1]
}

// Hash identifies the schedule in run history, so runs against an
// overridden beat map are never compared with the compiled-in one.
func (s *Schedule) Hash() string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, b := range s.beats {
		binary.LittleEndian.PutUint64(buf, uint64(b))
		h.Write(buf)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
