package game

import "errors"

var (
	ErrEmptySchedule     = errors.New("beat schedule is empty")
	ErrNegativeBeat      = errors.New("beat timestamp is negative")
	ErrUnorderedSchedule = errors.New("beat schedule is not in ascending order")
)
