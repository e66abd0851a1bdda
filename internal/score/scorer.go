package score

import (
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
	"github.com/google/uuid"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save a finished run against the schedule it was played on
	Save(schedule *game.Schedule, history *History) error

	// Load previous runs for the schedule, newest first
	Load(schedule *game.Schedule) ([]History, error)

	Score(schedule *game.Schedule, history *History) (Score, error)
}

type History struct {
	ID       uuid.UUID
	Sum      string
	PlayedAt time.Time
	Hits     int
	Misses   int
	Assisted bool
	Inputs   []game.Input
}

type Score struct {
	Hits       int
	Misses     int
	Assisted   bool
	TotalError time.Duration // sum of absolute hit offsets
	Mean       time.Duration // signed mean hit offset, negative is early
}
