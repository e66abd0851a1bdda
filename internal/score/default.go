package score

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	Path string // sqlite file, ":memory:" for a throwaway store

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Path
	if path == "" {
		path = "./firewall.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("unable to open score database: %w", err)
	}
	// sqlite serialises writers anyway; one connection keeps concurrent
	// ssh sessions from tripping over "database is locked"
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists runs
	  (
		  id text not null primary key,
		  sum text not null,
		  played_at integer not null,
		  hits integer not null,
		  misses integer not null,
		  assisted integer not null,
		  inputs blob
	  );
	create index if not exists runs_sum on runs (sum, played_at);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create score table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultScorer) Save(schedule *game.Schedule, h *History) error {
	if nil == s.db {
		return ErrNoDatabase
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.PlayedAt.IsZero() {
		h.PlayedAt = time.Now()
	}
	h.Sum = schedule.Hash()
	data, err := json.Marshal(compactInputs(h.Inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	_, err = s.db.Exec(
		"insert into runs(id, sum, played_at, hits, misses, assisted, inputs) values(?, ?, ?, ?, ?, ?, ?)",
		h.ID.String(), h.Sum, h.PlayedAt.UnixNano(), h.Hits, h.Misses, h.Assisted, data,
	)
	if nil != err {
		return fmt.Errorf("unable to save run %v: %w", h.ID, err)
	}
	return nil
}

func (s *DefaultScorer) Load(schedule *game.Schedule) ([]History, error) {
	if nil == s.db {
		return nil, ErrNoDatabase
	}
	rows, err := s.db.Query(
		"select id, sum, played_at, hits, misses, assisted, inputs from runs where sum = ? order by played_at desc",
		schedule.Hash(),
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load runs: %w", err)
	}
	defer rows.Close()

	histories := []History{}
	for rows.Next() {
		var (
			id, sum  string
			playedAt int64
			h        History
			data     []byte
		)
		if err := rows.Scan(&id, &sum, &playedAt, &h.Hits, &h.Misses, &h.Assisted, &data); nil != err {
			return nil, fmt.Errorf("unable to scan run: %w", err)
		}
		if h.ID, err = uuid.Parse(id); nil != err {
			return nil, fmt.Errorf("run %q: %w", id, err)
		}
		var log LogCompact
		if err := json.Unmarshal(data, &log); nil != err {
			return nil, fmt.Errorf("unable to unmarshal inputs of run %v: %w", h.ID, err)
		}
		h.Sum = sum
		h.PlayedAt = time.Unix(0, playedAt)
		h.Inputs = uncompactInputs(log)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

func (s *DefaultScorer) Score(schedule *game.Schedule, h *History) (Score, error) {
	return Replay(schedule, h.Inputs)
}
