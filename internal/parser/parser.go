package parser

import (
	"fmt"

	"git.lost.host/meutraa/firewall/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Schedule, error)
}

// Load returns the beat map at path, or the compiled-in map when path is
// empty.
func Load(p Parser, path string) (*game.Schedule, error) {
	if path == "" {
		return game.BeatMap(), nil
	}
	s, err := p.Parse(path)
	if nil != err {
		return nil, fmt.Errorf("unable to load beat map override: %w", err)
	}
	return s, nil
}
