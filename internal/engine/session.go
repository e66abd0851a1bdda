package engine

// State of a session. It never moves backwards.
type State uint8

const (
	Ready State = iota
	Playing
	Won
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	}
	return "unknown"
}

// Session gates spawning and input by state.
type Session struct {
	state    State
	advanced bool
}

func (s *Session) State() State { return s.state }

// Start moves ready to playing.
func (s *Session) Start() bool {
	if s.state != Ready {
		return false
	}
	s.state = Playing
	return true
}

// Win moves playing to won.
func (s *Session) Win() bool {
	if s.state != Playing {
		return false
	}
	s.state = Won
	return true
}

// Advance accepts the continue action once, and only after winning.
func (s *Session) Advance() bool {
	if s.state != Won || s.advanced {
		return false
	}
	s.advanced = true
	return true
}
