package game

import "time"

type InputKind uint8

const (
	InputTap InputKind = iota
	InputArrival
)

// Input is one recorded event of a run: a tap in a zone, or a threat's
// travel landing on the shield.
type Input struct {
	Kind InputKind     `json:"k"`
	Zone Direction     `json:"z,omitempty"`
	Beat int           `json:"b,omitempty"`
	At   time.Duration `json:"t"`
}
