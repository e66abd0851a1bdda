package game

// Direction is the side a threat approaches the shield from. It is also the
// screen zone that has to be tapped to deflect it.
type Direction uint8

const (
	Left Direction = iota
	Right
	Top
)

// Directions lists every direction in beat assignment order.
var Directions = [...]Direction{Left, Right, Top}

// DirectionForBeat assigns directions cyclically by beat index.
func DirectionForBeat(index int) Direction {
	return Directions[index%len(Directions)]
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	}
	return "unknown"
}
