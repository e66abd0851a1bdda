package scene

import (
	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
)

// Position is a 1-based terminal cell.
type Position struct {
	Col, Row int
}

type layout struct {
	width, height int
	area          engine.Area
	shield        Position
	title, button int // rows
}

func newLayout(width, height int) layout {
	a := engine.Area{Width: float64(width), Height: float64(height)}
	centre := a.Center(game.Left)
	l := layout{
		width:  width,
		height: height,
		area:   a,
		shield: Position{Col: width/2 + 1, Row: int(centre.Y) + 1},
		title:  height/4 + 1,
	}
	l.button = l.shield.Row + 3
	if l.button > height {
		l.button = height
	}
	return l
}

// edge is where a threat from d enters the screen.
func (l layout) edge(d game.Direction) Position {
	switch d {
	case game.Left:
		return Position{Col: 1, Row: l.shield.Row}
	case game.Right:
		return Position{Col: l.width, Row: l.shield.Row}
	}
	return Position{Col: l.shield.Col, Row: 1}
}

// contact is the cell beside the shield a threat from d lands on.
func (l layout) contact(d game.Direction) Position {
	switch d {
	case game.Left:
		return Position{Col: l.shield.Col - 2, Row: l.shield.Row}
	case game.Right:
		return Position{Col: l.shield.Col + 2, Row: l.shield.Row}
	}
	return Position{Col: l.shield.Col, Row: l.shield.Row - 1}
}

// arc is where the plasma arc for d is drawn.
func (l layout) arc(d game.Direction) Position {
	switch d {
	case game.Left:
		return Position{Col: l.shield.Col - 1, Row: l.shield.Row}
	case game.Right:
		return Position{Col: l.shield.Col + 1, Row: l.shield.Row}
	}
	return Position{Col: l.shield.Col, Row: l.shield.Row - 1}
}

// point converts a 0-based clicked cell to a tap point at its centre.
func (l layout) point(col, row float64) engine.Point {
	return engine.Point{X: col + 0.5, Y: row + 0.5}
}

// centred returns the column that centres s, counted in runes.
func (l layout) centred(s string) int {
	col := (l.width-len([]rune(s)))/2 + 1
	if col < 1 {
		return 1
	}
	return col
}
