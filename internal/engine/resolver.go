package engine

import (
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
)

// Tap zone bands, as fractions of the area height measured from the bottom.
const (
	DeadZoneCeiling = 0.22 // below this taps are ignored
	TopZoneFloor    = 0.58 // above this taps defend the top
)

// Point is a tap position. Y grows downwards, as rows do on a terminal.
type Point struct {
	X, Y float64
}

// Area is the size of the surface taps are made on.
type Area struct {
	Width, Height float64
}

// Center returns the point in the middle of the zone for d.
func (a Area) Center(d game.Direction) Point {
	middle := a.Height * (1 - (DeadZoneCeiling+TopZoneFloor)/2)
	switch d {
	case game.Left:
		return Point{X: a.Width / 4, Y: middle}
	case game.Right:
		return Point{X: a.Width * 3 / 4, Y: middle}
	}
	return Point{X: a.Width / 2, Y: a.Height * (1 - (TopZoneFloor+1)/2)}
}

// Zone classifies a tap. ok is false for the dead band at the bottom and
// for degenerate areas.
func Zone(p Point, a Area) (d game.Direction, ok bool) {
	if a.Width <= 0 || a.Height <= 0 {
		return 0, false
	}
	up := (a.Height - p.Y) / a.Height
	if up < DeadZoneCeiling {
		return 0, false
	}
	if up > TopZoneFloor {
		return game.Top, true
	}
	if p.X < a.Width/2 {
		return game.Left, true
	}
	return game.Right, true
}

// Match finds the threat approaching from zone whose due time is closest to
// at and no further away than window. Equal distances go to the earlier beat.
// delta is at minus the due time of the match.
func Match(threats []*game.Threat, zone game.Direction, at, window time.Duration) (match *game.Threat, delta time.Duration, ok bool) {
	var best time.Duration
	for _, t := range threats {
		if t.Direction != zone {
			continue
		}
		d := abs(at - t.Due)
		if d > window {
			continue
		}
		if nil == match || d < best || (d == best && t.Beat < match.Beat) {
			match, best, delta = t, d, at-t.Due
		}
	}
	return match, delta, nil != match
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}
