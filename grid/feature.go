package grid

import "fmt"

// Feature is the authored content of one cell
type Feature uint8

const (
	Empty Feature = iota
	Wall
	Window
	Door
)

func (f Feature) String() string {
	switch f {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Window:
		return "window"
	case Door:
		return "door"
	default:
		return fmt.Sprintf("feature(%d)", uint8(f))
	}
}

// Glyph is the single-character plan form used by text grids
func (f Feature) Glyph() rune {
	switch f {
	case Wall:
		return '#'
	case Window:
		return 'W'
	case Door:
		return 'D'
	default:
		return '.'
	}
}

// ParseGlyph is the inverse of Glyph
func ParseGlyph(r rune) (Feature, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case '#':
		return Wall, true
	case 'W', 'w':
		return Window, true
	case 'D', 'd':
		return Door, true
	}
	return Empty, false
}

// Side names a compass direction on the grid. North is +Z, East is +X.
type Side uint8

const (
	North Side = iota
	South
	East
	West
)

var sideNames = [...]string{"north", "south", "east", "west"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

// Opposite returns the facing side
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// AlongZ reports whether the side's outward normal is ±Z
func (s Side) AlongZ() bool {
	return s == North || s == South
}

// ParseSide accepts the lower-case names and single-letter forms
func ParseSide(v string) (Side, error) {
	switch v {
	case "north", "North", "n", "N":
		return North, nil
	case "south", "South", "s", "S":
		return South, nil
	case "east", "East", "e", "E":
		return East, nil
	case "west", "West", "w", "W":
		return West, nil
	}
	return North, fmt.Errorf("unknown side %q", v)
}
