package world

import "fmt"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Direction string

const (
	DirLocal     Direction = "local"
	DirNorth     Direction = "north"
	DirSouth     Direction = "south"
	DirEast      Direction = "east"
	DirWest      Direction = "west"
	DirNortheast Direction = "northeast"
	DirNorthwest Direction = "northwest"
	DirSoutheast Direction = "southeast"
	DirSouthwest Direction = "southwest"
)

// VicinityOrder fixes the index of every direction inside a Vicinity.
// All nine slots are always present in a report.
var VicinityOrder = [9]Direction{
	DirLocal,
	DirNorth,
	DirSouth,
	DirEast,
	DirWest,
	DirNortheast,
	DirNorthwest,
	DirSoutheast,
	DirSouthwest,
}

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLocal:
		return 0, 0
	case DirNorth:
		return 0, 1
	case DirSouth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	case DirNortheast:
		return 1, 1
	case DirNorthwest:
		return -1, 1
	case DirSoutheast:
		return 1, -1
	case DirSouthwest:
		return -1, -1
	}
	panic(fmt.Sprintf("world: unknown direction %q", string(d)))
}

func (d Direction) Orthogonal() bool {
	switch d {
	case DirNorth, DirSouth, DirEast, DirWest:
		return true
	}
	return false
}

func (d Direction) VicinityIndex() int {
	for i, dir := range VicinityOrder {
		if dir == d {
			return i
		}
	}
	panic(fmt.Sprintf("world: unknown direction %q", string(d)))
}

// ParseDirection maps an external direction token onto a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirLocal, DirNorth, DirSouth, DirEast, DirWest,
		DirNortheast, DirNorthwest, DirSoutheast, DirSouthwest:
		return Direction(s), true
	}
	return "", false
}

// mustOrthogonal rejects diagonal and local directions for movement and
// attacks. A violation is caller misuse, not a domain failure.
func mustOrthogonal(d Direction) {
	if !d.Orthogonal() {
		panic(fmt.Sprintf("world: not an orthogonal direction: %q", string(d)))
	}
}
