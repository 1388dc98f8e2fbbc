package game

import "fmt"

type CellState int
type BoardState int

const (
	Open CellState = iota
	Wall
)

const (
	Ongoing BoardState = iota
	Won
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four moves in the order searches try them
var Directions = []Direction{Down, Up, Right, Left}

func (dir Direction) Delta() (dRow, dCol int) {
	switch dir {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (dir Direction) String() string {
	switch dir {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

const (
	// Number of attempts at a solvable random layout before carving one instead
	DefaultMaxRetries = 100
)
