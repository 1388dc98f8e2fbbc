package game

import (
	"fmt"
)

type Position struct {
	Row, Col int
}

func (pos Position) Step(dir Direction) Position {
	dRow, dCol := dir.Delta()
	return Position{Row: pos.Row + dRow, Col: pos.Col + dCol}
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

type Cell struct {
	board *Board

	pos   Position
	idx   int
	state CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.pos.Row, cell.pos.Col)
}

func (cell *Cell) Position() Position {
	return cell.pos
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsWall() bool {
	return cell.state == Wall
}

func (cell *Cell) IsOpen() bool {
	return cell.state == Open
}

func (cell *Cell) setWall(isWall bool) {
	if isWall {
		cell.state = Wall
	} else {
		cell.state = Open
	}
}

func (cell *Cell) serialize() string {
	board := cell.board
	switch {
	case cell.IsWall():
		return "#"
	case cell.pos == board.player:
		return "P"
	case cell.pos == board.goal:
		return "G"
	default:
		return "."
	}
}

func (cell *Cell) deserialize(c string) bool {
	switch c {
	case "#":
		cell.setWall(true)
	case ".", "G":
		cell.setWall(false)
	case "P":
		cell.setWall(false)
		cell.board.player = cell.pos
	default:
		return false
	}

	return true
}

// Neighbors returns the in-bounds cells adjacent to this one, in Directions order
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, len(Directions))
	for _, dir := range Directions {
		if neighbor := cell.board.At(cell.pos.Step(dir)); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (cell *Cell) OpenNeighbors() []*Cell {
	neighbors := cell.Neighbors()
	open := neighbors[:0]
	for _, neighbor := range neighbors {
		if neighbor.IsOpen() {
			open = append(open, neighbor)
		}
	}
	return open
}
