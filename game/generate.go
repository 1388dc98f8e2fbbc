package game

import (
	"github.com/gammazero/deque"
)

// fillWalls makes every cell except start and goal a wall with probability density
func (board *Board) fillWalls(density float64) {
	for _, cell := range board.Cells() {
		isWall := board.rand.Float64() < density
		if cell.pos == board.start || cell.pos == board.goal {
			isWall = false
		}
		cell.setWall(isWall)
	}
}

func (board *Board) clearEndpoints() {
	board.At(board.start).setWall(false)
	board.At(board.goal).setWall(false)
}

// carve replaces the grid with a randomized depth-first maze. Passages run
// between cells with even coordinates, so every such cell is reachable from
// start; the goal is then joined to the nearest of them.
func (board *Board) carve() {
	for _, cell := range board.Cells() {
		cell.setWall(true)
	}

	visited := make(map[Position]struct{})
	var stack deque.Deque

	board.At(board.start).setWall(false)
	visited[board.start] = struct{}{}
	stack.PushBack(board.start)

	for stack.Len() > 0 {
		current := stack.Back().(Position)

		var candidates []Direction
		for _, dir := range Directions {
			next := current.Step(dir).Step(dir)
			if _, seen := visited[next]; !seen && board.InBounds(next) {
				candidates = append(candidates, dir)
			}
		}

		if len(candidates) == 0 {
			stack.PopBack()
			continue
		}

		dir := candidates[board.rand.Intn(len(candidates))]
		between := current.Step(dir)
		next := between.Step(dir)

		board.At(between).setWall(false)
		board.At(next).setWall(false)
		visited[next] = struct{}{}
		stack.PushBack(next)
	}

	anchor := Position{Row: board.goal.Row &^ 1, Col: board.goal.Col &^ 1}
	pos := board.goal
	board.At(pos).setWall(false)
	for pos.Col > anchor.Col {
		pos.Col--
		board.At(pos).setWall(false)
	}
	for pos.Row > anchor.Row {
		pos.Row--
		board.At(pos).setWall(false)
	}

	board.clearEndpoints()
}
