package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gomaze/util/collections"
)

type NeighborGetter func(*Cell) []*Cell

// Visitor is called once per reached cell; returning true stops the search
type Visitor func(*Cell) bool

// flood visits every cell reachable from cell through getNeighbors, depth
// first, and reports whether a visitor stopped it early
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) bool {
	visited := make(collections.Set[int])
	var stack deque.Deque

	visited.Add(cell.idx)
	stack.PushBack(cell)

	for stack.Len() > 0 {
		current := stack.PopBack().(*Cell)
		if visit(current) {
			return true
		}

		neighbors := getNeighbors(current)
		// Pushed in reverse, so the first neighbor is explored first
		for i := len(neighbors) - 1; i >= 0; i-- {
			neighbor := neighbors[i]
			if visited.Contains(neighbor.idx) {
				continue
			}
			visited.Add(neighbor.idx)
			stack.PushBack(neighbor)
		}
	}

	return false
}

// IsReachable reports whether a 4-connected path of open cells joins from and to
func (board *Board) IsReachable(from, to Position) bool {
	if !board.IsOpen(from) || !board.IsOpen(to) {
		return false
	}

	return flood(
		board.At(from),
		func(cell *Cell) bool {
			return cell.pos == to
		},
		func(cell *Cell) []*Cell {
			return cell.OpenNeighbors()
		},
	)
}

func (board *Board) IsSolvable() bool {
	return board.IsReachable(board.start, board.goal)
}

// ReachableCells counts the open cells connected to from, including itself
func (board *Board) ReachableCells(from Position) int {
	if !board.IsOpen(from) {
		return 0
	}

	total := 0
	flood(
		board.At(from),
		func(cell *Cell) bool {
			total++
			return false
		},
		func(cell *Cell) []*Cell {
			return cell.OpenNeighbors()
		},
	)
	return total
}

// ShortestPath returns the moves of a shortest open path from -> to, found
// breadth first. The bool is false when no path exists.
func (board *Board) ShortestPath(from, to Position) ([]Direction, bool) {
	if !board.IsOpen(from) || !board.IsOpen(to) {
		return nil, false
	}
	if from == to {
		return []Direction{}, true
	}

	type step struct {
		from Position
		dir  Direction
	}
	cameFrom := map[Position]step{}
	var queue deque.Deque

	cameFrom[from] = step{from: from}
	queue.PushBack(from)

	for queue.Len() > 0 {
		current := queue.PopFront().(Position)
		if current == to {
			break
		}

		for _, dir := range Directions {
			next := current.Step(dir)
			if _, seen := cameFrom[next]; seen || !board.IsOpen(next) {
				continue
			}
			cameFrom[next] = step{from: current, dir: dir}
			queue.PushBack(next)
		}
	}

	if _, found := cameFrom[to]; !found {
		return nil, false
	}

	var path []Direction
	for pos := to; pos != from; pos = cameFrom[pos].from {
		path = append(path, cameFrom[pos].dir)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
