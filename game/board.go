package game

import (
	"math/rand"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Board struct {
	size  int // in number of cells, per side
	cells [][]Cell

	start, goal Position
	player      Position

	seed int64
	rand *rand.Rand
}

type boardConfig struct {
	Size            int
	WallDensity     float64
	RequireSolvable bool
	MaxRetries      int
	Seed            int64
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) Start() Position {
	return board.start
}

func (board *Board) Goal() Position {
	return board.goal
}

func (board *Board) Player() Position {
	return board.player
}

func (board *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < board.size && pos.Col < board.size
}

func (board *Board) CellAt(row, col int) *Cell {
	return board.At(Position{Row: row, Col: col})
}

// At returns the cell at pos, or nil if pos is off the board
func (board *Board) At(pos Position) *Cell {
	if board.InBounds(pos) {
		return &board.cells[pos.Row][pos.Col]
	}
	return nil
}

func (board *Board) IsOpen(pos Position) bool {
	cell := board.At(pos)
	return cell != nil && cell.IsOpen()
}

func (board *Board) Cells() []*Cell {
	out := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			out = append(out, &board.cells[row][col])
		}
	}
	return out
}

func (board *Board) NumWalls() int {
	numWalls := 0
	for _, cell := range board.Cells() {
		if cell.IsWall() {
			numWalls++
		}
	}
	return numWalls
}

func (board *Board) AtGoal() bool {
	return board.player == board.goal
}

// Move steps the player one cell in dir. Moves off the board or into a wall
// leave the player where it is and return false.
func (board *Board) Move(dir Direction) bool {
	next := board.player.Step(dir)
	if !board.IsOpen(next) {
		return false
	}
	board.player = next
	return true
}

func (board *Board) String() string {
	var builder strings.Builder
	for row := range board.cells {
		for col := range board.cells[row] {
			builder.WriteString(board.cells[row][col].serialize())
		}
		if row != board.size-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

func newBoard(size int, seed int64) *Board {
	board := Board{
		size:  size,
		cells: make([][]Cell, size),
		start: Position{0, 0},
		goal:  Position{size - 1, size - 1},
		seed:  seed,
		rand:  rand.New(rand.NewSource(seed)),
	}
	board.player = board.start

	cellIdx := 0
	for row := 0; row < size; row++ {
		board.cells[row] = make([]Cell, size)

		for col := 0; col < size; col++ {
			cell := &board.cells[row][col]
			cell.board = &board
			cell.idx = cellIdx
			cell.pos = Position{row, col}
			cell.state = Open
			cellIdx++
		}
	}

	return &board
}

func createBoard(config boardConfig) *Board {
	board := newBoard(config.Size, config.Seed)

	attempts := 1
	if config.RequireSolvable {
		attempts = config.MaxRetries
		if attempts < 1 {
			attempts = 1
		}
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		board.fillWalls(config.WallDensity)
		board.clearEndpoints()

		if !config.RequireSolvable {
			return board
		}
		if board.IsSolvable() {
			log.WithFields(log.Fields{
				"size":     config.Size,
				"attempts": attempt,
			}).Debug("generated solvable board")
			return board
		}
	}

	log.WithFields(log.Fields{
		"size":     config.Size,
		"density":  config.WallDensity,
		"attempts": attempts,
	}).Warn("no solvable layout found by random walls; carving a maze instead")

	board.carve()
	return board
}
