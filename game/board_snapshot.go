package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Level           int    `yaml:"level"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the board described by the snapshot. The goal is
// always the bottom-right corner and start the top-left.
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	size := len(rows)
	if size < 2 {
		return nil, fmt.Errorf("%w: board must be at least 2x2", ErrInvalidSnapshot)
	}

	board := newBoard(size, snapshot.Seed)
	numPlayers := 0

	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, row, len(line), size)
		}

		for col, c := range line {
			cell := board.CellAt(row, col)
			if !cell.deserialize(string(c)) {
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidSnapshot, c, cell.pos)
			}
			if c == 'G' && cell.pos != board.goal {
				return nil, fmt.Errorf("%w: goal at %v, must be at %v", ErrInvalidSnapshot, cell.pos, board.goal)
			}
			if c == 'P' {
				numPlayers++
			}
		}
	}

	if numPlayers > 1 {
		return nil, fmt.Errorf("%w: %d players on board", ErrInvalidSnapshot, numPlayers)
	}
	if board.At(board.start).IsWall() || board.At(board.goal).IsWall() {
		return nil, fmt.Errorf("%w: start and goal must be open", ErrInvalidSnapshot)
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return LoadSnapshot(string(data))
}

func (board *Board) Snapshot(level int) *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            board.seed,
		Level:           level,
		SerializedBoard: board.String(),
	}
}
