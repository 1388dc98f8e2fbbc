package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillWalls(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		board := newBoard(10, 1)
		board.fillWalls(0)
		assert.Equal(t, 0, board.NumWalls())
	})

	t.Run("full", func(t *testing.T) {
		board := newBoard(10, 1)
		board.fillWalls(1)
		assert.Equal(t, 98, board.NumWalls())
		assert.True(t, board.At(board.Start()).IsOpen())
		assert.True(t, board.At(board.Goal()).IsOpen())
	})

	t.Run("density", func(t *testing.T) {
		board := newBoard(100, 7)
		board.fillWalls(0.3)
		ratio := float64(board.NumWalls()) / float64(board.NumCells())
		assert.InDelta(t, 0.3, ratio, 0.03)
	})

	t.Run("refill_clears_old_walls", func(t *testing.T) {
		board := newBoard(10, 1)
		board.fillWalls(1)
		board.fillWalls(0)
		assert.Equal(t, 0, board.NumWalls())
	})
}

func TestCreateBoardEndpointsOpen(t *testing.T) {
	for _, level := range DefaultLevels {
		for seed := int64(1); seed <= 30; seed++ {
			board := createBoard(boardConfig{
				Size:            level.Size,
				WallDensity:     level.WallDensity,
				RequireSolvable: level.RequireSolvable,
				MaxRetries:      DefaultMaxRetries,
				Seed:            seed,
			})

			require.Equal(t, level.Size, board.Size())
			assert.Equal(t, Position{0, 0}, board.Start())
			assert.Equal(t, Position{level.Size - 1, level.Size - 1}, board.Goal())
			assert.Equal(t, board.Start(), board.Player())
			assert.True(t, board.At(board.Start()).IsOpen())
			assert.True(t, board.At(board.Goal()).IsOpen())
		}
	}
}

func TestCreateBoardRequireSolvable(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		board := createBoard(boardConfig{
			Size:            20,
			WallDensity:     0.3,
			RequireSolvable: true,
			MaxRetries:      DefaultMaxRetries,
			Seed:            seed,
		})
		assert.True(t, board.IsSolvable(), "seed %d:\n%s", seed, board)
	}
}

func TestCreateBoardFallsBackToCarving(t *testing.T) {
	for size := 2; size <= 21; size++ {
		board := createBoard(boardConfig{
			Size:            size,
			WallDensity:     1,
			RequireSolvable: true,
			MaxRetries:      3,
			Seed:            int64(size),
		})
		assert.True(t, board.IsSolvable(), "size %d:\n%s", size, board)
	}
}

func TestCarve(t *testing.T) {
	for size := 2; size <= 25; size++ {
		board := newBoard(size, int64(size))
		board.carve()

		assert.True(t, board.IsSolvable(), "size %d:\n%s", size, board)
		for row := 0; row < size; row += 2 {
			for col := 0; col < size; col += 2 {
				assert.True(t, board.IsReachable(board.Start(), Position{row, col}),
					"size %d: lattice cell (%d, %d) cut off", size, row, col)
			}
		}
	}
}

func TestCreateBoardIsDeterministic(t *testing.T) {
	config := boardConfig{Size: 15, WallDensity: 0.2, Seed: 1234}
	assert.Equal(t, createBoard(config).String(), createBoard(config).String())

	config.RequireSolvable = true
	config.MaxRetries = DefaultMaxRetries
	assert.Equal(t, createBoard(config).String(), createBoard(config).String())
}

func TestCreateBoardUnsolvableAllowedWithoutRequirement(t *testing.T) {
	board := createBoard(boardConfig{Size: 10, WallDensity: 1, Seed: 1})
	assert.Equal(t, 98, board.NumWalls())
	assert.False(t, board.IsSolvable())
}
