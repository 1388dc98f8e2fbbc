package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	snapshot := BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)
	return board
}

func clearWalls(board *Board) {
	for _, cell := range board.Cells() {
		cell.setWall(false)
	}
}

// walkToGoal moves g along a shortest path on its current board
func walkToGoal(t *testing.T, g *Game) {
	t.Helper()
	board := g.Board()
	path, found := board.ShortestPath(board.Player(), board.Goal())
	require.True(t, found, "no path on board:\n%s", board)
	for _, dir := range path {
		require.True(t, g.Move(dir))
	}
}
