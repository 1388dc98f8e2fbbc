package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDirector struct {
	inits, acts, ends int
}

func (director *countingDirector) Init(*Game) { director.inits++ }
func (director *countingDirector) Act()       { director.acts++ }
func (director *countingDirector) End()       { director.ends++ }

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	config := NewGameConfig()
	config.Seed = seed
	g, err := NewGame(config)
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 42)

	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 3, g.MaxLevel())
	assert.Equal(t, Ongoing, g.State())
	assert.Equal(t, int64(42), g.Seed())
	assert.Equal(t, 10, g.Board().Size())
	assert.Equal(t, g.Board().Start(), g.Board().Player())
	assert.Equal(t, 0, g.Moves())
}

func TestNewGameRejectsInvalidLevels(t *testing.T) {
	cases := []struct {
		name   string
		levels []Level
	}{
		{"none", nil},
		{"too_small", []Level{{Size: 1}}},
		{"negative_density", []Level{{Size: 5, WallDensity: -0.1}}},
		{"density_above_one", []Level{{Size: 5}, {Size: 5, WallDensity: 1.5}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			config := NewGameConfig()
			config.Levels = c.levels
			_, err := NewGame(config)
			assert.ErrorIs(t, err, ErrInvalidLevel)
		})
	}
}

func TestGameLevelProgression(t *testing.T) {
	g := newTestGame(t, 7)

	for level := 1; level < g.MaxLevel(); level++ {
		size := g.Board().Size()
		clearWalls(g.Board())
		walkToGoal(t, g)

		assert.Equal(t, level+1, g.Level())
		assert.Equal(t, size+5, g.Board().Size())
		assert.Equal(t, g.Board().Start(), g.Board().Player())
		assert.Equal(t, Ongoing, g.State())
	}
}

func TestGameFinalLevelIsSolvable(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := newTestGame(t, seed)
		for g.Level() < g.MaxLevel() {
			clearWalls(g.Board())
			walkToGoal(t, g)
		}
		assert.True(t, g.Board().IsSolvable(), "seed %d:\n%s", seed, g.Board())
	}
}

func TestGameVictory(t *testing.T) {
	director := &countingDirector{}
	config := NewGameConfig()
	config.Seed = 3
	config.Director = director
	g, err := NewGame(config)
	require.NoError(t, err)
	assert.Equal(t, 1, director.inits)

	for g.CanPlay() {
		clearWalls(g.Board())
		walkToGoal(t, g)
	}

	assert.Equal(t, Won, g.State())
	assert.Equal(t, g.MaxLevel(), g.Level())
	assert.Equal(t, 1, director.ends)

	moves := g.Moves()
	player := g.Board().Player()
	for _, dir := range Directions {
		assert.False(t, g.Move(dir))
	}
	assert.Equal(t, moves, g.Moves())
	assert.Equal(t, player, g.Board().Player())

	board := g.Board()
	g.Regenerate()
	assert.Same(t, board, g.Board())

	g.Restart()
	assert.Equal(t, Ongoing, g.State())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 0, g.Moves())
	assert.Equal(t, 2, director.inits)
}

func TestGameBlockedMoveChangesNothing(t *testing.T) {
	g := newTestGame(t, 5)
	assert.False(t, g.Move(Up))
	assert.False(t, g.Move(Left))
	assert.Equal(t, 0, g.Moves())
	assert.Equal(t, g.Board().Start(), g.Board().Player())
}

func TestGameRegenerate(t *testing.T) {
	g := newTestGame(t, 11)
	before := g.Board()

	g.Regenerate()
	assert.NotSame(t, before, g.Board())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, before.Size(), g.Board().Size())
	assert.NotEqual(t, before.Seed(), g.Board().Seed())
}

func TestGameBoardForLevel(t *testing.T) {
	g := newTestGame(t, 2024)

	var expected []string
	for level := 1; level <= g.MaxLevel(); level++ {
		board, err := g.BoardForLevel(level)
		require.NoError(t, err)
		expected = append(expected, board.String())
	}

	for level := 1; level <= g.MaxLevel(); level++ {
		assert.Equal(t, expected[level-1], g.Board().String(), "level %d", level)
		if level < g.MaxLevel() {
			clearWalls(g.Board())
			walkToGoal(t, g)
		}
	}

	_, err := g.BoardForLevel(0)
	assert.ErrorIs(t, err, ErrInvalidLevel)
	_, err = g.BoardForLevel(g.MaxLevel() + 1)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestGameFromSnapshot(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 1
	config.Snapshot = &BoardSnapshot{
		Level:           3,
		SerializedBoard: "..#\n#..\n#.P",
	}

	g, err := NewGame(config)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Level())
	assert.Equal(t, 3, g.Board().Size())
	assert.Equal(t, g.Board().Start(), g.Board().Player(), "player saved on the goal starts over")

	walkToGoal(t, g)
	assert.Equal(t, Won, g.State())

	g.Restart()
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, 10, g.Board().Size())
}

func TestGameFromSnapshotRejected(t *testing.T) {
	cases := []struct {
		name     string
		snapshot BoardSnapshot
	}{
		{"level_too_high", BoardSnapshot{Level: 4, SerializedBoard: "..\n.."}},
		{"level_zero", BoardSnapshot{Level: 0, SerializedBoard: "..\n.."}},
		{"unsolvable_final_level", BoardSnapshot{Level: 3, SerializedBoard: "..#\n###\n#.."}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			config := NewGameConfig()
			snapshot := c.snapshot
			config.Snapshot = &snapshot

			_, err := NewGame(config)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestGameFromSnapshotUnsolvableEarlyLevel(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 1
	config.Snapshot = &BoardSnapshot{Level: 1, SerializedBoard: "..#\n###\n#.."}

	g, err := NewGame(config)
	require.NoError(t, err)
	assert.False(t, g.Board().IsSolvable())
}

func TestGameLogFieldsAvoidReservedKeys(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	g := newTestGame(t, 13)
	clearWalls(g.Board())
	walkToGoal(t, g)
	g.Regenerate()

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.NotContains(t, entry.Data, "level", "entry %q", entry.Message)
	}
	assert.Equal(t, 2, hook.LastEntry().Data["game_level"])
}

func TestGameSavesSnapshotOnWin(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	config := NewGameConfig()
	config.Seed = 8
	config.SavedSnapshotsDir = dir
	config.Levels = []Level{{Size: 4}}

	g, err := NewGame(config)
	require.NoError(t, err)
	walkToGoal(t, g)
	require.Equal(t, Won, g.State())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^\d{8}_\d{6}_win\.yaml$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	snapshot, err := LoadSnapshot(string(data))
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Level)
	assert.Equal(t, "....\n....\n....\n...P", snapshot.SerializedBoard)
}

func TestGenerateReplayFilename(t *testing.T) {
	g := newTestGame(t, 1)
	at := time.Date(2020, 6, 18, 13, 4, 5, 0, time.UTC)

	assert.Equal(t, "20200618_130405_level1.yaml", g.config.generateReplayFilename(g, at))
	g.state = Won
	assert.Equal(t, "20200618_130405_win.yaml", g.config.generateReplayFilename(g, at))
}
