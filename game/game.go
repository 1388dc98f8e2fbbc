package game

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type GameConfig struct {
	Levels []Level

	// Seed for the whole run; each level draws its own seed from it. 0 picks
	// one from the clock.
	Seed int64

	// Attempts at a solvable random layout before falling back to carving
	MaxRetries int

	// Snapshot to load the first board from
	Snapshot *BoardSnapshot

	Director Director
	// Time between director moves
	DirectorInterval time.Duration

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Levels:           DefaultLevels,
		MaxRetries:       DefaultMaxRetries,
		Director:         nil,
		Snapshot:         nil,
		DirectorInterval: 150 * time.Millisecond,
	}
}

type Game struct {
	config GameConfig

	level int // 1-based
	board *Board
	state BoardState
	moves int

	seed int64
	rand *rand.Rand
}

func NewGame(config GameConfig) (*Game, error) {
	if err := validateLevels(config.Levels); err != nil {
		return nil, err
	}

	game := &Game{config: config}
	if err := game.start(config.Seed); err != nil {
		return nil, err
	}
	return game, nil
}

func (game *Game) Level() int {
	return game.level
}

func (game *Game) MaxLevel() int {
	return len(game.config.Levels)
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) State() BoardState {
	return game.state
}

func (game *Game) CanPlay() bool {
	return game.state == Ongoing
}

func (game *Game) Moves() int {
	return game.moves
}

func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) Config() GameConfig {
	return game.config
}

// Move steps the player in dir. Blocked moves, and any move once the game is
// won, change nothing and return false. Reaching the goal advances to the next
// level, or wins the game on the last one.
func (game *Game) Move(dir Direction) bool {
	if !game.CanPlay() {
		return false
	}
	if !game.board.Move(dir) {
		return false
	}
	game.moves++

	if game.board.AtGoal() {
		if game.level < game.MaxLevel() {
			game.advanceLevel()
		} else {
			game.win()
		}
	}
	return true
}

// Regenerate replaces the current level's grid with a freshly generated one
func (game *Game) Regenerate() {
	if !game.CanPlay() {
		return
	}
	log.WithField("game_level", game.level).Info("regenerating level")
	game.board = game.createBoard(game.level)
}

// Restart begins a new game from level 1, seeded from the previous run
func (game *Game) Restart() {
	if err := game.start(game.rand.Int63()); err != nil {
		// Only snapshot loading can fail, and restarts never load one
		panic(err)
	}
}

func (game *Game) start(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.seed = seed
	game.rand = rand.New(rand.NewSource(seed))
	game.state = Ongoing
	game.moves = 0

	if snapshot := game.config.Snapshot; snapshot != nil {
		game.config.Snapshot = nil

		board, err := snapshot.CreateBoard()
		if err != nil {
			return err
		}
		level := snapshot.Level
		if level < 1 || level > game.MaxLevel() {
			return fmt.Errorf("%w: level %d outside 1-%d", ErrInvalidSnapshot, level, game.MaxLevel())
		}
		if game.config.Levels[level-1].RequireSolvable && !board.IsSolvable() {
			return fmt.Errorf("%w: level %d board has no path from start to goal", ErrInvalidSnapshot, level)
		}
		// Boards saved at the end of a game have the player on the goal
		if board.AtGoal() {
			board.player = board.start
		}
		game.level = level
		game.board = board
	} else {
		game.level = 1
		game.board = game.createBoard(game.level)
	}

	log.WithFields(log.Fields{
		"seed":       seed,
		"game_level": game.level,
	}).Info("game started")

	if game.config.Director != nil {
		game.config.Director.Init(game)
	}
	return nil
}

func (game *Game) createBoard(level int) *Board {
	return createBoard(game.boardConfig(level, game.rand.Int63()))
}

func (game *Game) boardConfig(level int, seed int64) boardConfig {
	cfg := game.config.Levels[level-1]
	return boardConfig{
		Size:            cfg.Size,
		WallDensity:     cfg.WallDensity,
		RequireSolvable: cfg.RequireSolvable,
		MaxRetries:      game.config.MaxRetries,
		Seed:            seed,
	}
}

// BoardForLevel generates the board a run with this game's seed meets on
// level, provided no level before it was regenerated
func (game *Game) BoardForLevel(level int) (*Board, error) {
	if level < 1 || level > game.MaxLevel() {
		return nil, fmt.Errorf("%w: level %d outside 1-%d", ErrInvalidLevel, level, game.MaxLevel())
	}

	seeds := rand.New(rand.NewSource(game.seed))
	var seed int64
	for i := 0; i < level; i++ {
		seed = seeds.Int63()
	}
	return createBoard(game.boardConfig(level, seed)), nil
}

func (game *Game) advanceLevel() {
	game.level++
	game.board = game.createBoard(game.level)

	log.WithFields(log.Fields{
		"game_level": game.level,
		"size":       game.board.size,
		"walls":      game.board.NumWalls(),
	}).Info("level complete")
}

func (game *Game) win() {
	game.state = Won

	log.WithField("moves", game.moves).Info("all levels complete")

	if game.config.Director != nil {
		game.config.Director.End()
	}
	game.config.saveSnapshot(game)
}

func (config GameConfig) saveSnapshot(game *Game) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Error("cannot save snapshot")
			return
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			log.WithError(err).Error("cannot create snapshots directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.Errorf("%s is not a directory; cannot save snapshots to it.", config.SavedSnapshotsDir)
		return
	}

	filename := config.generateReplayFilename(game, time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	snapshot := game.board.Snapshot(game.level)
	if err := os.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		log.WithError(err).Error("cannot write snapshot")
		return
	}

	log.WithField("path", path).Info("saved snapshot")
}

func (config GameConfig) generateReplayFilename(game *Game, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch game.state {
	case Won:
		stateStr = "win"
	default:
		stateStr = fmt.Sprintf("level%d", game.level)
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
