package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gomaze/game"
)

var generateLevel int
var generateSolution bool
var generateYAML bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated level without opening a window",
	Long: `Generate the board for one level and print it.

Walls are #, open cells ., the player P and the goal G. With --solution a
shortest path is marked with *; with --yaml the board is printed as a snapshot
that can be played with --load.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		return generate(cmd.OutOrStdout(), gameConfig, generateLevel, generateSolution, generateYAML)
	},
}

func generate(out io.Writer, config game.GameConfig, level int, solution, asYAML bool) error {
	if level < 1 || level > len(config.Levels) {
		return fmt.Errorf("level %d outside 1-%d", level, len(config.Levels))
	}
	config.Director = nil
	config.Snapshot = nil

	g, err := game.NewGame(config)
	if err != nil {
		return err
	}
	board, err := g.BoardForLevel(level)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"game_level": level,
		"seed":       board.Seed(),
		"walls":      board.NumWalls(),
		"solvable":   board.IsSolvable(),
	}).Debug("generated board")

	if asYAML {
		_, err := fmt.Fprint(out, board.Snapshot(level).Serialize())
		return err
	}

	rendered := []byte(board.String())
	if solution {
		path, found := board.ShortestPath(board.Start(), board.Goal())
		if !found {
			log.WithField("game_level", level).Warn("no path from start to goal")
		}
		pos := board.Start()
		for _, dir := range path {
			pos = pos.Step(dir)
			if pos != board.Goal() {
				// rows are size cells plus a newline
				rendered[pos.Row*(board.Size()+1)+pos.Col] = '*'
			}
		}
	}

	_, err = fmt.Fprintln(out, string(rendered))
	return err
}

func init() {
	generateCmd.Flags().IntVarP(&generateLevel, "level", "l", 1, "Level to generate")
	generateCmd.Flags().BoolVar(&generateSolution, "solution", false, "Mark a shortest path from start to goal")
	generateCmd.Flags().BoolVar(&generateYAML, "yaml", false, "Print a YAML snapshot instead of ASCII")
}
