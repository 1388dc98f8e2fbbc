package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gomaze/director/pathfind"
	"github.com/they4kman/gomaze/director/random"
	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/ui"
)

var gameConfig = game.NewGameConfig()
var levelsPath string
var snapshotPath string
var verbose bool
var directorName = directorNone

var rootCmd = &cobra.Command{
	Use:   "gomaze",
	Short: "Play a maze game, by hand or computer-driven",
	Long: `gomaze is a grid maze game: walk from the top-left corner to the
goal in the bottom-right, through levels of growing size and wall density.

Run with no arguments to play manually (WASD or arrow keys, R for a new grid)
	gomaze

Use the director flag to make the computer play for you
	gomaze --director pathfind
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		gameConfig.Director = newDirector(directorName)
		if gameConfig.Director != nil && gameConfig.DirectorInterval <= 0 {
			return fmt.Errorf("director interval must be positive, got %v", gameConfig.DirectorInterval)
		}

		g, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}

		pixelgl.Run(func() {
			ui.Run(g)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig applies the file-based flags onto gameConfig
func loadConfig() error {
	if levelsPath != "" {
		levels, err := game.LoadLevelsFile(levelsPath)
		if err != nil {
			return err
		}
		gameConfig.Levels = levels
		log.WithFields(log.Fields{
			"path":   levelsPath,
			"levels": len(levels),
		}).Debug("loaded level table")
	}

	if snapshotPath != "" {
		snapshot, err := game.LoadSnapshotFile(snapshotPath)
		if err != nil {
			return err
		}
		gameConfig.Snapshot = snapshot
	}
	return nil
}

const (
	directorNone     = "none"
	directorRandom   = "random"
	directorPathfind = "pathfind"
)

var directors = map[string]func() game.Director{
	directorNone:     func() game.Director { return nil },
	directorRandom:   func() game.Director { return &random.Director{} },
	directorPathfind: func() game.Director { return &pathfind.Director{} },
}

func newDirector(name string) game.Director {
	return directors[name]()
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; isValid {
		*dirVal = directorValue(value)
		return nil
	} else {
		return fmt.Errorf("invalid director %q (choose from %s)", value, strings.Join(directorNames(), ", "))
	}
}

func (dirVal *directorValue) Type() string {
	return "director"
}

func directorNames() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Random seed; 0 picks one from the clock")
	rootCmd.PersistentFlags().StringVar(&levelsPath, "levels", "", "YAML file with the level table (default: 3 built-in levels)")
	rootCmd.PersistentFlags().IntVar(&gameConfig.MaxRetries, "retries", game.DefaultMaxRetries, `Attempts at a solvable random layout on levels that require one,
before a carved maze is used instead`)

	rootCmd.Flags().Var(newDirectorValue(directorNone, &directorName), "director", `Computer player:
none: play with the keyboard
random: wander in random open directions
pathfind: walk the shortest path to the goal`)
	rootCmd.Flags().DurationVar(&gameConfig.DirectorInterval, "director-interval", gameConfig.DirectorInterval, "Time between director moves")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save the final board of each game to")
	rootCmd.Flags().StringVar(&snapshotPath, "load", "", "Snapshot file to load the first board from")

	rootCmd.AddCommand(generateCmd)
}
