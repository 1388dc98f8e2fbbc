package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrInvalidLevel = errors.New("invalid level")

type Level struct {
	// Cells per side of the square grid
	Size int `yaml:"size"`
	// Probability that any cell other than start and goal is a wall
	WallDensity float64 `yaml:"wall_density"`
	// Regenerate the grid until the goal can be reached from start
	RequireSolvable bool `yaml:"require_solvable"`
}

// DefaultLevels grows the grid by 5 cells and the wall density by 0.1 per
// level; only the last level is guaranteed solvable.
var DefaultLevels = []Level{
	{Size: 10, WallDensity: 0.1},
	{Size: 15, WallDensity: 0.2},
	{Size: 20, WallDensity: 0.3, RequireSolvable: true},
}

func (level Level) Validate() error {
	if level.Size < 2 {
		return fmt.Errorf("%w: size %d is smaller than 2", ErrInvalidLevel, level.Size)
	}
	if level.WallDensity < 0 || level.WallDensity > 1 {
		return fmt.Errorf("%w: wall density %v is outside [0, 1]", ErrInvalidLevel, level.WallDensity)
	}
	return nil
}

func validateLevels(levels []Level) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: no levels defined", ErrInvalidLevel)
	}
	for i, level := range levels {
		if err := level.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

type levelTable struct {
	Levels []Level `yaml:"levels"`
}

func LoadLevels(in []byte) ([]Level, error) {
	var table levelTable
	if err := yaml.UnmarshalStrict(in, &table); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if err := validateLevels(table.Levels); err != nil {
		return nil, err
	}
	return table.Levels, nil
}

func LoadLevelsFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	return LoadLevels(data)
}
