package random

import (
	"math/rand"

	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/util/collections"
)

var opposites = map[game.Direction]game.Direction{
	game.Up:    game.Down,
	game.Down:  game.Up,
	game.Left:  game.Right,
	game.Right: game.Left,
}

// Director wanders: each step goes in a random open direction, turning back
// only at dead ends
type Director struct {
	game *game.Game
	rand *rand.Rand

	lastMove *game.Direction
	ended    bool
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.rand = rand.New(rand.NewSource(g.Seed()))
	director.lastMove = nil
	director.ended = false
}

func (director *Director) Act() {
	if director.ended || director.game == nil || !director.game.CanPlay() {
		return
	}

	board := director.game.Board()
	level := director.game.Level()

	options := make(collections.Set[game.Direction])
	for _, dir := range game.Directions {
		if board.IsOpen(board.Player().Step(dir)) {
			options.Add(dir)
		}
	}
	if director.lastMove != nil && options.Len() > 1 {
		options.Remove(opposites[*director.lastMove])
	}
	if options.Len() == 0 {
		director.game.Regenerate()
		director.lastMove = nil
		return
	}

	// Sample in Directions order, as map iteration order is random per process
	candidates := make([]game.Direction, 0, options.Len())
	for _, dir := range game.Directions {
		if options.Contains(dir) {
			candidates = append(candidates, dir)
		}
	}
	dir := candidates[director.rand.Intn(len(candidates))]

	director.game.Move(dir)
	if director.game.Level() != level {
		director.lastMove = nil
	} else {
		director.lastMove = &dir
	}
}

func (director *Director) End() {
	director.ended = true
}
