package pathfind

import (
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/gomaze/game"
)

// Director walks a shortest path to the goal, replanning whenever the board
// or the player's position changes under it
type Director struct {
	game *game.Game

	board *game.Board
	// Cell the remaining path starts from
	from  game.Position
	path  []game.Direction
	ended bool
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.board = nil
	director.path = nil
	director.ended = false
}

func (director *Director) Act() {
	if director.ended || director.game == nil || !director.game.CanPlay() {
		return
	}

	board := director.game.Board()
	if board != director.board || board.Player() != director.from || len(director.path) == 0 {
		path, found := board.ShortestPath(board.Player(), board.Goal())
		if !found {
			log.WithField("game_level", director.game.Level()).Info("director found no path; regenerating")
			director.game.Regenerate()
			director.board = nil
			return
		}

		director.board = board
		director.from = board.Player()
		director.path = path
		log.WithFields(log.Fields{
			"game_level": director.game.Level(),
			"length":     len(path),
		}).Debug("director planned path")
	}

	dir := director.path[0]
	director.path = director.path[1:]
	if !director.game.Move(dir) {
		director.board = nil
		return
	}
	director.from = director.game.Board().Player()
}

func (director *Director) End() {
	director.ended = true
}
