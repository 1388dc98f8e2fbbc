package ui

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/gomaze/game"
)

const (
	boardPixels  = 600
	headerHeight = 50
)

var moveKeys = map[pixelgl.Button]game.Direction{
	pixelgl.KeyW:     game.Up,
	pixelgl.KeyS:     game.Down,
	pixelgl.KeyA:     game.Left,
	pixelgl.KeyD:     game.Right,
	pixelgl.KeyUp:    game.Up,
	pixelgl.KeyDown:  game.Down,
	pixelgl.KeyLeft:  game.Left,
	pixelgl.KeyRight: game.Right,
}

// Run opens the game window and plays g until the window is closed. Must be
// called from pixelgl.Run.
func Run(g *game.Game) {
	cfg := pixelgl.WindowConfig{
		Title:  "gomaze",
		Bounds: pixel.R(0, 0, boardPixels, boardPixels+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.WithError(err).Fatal("could not create window")
	}

	topLeft := win.Bounds().Vertices()[1]
	boardTopLeft := topLeft.Sub(pixel.V(0, headerHeight))

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	levelText := text.New(pixel.ZV, basicAtlas)
	victoryText := text.New(pixel.ZV, basicAtlas)

	director := g.Config().Director
	directorPaused := false
	var directorTick <-chan time.Time
	if director != nil {
		ticker := time.NewTicker(g.Config().DirectorInterval)
		defer ticker.Stop()
		directorTick = ticker.C
	}

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.Gainsboro)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		drawBoard(win, g.Board(), boardTopLeft)

		levelText.Clear()
		levelText.Color = colornames.Black
		info := fmt.Sprintf("Level: %d / %d", g.Level(), g.MaxLevel())
		levelText.Dot = pixel.V(-levelText.BoundsOf(info).W()/2, 0)
		fmt.Fprint(levelText, info)
		levelText.Draw(win, pixel.IM.Scaled(pixel.ZV, 2).Moved(topLeft.Add(pixel.V(boardPixels/2, -32))))

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
		}

		if !g.CanPlay() {
			victoryText.Clear()
			victoryText.Color = colornames.Red
			message := "Congratulations! You completed all levels!"
			victoryText.Dot = pixel.V(-victoryText.BoundsOf(message).W()/2, 0)
			fmt.Fprint(victoryText, message)
			victoryText.Draw(win, pixel.IM.Scaled(pixel.ZV, 2).Moved(pixel.V(boardPixels/2, boardPixels/2)))

			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				g.Restart()
			}
			continue
		}

		if director != nil {
			// Pause with Space
			if win.JustPressed(pixelgl.KeySpace) {
				directorPaused = !directorPaused
			}

			select {
			case <-directorTick:
				if !directorPaused {
					director.Act()
				}
			default:
			}
		}

		if win.JustPressed(pixelgl.KeyR) {
			g.Regenerate()
		}

		for key, dir := range moveKeys {
			if win.JustPressed(key) || win.Repeated(key) {
				g.Move(dir)
			}
		}
	}
}

func drawBoard(win *pixelgl.Window, board *game.Board, topLeft pixel.Vec) {
	cellWidth := float64(boardPixels) / float64(board.Size())

	cellRect := func(pos game.Position) (pixel.Vec, pixel.Vec) {
		start := topLeft.Add(pixel.V(
			cellWidth*float64(pos.Col),
			-cellWidth*float64(pos.Row+1),
		))
		return start, start.Add(pixel.V(cellWidth, cellWidth))
	}

	imd := imdraw.New(nil)

	for _, cell := range board.Cells() {
		start, end := cellRect(cell.Position())

		if cell.IsWall() {
			imd.Color = colornames.Black
		} else {
			imd.Color = colornames.White
		}
		imd.Push(start, end)
		imd.Rectangle(0) // 0 = filled

		imd.Color = colornames.Gray
		imd.Push(start, end)
		imd.Rectangle(1)
	}

	imd.Color = colornames.Green
	imd.Push(cellRect(board.Goal()))
	imd.Rectangle(0)

	imd.Color = colornames.Blue
	imd.Push(cellRect(board.Player()))
	imd.Rectangle(0)

	imd.Draw(win)
}
