package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"bluemanor/pkg/engine/input"
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/board"
	"bluemanor/pkg/game/gameplay"
	"bluemanor/pkg/game/renderer"
	"bluemanor/pkg/game/state"
	"bluemanor/pkg/game/tiles"
)

func initGettext() {
	gotext.Configure("mo", "en_GB", "default")
}

// buildGame loads the tile catalog and assembles a fresh run.
func buildGame(seed int64, rows, cols int) *state.Game {
	catalog, err := tiles.Default()
	if err != nil {
		log.Fatalf("Cannot load tile catalog: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	g := state.New(catalog, rows, cols, rng)
	g.SetMessagef("Welcome to the manor. Reach the ROOM{Antechamber} before your steps run out.")
	return g
}

// processInput dispatches one command keypress. The key set depends on the
// mode: cursor movement and confirm/redraw while a draw is pending, compass
// movement and interaction otherwise.
func processInput(g *state.Game, in string) {
	if in == "q" {
		g.Running = false
		g.SetMessagef("You abandon the expedition.")
		return
	}

	if g.Selecting() {
		switch in {
		case "arrow_left", "a", "h":
			gameplay.MoveSelectionCursor(g, -1)
		case "arrow_right", "d", "l":
			gameplay.MoveSelectionCursor(g, 1)
		case "enter", "e":
			gameplay.ConfirmSelection(g)
		case "r":
			gameplay.RedrawSelection(g)
		default:
			g.SetMessagef("DENIED{Unknown command} while choosing a room.")
		}
		return
	}

	switch in {
	case "north", "n", "w", "k", "arrow_up":
		gameplay.Move(g, world.North)
	case "south", "s", "j", "arrow_down":
		gameplay.Move(g, world.South)
	case "east", "d", "l", "arrow_right":
		gameplay.Move(g, world.East)
	case "west", "a", "h", "arrow_left":
		gameplay.Move(g, world.West)
	case "e", "enter":
		gameplay.InteractCurrentCell(g)
	default:
		g.SetMessagef("DENIED{Unknown command}.")
	}
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the run")
	rows := flag.Int("rows", board.DefaultRows, "board rows")
	cols := flag.Int("cols", board.DefaultCols, "board columns")
	flag.Parse()

	initGettext()
	renderer.InitColors()

	g := buildGame(*seed, *rows, *cols)

	for g.Running {
		mainLoop(g)
	}

	renderer.Render(g)
	if g.Won {
		fmt.Println(renderer.ColorItem.Sprintf("You won!"))
	} else {
		fmt.Println(renderer.ColorDenied.Sprintf("The run is over."))
	}
}

func mainLoop(g *state.Game) {
	renderer.Render(g)

	fmt.Printf("\n> ")

	processInput(g, input.ReadCommand())
	gameplay.CheckGameOver(g)
}
