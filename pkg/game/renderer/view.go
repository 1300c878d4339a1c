package renderer

import (
	"fmt"
	"strings"

	"bluemanor/pkg/engine/terminal"
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/board"
	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/state"
	"bluemanor/pkg/game/tiles"
)

// Map glyphs
const (
	PlayerIcon   = "@"
	IconEmpty    = "·" // unmaterialized cell
	IconFallback = "?"
)

// iconByImageID maps tile asset keys to map glyphs. Tiles without an entry
// fall back to a colored placeholder letter, so a missing asset never
// breaks rendering.
var iconByImageID = map[string]string{
	"entrance":     "⌂",
	"antechamber":  "★",
	"vault":        "$",
	"hallway":      "░",
	"trading_post": "¤",
}

// Render prints the full game snapshot: status bar, board, last message,
// and the selection panel when a draw is pending.
func Render(g *state.Game) {
	Clear()

	fmt.Println(ColorRoom.Sprintf("Blue Manor"))
	printStatusBar(g)
	fmt.Println()
	printBoard(g)
	fmt.Println()

	if cur := g.CurrentCell(); cur.Occupied() {
		PrintString("You are in: ROOM{%s}\n", cur.Tile.Name)
	}
	printMessage(g)

	if g.Selecting() {
		printSelection(g)
	} else if g.Running {
		fmt.Println(ColorSubtle.Sprintf("arrows/wasd move · e interact · q quit"))
	}
}

// printStatusBar prints the consumable counters and held upgrades.
func printStatusBar(g *state.Game) {
	var parts []string
	for _, r := range inventory.AllResources() {
		parts = append(parts, fmt.Sprintf("%s %d", r, g.Inventory.Count(r)))
	}
	parts = append(parts, fmt.Sprintf("rooms %d", g.VisitedCount()))
	fmt.Println(strings.Join(parts, "  "))

	var held []string
	for _, u := range inventory.AllUpgrades() {
		if g.Inventory.Has(u) {
			held = append(held, u.String())
		}
	}
	if len(held) > 0 {
		PrintString("Carrying: ITEM{%s}\n", strings.Join(held, ", "))
	}
}

// printBoard draws the grid with door-lock connectors between cells.
func printBoard(g *state.Game) {
	b := g.Board
	for r := 0; r < b.Rows; r++ {
		var tileLine strings.Builder
		var southLine strings.Builder
		for c := 0; c < b.Cols; c++ {
			cell := b.At(r, c)
			tileLine.WriteString(cellGlyph(g, cell))
			if c < b.Cols-1 {
				tileLine.WriteString(lockGlyph(cell.LockAt(world.East), true))
			}
			southLine.WriteString(lockGlyph(cell.LockAt(world.South), false))
			if c < b.Cols-1 {
				southLine.WriteString(" ")
			}
		}
		fmt.Println(tileLine.String())
		if r < b.Rows-1 {
			fmt.Println(southLine.String())
		}
	}
}

// cellGlyph picks the glyph for one cell: the player, an unopened feature,
// the tile's icon, or the unexplored dot.
func cellGlyph(g *state.Game, cell *board.Cell) string {
	if cell.Row == g.PlayerRow && cell.Col == g.PlayerCol {
		return ColorPlayer.Sprintf("%s", PlayerIcon)
	}
	if !cell.Occupied() {
		return ColorSubtle.Sprintf("%s", IconEmpty)
	}
	if cell.HasUnopenedInteractable() {
		return ColorItem.Sprintf("%s", cell.Interactable.Kind.Icon())
	}
	return colorFor(cell.Tile.Color).Sprintf("%s", tileIcon(cell.Tile))
}

// tileIcon returns the asset glyph for a tile, or the colored placeholder
// (its first letter) when no asset is registered for the image id.
func tileIcon(t *tiles.Tile) string {
	if icon, ok := iconByImageID[t.ImageID]; ok {
		return icon
	}
	if t.Name == "" {
		return IconFallback
	}
	return string([]rune(t.Name)[0])
}

// lockGlyph draws the connector between two adjacent cells.
func lockGlyph(l board.Lock, horizontal bool) string {
	switch l {
	case board.LockOpen:
		if horizontal {
			return ColorSubtle.Sprintf("─")
		}
		return ColorSubtle.Sprintf("│")
	case board.LockWeak:
		if horizontal {
			return ColorAction.Sprintf("┄")
		}
		return ColorAction.Sprintf("┆")
	case board.LockStrong:
		if horizontal {
			return ColorDenied.Sprintf("━")
		}
		return ColorDenied.Sprintf("┃")
	default:
		return " "
	}
}

// printMessage prints the last-action message, fitted to the terminal.
func printMessage(g *state.Game) {
	if g.Message == "" {
		return
	}
	fmt.Println(terminal.Fit(ApplyMarkup("%s", g.Message), terminal.GetWidth()))
}

// printSelection lists the drawn candidates with the cursor marker.
func printSelection(g *state.Game) {
	sel := g.Selection
	fmt.Println()
	fmt.Println("Choose a room to build:")
	for i, t := range sel.Candidates {
		marker := "  "
		if i == sel.Cursor {
			marker = ColorPlayer.Sprintf("> ")
		}
		line := fmt.Sprintf("%s (doors %s", t.Name, portsString(t.Ports))
		if t.Cost > 0 {
			line += fmt.Sprintf(", %d gems", t.Cost)
		}
		line += ")"
		if i == sel.Cursor {
			fmt.Printf("%s%s\n", marker, ColorRoom.Sprintf("%s", line))
		} else {
			fmt.Printf("%s%s\n", marker, line)
		}
	}
	fmt.Println(ColorSubtle.Sprintf("←/→ cursor · enter build · r redraw (1 die)"))
}

// portsString renders a tile's base door layout as compass letters.
func portsString(p tiles.Ports) string {
	letters := [...]string{"N", "E", "S", "W"}
	var out []string
	for _, d := range world.AllDirections() {
		if p.Has(d) {
			out = append(out, letters[d])
		}
	}
	return strings.Join(out, "")
}
