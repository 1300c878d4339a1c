// Package renderer is the terminal presentation boundary. It reads a game
// state snapshot between commands and prints it; the core never depends on
// it. Messages produced by the core carry TAG{...} markup that is expanded
// to colors (and translations) here.
package renderer

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorRoom   color.Style
	ColorItem   color.Style
	ColorAction color.Style
	ColorDenied color.Style
	ColorSubtle color.Style
	ColorPlayer color.Style

	colorByTag map[string]color.Style

	regexpMarkup *regexp.Regexp
)

// InitColors initializes the color styles
func InitColors() {
	ColorRoom = color.Style{color.FgBlue, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
	ColorPlayer = color.Style{color.FgYellow, color.OpBold}

	// Tile color tags map onto terminal styles; unknown tags fall back to
	// the subtle style in colorFor.
	colorByTag = map[string]color.Style{
		"blue":   {color.FgBlue},
		"green":  {color.FgGreen},
		"purple": {color.FgMagenta},
		"orange": {color.FgYellow},
	}

	regexpMarkup = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)
}

// dynamicGet is used for runtime translation key lookups. A function
// variable avoids go vet's non-constant format string check, since markup
// operands are looked up dynamically.
var dynamicGet = gotext.Get

// ApplyMarkup formats a string and expands TAG{...} markup into colored
// (and, for GT, translated) text.
func ApplyMarkup(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	for _, match := range regexpMarkup.FindAllStringSubmatch(ret, -1) {
		tag := match[1]
		operand := match[2]

		var val string
		switch tag {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprintf("%s", operand)
		case "ROOM":
			val = ColorRoom.Sprintf("%s", operand)
		case "ACTION":
			val = ColorAction.Sprintf("%s", operand)
		case "DENIED":
			val = ColorDenied.Sprintf("%s", operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string with markup expanded.
func PrintString(msg string, a ...any) {
	fmt.Print(ApplyMarkup(msg, a...))
}

// Clear clears the terminal screen
func Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// colorFor returns the terminal style for a tile color tag.
func colorFor(tag string) color.Style {
	if s, ok := colorByTag[tag]; ok {
		return s
	}
	return ColorSubtle
}
