package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// Fit truncates s to at most width runes, appending an ellipsis when it
// had to cut. ANSI escape sequences are not counted against the width.
func Fit(s string, width int) string {
	if width <= 1 {
		return s
	}
	var out []rune
	visible := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			out = append(out, r)
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		if r == 0x1b {
			inEscape = true
			out = append(out, r)
			continue
		}
		if visible >= width-1 {
			return string(out) + "…"
		}
		out = append(out, r)
		visible++
	}
	return string(out)
}
