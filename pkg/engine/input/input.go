package input

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
	}

	// Unknown escape sequence - discard it
	return ""
}

// ReadCommand reads one command keypress without waiting for Enter.
// Arrow keys map to "arrow_up" etc., Enter maps to "enter", and printable
// keys map to their lowercase character.
func ReadCommand() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	for {
		b, err := readByte()
		if err != nil {
			log.Fatalf("Cannot read stdin: %v", err)
			return ""
		}

		if arrowKey := tryReadArrowKey(b); arrowKey != "" {
			return arrowKey
		}

		// Ctrl+C
		if b == 3 {
			term.Restore(int(os.Stdin.Fd()), oldState)
			fmt.Println()
			os.Exit(0)
		}

		if b == '\n' || b == '\r' {
			return "enter"
		}

		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if b >= 32 && b < 127 {
			return string(b)
		}
	}
}
