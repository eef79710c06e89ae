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
// Returns the arrow direction code if successful, empty string otherwise.
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
		return ""
	}

	// A bare escape (no sequence byte followed) means the Escape key.
	return "escape"
}

// ReadKey reads a single keypress from stdin in raw mode and returns its
// raw code: "arrow_up", "tab", "escape", or the lowercase character itself.
// It returns without waiting for Enter, which is what a tile game wants.
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		return ""
	}

	if arrowKey := tryReadArrowKey(b); arrowKey != "" {
		return arrowKey
	}

	switch {
	case b == 3: // Ctrl+C
		term.Restore(int(os.Stdin.Fd()), oldState)
		fmt.Println()
		os.Exit(0)
	case b == '\t':
		return "tab"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 'A' && b <= 'Z':
		return string(b - 'A' + 'a')
	case b >= 32 && b < 127:
		return string(b)
	}
	return ""
}

// ReadIntent reads one keypress and maps it through the binding layers.
func ReadIntent() Intent {
	raw := RawInput{Device: DeviceTerminal, Code: ReadKey()}
	return MapToIntent(NewDebouncedInput(raw))
}
