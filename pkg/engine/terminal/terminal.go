package terminal

import (
	"fmt"
	"io"
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

// IsInteractive returns true when stdout is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Clear clears the screen and homes the cursor when w is a terminal.
func Clear(w io.Writer) {
	if !IsInteractive() {
		return
	}
	fmt.Fprint(w, "\033[H\033[2J")
}

// Scale returns how many columns to draw per map cell so that a map of the
// given width fits the terminal, capped at maxScale. Never less than 1.
func Scale(mapCols, maxScale int) int {
	if mapCols <= 0 {
		return 1
	}
	scale := GetWidth() / mapCols
	if scale > maxScale {
		scale = maxScale
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}
