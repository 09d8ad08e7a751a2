package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode.
var ErrInterrupted = errors.New("input interrupted")

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

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

// GetInputWithArrows reads input with support for arrow keys.
// Arrow keys return immediately without needing Enter; typed commands are
// echoed and returned on Enter. Falls back to line input when stdin is not a terminal.
func GetInputWithArrows() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetInput()
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	if arrow := tryReadArrowKey(b1); arrow != "" {
		return arrow, nil
	}

	switch b1 {
	case 3: // Ctrl+C
		return "", ErrInterrupted
	case '\n', '\r':
		return "enter", nil
	}

	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		switch {
		case b == 0x1b:
			// Arrow keys pressed mid-command are discarded
			tryReadArrowKey(b)
		case b == 127 || b == 8:
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Print("\r\n")
			return string(input), nil
		case b == 3:
			return "", ErrInterrupted
		case b >= 32 && b < 127:
			input = append(input, b)
			fmt.Print(string(b))
		}
	}

	return string(input), nil
}
