// Package tui is the colour terminal frontend.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"lifeguard/pkg/engine/input"
	"lifeguard/pkg/engine/terminal"
	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/renderer"
	"lifeguard/pkg/game/text"
)

// maxCellWidth caps how many columns one map cell may take.
const maxCellWidth = 3

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// readInput returns the next raw code or typed command.
	readInput func() (string, error)

	styles map[renderer.TextStyle]color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, readInput: input.GetInputWithArrows}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleWall:    {color.FgGray},
		renderer.StyleFloor:   {color.FgGray},
		renderer.StyleWater:   {color.FgCyan},
		renderer.StyleExit:    {color.FgGreen},
		renderer.StyleZone:    {color.FgMagenta, color.OpBold},
		renderer.StyleLocked:  {color.FgYellow, color.OpBold},
		renderer.StyleUsed:    {color.FgYellow},
		renderer.StylePlayer:  {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleSubtle:  {color.FgGray, color.OpBold},
		renderer.StyleAction:  {color.FgMagenta},
		renderer.StyleDenied:  {color.FgRed, color.OpBold},
		renderer.StyleSuccess: {color.FgGreen, color.OpBold},
	}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(msg string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(msg)
	}
	return msg
}

// Run reads one command per frame and applies it as a single-intent tick.
func (t *TUIRenderer) Run(s *gameplay.Session) error {
	for !s.Quit() {
		t.RenderFrame(s.Snapshot())

		line, err := t.readInput()
		if errors.Is(err, input.ErrInterrupted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		s.Tick([]input.Intent{input.ParseCommand(line)})
	}
	return nil
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(snap gameplay.Snapshot) {
	terminal.Clear(t.out)

	fmt.Fprintln(t.out, t.StyleText(strings.ToUpper(snap.SceneName), renderer.StyleAction))
	fmt.Fprintln(t.out)

	t.printMap(snap)
	fmt.Fprintln(t.out)

	for _, line := range renderer.StatusLines(snap) {
		fmt.Fprintln(t.out, t.StyleText(line, renderer.StyleSubtle))
	}

	if snap.Procedure != nil {
		t.printPanel(text.T("PANEL_PROCEDURE"), renderer.ProcedureLines(snap.Procedure))
	}
	t.printPanel(text.T("PANEL_MESSAGES"), snap.Messages)

	fmt.Fprintln(t.out, t.StyleText(renderer.HelpLine(snap), renderer.StyleSubtle))
	fmt.Fprint(t.out, "\n> ")
}

// printMap renders the scene, widening cells when the terminal has room.
func (t *TUIRenderer) printMap(snap gameplay.Snapshot) {
	cols := 0
	for _, row := range snap.Terrain {
		if len(row) > cols {
			cols = len(row)
		}
	}
	scale := terminal.Scale(cols, maxCellWidth)

	for row := range snap.Terrain {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			g := renderer.CellGlyph(snap, row, col)
			cell := string(g.Char) + strings.Repeat(" ", scale-1)
			line.WriteString(t.StyleText(cell, g.Style))
		}
		fmt.Fprintln(t.out, line.String())
	}
}

// printPanel renders a titled pane spanning the terminal width
func (t *TUIRenderer) printPanel(title string, lines []string) {
	width := terminal.GetWidth()

	label := " " + title + " "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen), renderer.StyleSubtle))

	if len(lines) == 0 {
		fmt.Fprintln(t.out, t.StyleText("  (no messages)", renderer.StyleSubtle))
	} else {
		for _, msg := range lines {
			for _, part := range strings.Split(msg, "\n") {
				fmt.Fprintf(t.out, "  %s\n", part)
			}
		}
	}

	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}
