package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/renderer"
	"lifeguard/pkg/game/text"
)

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := e.snapshot

	ebitenutil.DebugPrintAt(screen, strings.ToUpper(snap.SceneName), margin, margin/2)

	mapBottom := e.drawMap(screen, snap)

	y := mapBottom + margin
	for _, line := range renderer.StatusLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, margin, y)
		y += lineHeight
	}

	y += lineHeight / 2
	ebitenutil.DebugPrintAt(screen, text.T("PANEL_MESSAGES"), margin, y)
	y += lineHeight
	for _, msg := range snap.Messages {
		for _, part := range strings.Split(msg, "\n") {
			ebitenutil.DebugPrintAt(screen, "  "+part, margin, y)
			y += lineHeight
		}
	}

	if snap.Procedure != nil {
		e.drawPanel(screen, renderer.ProcedureLines(snap.Procedure))
	}

	_, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, helpText(snap), margin, h-lineHeight-margin/2)
}

// drawMap draws one filled tile per cell with its glyph and returns the
// bottom edge of the map in pixels.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap gameplay.Snapshot) int {
	top := margin + lineHeight
	cols := 0
	for _, row := range snap.Terrain {
		if len(row) > cols {
			cols = len(row)
		}
	}
	vector.DrawFilledRect(screen, float32(margin), float32(top),
		float32(cols*tileSize), float32(len(snap.Terrain)*tileSize), colorMapBackground, false)

	focus, hasFocus := renderer.FocusArea(snap)
	for row := range snap.Terrain {
		for col := 0; col < cols; col++ {
			x := margin + col*tileSize
			y := top + row*tileSize
			g := renderer.CellGlyph(snap, row, col)

			if hasFocus && focus.Contains(row, col) {
				vector.DrawFilledRect(screen, float32(x), float32(y), tileSize, tileSize, colorFocusBackground, false)
			}
			vector.DrawFilledRect(screen, float32(x)+2, float32(y)+2, tileSize-4, tileSize-4, tileColors[g.Style], false)
			if g.Char != renderer.IconVoid {
				ebitenutil.DebugPrintAt(screen, string(g.Char), x+(tileSize-charWidth)/2, y+(tileSize-lineHeight)/2)
			}
		}
	}
	return top + len(snap.Terrain)*tileSize
}

// drawPanel draws the procedure overlay on the right-hand side
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, lines []string) {
	w := screen.Bounds().Dx()
	x := w - panelWidth - margin
	height := (len(lines) + 2) * lineHeight
	vector.DrawFilledRect(screen, float32(x), float32(margin), panelWidth, float32(height), colorPanelBackground, false)

	y := margin + lineHeight/2
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+margin/2, y)
		y += lineHeight
	}
}

func helpText(snap gameplay.Snapshot) string {
	if snap.Procedure != nil {
		return text.T("HELP_PROCEDURE_WINDOW")
	}
	return text.T("HELP_EXPLORE_WINDOW")
}
