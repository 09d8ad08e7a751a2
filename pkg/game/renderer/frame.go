package renderer

import (
	"fmt"
	"strings"

	"lifeguard/pkg/engine/input"
	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/procedure"
	"lifeguard/pkg/game/text"
)

// Icon constants shared by every frontend. Kept to ASCII so the Ebiten debug
// font can draw them.
const (
	PlayerIcon = '@'
	IconExit   = '>'
	IconVoid   = ' '
)

// Glyph is one map cell as a frontend should draw it.
type Glyph struct {
	Char  rune
	Style TextStyle
}

// CellGlyph returns the glyph for a map cell: the player, an exit, a zone
// coloured by its state, or plain terrain.
func CellGlyph(snap gameplay.Snapshot, row, col int) Glyph {
	if snap.Player.Row == row && snap.Player.Col == col {
		return Glyph{Char: PlayerIcon, Style: StylePlayer}
	}

	terrain := IconVoid
	if row >= 0 && row < len(snap.Terrain) && col >= 0 && col < len(snap.Terrain[row]) {
		terrain = rune(snap.Terrain[row][col])
	}

	for _, exit := range snap.Exits {
		if exit.Contains(row, col) {
			return Glyph{Char: IconExit, Style: StyleExit}
		}
	}

	if z, ok := zoneAt(snap.Zones, row, col); ok {
		char := terrain
		if char == world.TerrainFloor && z.Icon != 0 {
			char = z.Icon
		}
		switch {
		case z.Locked:
			return Glyph{Char: char, Style: StyleLocked}
		case z.Consumed:
			return Glyph{Char: char, Style: StyleUsed}
		case char == world.TerrainWater:
			return Glyph{Char: char, Style: StyleWater}
		default:
			return Glyph{Char: char, Style: StyleZone}
		}
	}

	switch terrain {
	case world.TerrainWall:
		return Glyph{Char: terrain, Style: StyleWall}
	case world.TerrainWater:
		return Glyph{Char: terrain, Style: StyleWater}
	case IconVoid:
		return Glyph{Char: terrain, Style: StyleNormal}
	default:
		return Glyph{Char: terrain, Style: StyleFloor}
	}
}

// zoneAt returns the first zone covering the cell. Zones are declared most
// specific first, so the lap lane wins over the pool around it.
func zoneAt(zones []gameplay.ZoneView, row, col int) (gameplay.ZoneView, bool) {
	for _, z := range zones {
		if z.Area.Contains(row, col) {
			return z, true
		}
	}
	return gameplay.ZoneView{}, false
}

// FocusArea returns the area of the zone the next interact would use.
func FocusArea(snap gameplay.Snapshot) (world.Rect, bool) {
	if snap.Focus == "" {
		return world.Rect{}, false
	}
	for _, z := range snap.Zones {
		if z.ID == snap.Focus {
			return z.Area, true
		}
	}
	return world.Rect{}, false
}

// StatusLines is the block under the map: objective, flags and the nearby hint.
func StatusLines(snap gameplay.Snapshot) []string {
	lines := []string{text.Tf("OBJECTIVE", snap.Objective)}

	flags := make([]string, 0, len(snap.Flags))
	for _, f := range snap.Flags {
		flags = append(flags, flagLabel(f))
	}
	if len(flags) == 0 {
		lines = append(lines, text.Tf("INVENTORY", text.T("INVENTORY_EMPTY")))
	} else {
		lines = append(lines, text.Tf("INVENTORY", strings.Join(flags, ", ")))
	}

	if snap.Hint != "" {
		lines = append(lines, snap.Hint)
	}
	return lines
}

// flagLabel looks up FLAG_<NAME>, falling back to the raw flag.
func flagLabel(f entities.Flag) string {
	key := "FLAG_" + strings.ToUpper(string(f))
	if label := text.T(key); label != key {
		return label
	}
	return string(f)
}

// DropBar draws a reagent fill level, e.g. "[###..] 3/5".
func DropBar(d procedure.DropLevel) string {
	filled := d.Drops
	if filled > d.Target {
		filled = d.Target
	}
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat(".", d.Target-filled), d.Drops, d.Target)
}

// ProcedureLines renders the procedure panel.
func ProcedureLines(v *procedure.View) []string {
	if v == nil {
		return nil
	}

	lines := []string{strings.ToUpper(v.Name)}
	if v.Step > 0 {
		lines = append(lines, text.Tf("PANEL_STEP", v.Step, v.Steps, v.StepTitle))
	} else {
		lines = append(lines, text.T("PANEL_COMPLETE"))
	}
	lines = append(lines, "")
	lines = append(lines, v.Instructions...)
	lines = append(lines, "")

	for _, d := range v.Drops {
		marker := "  "
		if d.Current {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-15s %s", marker, d.Name, DropBar(d)))
	}

	if v.Question != "" {
		lines = append(lines, "", v.Question)
		for i, c := range v.Choices {
			lines = append(lines, fmt.Sprintf("  %d) %s", i+1, c))
		}
	}

	if len(v.Readings) > 0 {
		lines = append(lines, "", text.T("PANEL_READINGS"))
		for _, r := range v.Readings {
			lines = append(lines, "  "+r.String())
		}
	}

	if v.Message != "" {
		lines = append(lines, "", v.Message)
	}
	return lines
}

// HelpLine lists the keys that do something in the current mode.
func HelpLine(snap gameplay.Snapshot) string {
	if snap.Procedure != nil {
		return text.T("HELP_PROCEDURE")
	}
	return text.Tf("HELP_EXPLORE", strings.Join(moveKeys(), ""))
}

func moveKeys() []string {
	var keys []string
	bindings := input.GetBindingsByAction()
	for _, a := range []input.Action{input.ActionMoveWest, input.ActionMoveSouth, input.ActionMoveNorth, input.ActionMoveEast} {
		for _, code := range bindings[a] {
			if len(code) == 1 && strings.ContainsAny(code, "hjkl") {
				keys = append(keys, code)
			}
		}
	}
	return keys
}
