// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/state"
	gameworld "lifeguard/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell with zone overlay
// but without the player.
func cellSymbol(scene *gameworld.Scene, row, col int, terrain rune) rune {
	if _, ok := scene.ResolveTransition(row, col); ok {
		return 'E'
	}
	z := scene.ZoneAt(row, col)
	switch {
	case z == nil:
		return terrain
	case z.Blocks():
		return 'X'
	case z.Locked():
		return 'L'
	case z.Icon != 0:
		return z.Icon
	default:
		return terrain
	}
}

// writeMapGrid writes the scene grid to w with the player overlaid.
func writeMapGrid(w io.Writer, g *state.Game) {
	scene := g.Scene
	for row := 0; row < scene.Grid.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < scene.Grid.Cols(); col++ {
			if row == g.Player.Pos.Row && col == g.Player.Pos.Col {
				line.WriteRune('@')
				continue
			}
			line.WriteRune(cellSymbol(scene, row, col, scene.Grid.Terrain(row, col)))
		}
		fmt.Fprintln(w, line.String())
	}
}

// WriteSceneDump writes a debug dump of the current scene: metadata, legend,
// the map and every zone and transition with its state.
func WriteSceneDump(w io.Writer, g *state.Game) {
	scene := g.Scene

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (scene layout, zones, transitions) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "facility: %q\n", g.Facility.Name)
	fmt.Fprintf(w, "scene: %s\n", scene.ID)
	fmt.Fprintf(w, "scene_name: %q\n", scene.Name)
	fmt.Fprintf(w, "grid_rows: %d\n", scene.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", scene.Grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "player_cell: %d,%d\n", g.Player.Pos.Row, g.Player.Pos.Col)
	fmt.Fprintf(w, "player_facing: %s\n", g.Player.Facing)
	fmt.Fprintf(w, "objective: %q\n", g.Objective)
	fmt.Fprintf(w, "advanced_unlocked: %v\n", g.AdvancedUnlocked)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "# = wall  @ = player  E = exit  X = blocked zone  L = locked zone  other = terrain or zone icon")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Zones ---")
	for _, z := range scene.Zones {
		fmt.Fprintf(w, "  id: %s kind: %s area: %d,%d %dx%d locked: %v lock_policy: %s solid: %v one_shot: %v consumed: %v effect: %s\n",
			z.ID, z.Kind, z.Area.Row, z.Area.Col, z.Area.Rows, z.Area.Cols,
			z.Locked(), z.LockPolicy, z.Solid, z.OneShot, z.Consumed(), z.Effect.Kind)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Transitions ---")
	for _, t := range scene.Transitions {
		fmt.Fprintf(w, "  area: %d,%d %dx%d target: %s spawn: %s\n",
			t.Area.Row, t.Area.Col, t.Area.Rows, t.Area.Cols, t.Target, t.Spawn)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Player flags ---")
	flags := g.Flags()
	if len(flags) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, f := range flags {
		fmt.Fprintf(w, "  flag: %s\n", f)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// DumpSceneToFile writes the scene dump to map.txt in dir and returns its path.
func DumpSceneToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	WriteSceneDump(f, g)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// Walkable renders the scene's current walkability as text: '.' for cells the
// player may stand on, '#' otherwise.
func Walkable(scene *gameworld.Scene) []string {
	lines := make([]string, scene.Grid.Rows())
	scene.Grid.ForEachCell(func(row, col int, _ world.Cell) {
		if scene.Walkable(row, col) {
			lines[row] += "."
		} else {
			lines[row] += "#"
		}
	})
	return lines
}

