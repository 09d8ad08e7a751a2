package setup

import (
	"github.com/zyedidia/generic/mapset"

	"lifeguard/pkg/engine/world"
	gameworld "lifeguard/pkg/game/world"
)

// reachableScenes walks transitions breadth-first from the initial scene.
func reachableScenes(f *gameworld.Facility) mapset.Set[gameworld.SceneID] {
	visited := mapset.New[gameworld.SceneID]()
	queue := []gameworld.SceneID{f.Initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		scene := f.Scene(current)
		if scene == nil || visited.Has(current) {
			continue
		}
		visited.Put(current)
		for _, t := range scene.Transitions {
			if !visited.Has(t.Target) {
				queue = append(queue, t.Target)
			}
		}
	}
	return visited
}

// entryPoints returns every cell the player can appear on in the scene: the
// facility start, the scene spawn and the spawn of every transition into it.
func entryPoints(f *gameworld.Facility, scene *gameworld.Scene) []world.Position {
	entries := []world.Position{scene.Spawn}
	if scene.ID == f.Initial {
		entries = append(entries, f.Start)
	}
	for _, id := range f.SceneOrder {
		for _, t := range f.Scenes[id].Transitions {
			if t.Target == scene.ID {
				entries = append(entries, t.Spawn)
			}
		}
	}
	return entries
}

// passable reports whether the player could ever stand on the cell once every
// lock is open. Solid furniture never opens.
func passable(scene *gameworld.Scene, row, col int) bool {
	if !scene.Grid.IsOpen(row, col) {
		return false
	}
	for _, z := range scene.Zones {
		if z.Solid && z.Covers(row, col) {
			return false
		}
	}
	return true
}

// onTransition reports whether the cell lies on one of the scene's exits.
func onTransition(scene *gameworld.Scene, row, col int) bool {
	_, ok := scene.ResolveTransition(row, col)
	return ok
}

// reachableCells flood-fills the cells the player can reach from the scene's
// entry points. Exit cells are reached but not expanded, since stepping on
// one leaves the scene.
func reachableCells(f *gameworld.Facility, scene *gameworld.Scene) mapset.Set[world.Position] {
	visited := mapset.New[world.Position]()
	queue := entryPoints(f, scene)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) || !passable(scene, current.Row, current.Col) {
			continue
		}
		visited.Put(current)
		if onTransition(scene, current.Row, current.Col) {
			continue
		}
		for _, d := range world.AllDirections() {
			dr, dc := d.Delta()
			next := current.Add(dr, dc)
			if !visited.Has(next) {
				queue = append(queue, next)
			}
		}
	}
	return visited
}
