package setup

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
	gameworld "lifeguard/pkg/game/world"
)

// sessionGranted are flags granted by the session itself rather than by a zone
// or a completed procedure.
var sessionGranted = []entities.Flag{entities.FlagAdvancedUnlocked}

// Validate checks a built facility for dangling references, orphan scenes and
// anything the player could never reach. Every problem found is returned.
func Validate(f *gameworld.Facility) []error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(f.Scenes) == 0 {
		fail("facility has no scenes")
		return errs
	}
	initial := f.Scene(f.Initial)
	if initial == nil {
		fail("initial scene %q does not exist", f.Initial)
		return errs
	}
	if !standable(initial, f.Start) {
		fail("start %s is not walkable in scene %q", f.Start, f.Initial)
	}

	granted := mapset.New[entities.Flag]()
	for _, flag := range sessionGranted {
		granted.Put(flag)
	}
	for _, def := range f.Procedures {
		if def.Grants != "" {
			granted.Put(entities.Flag(def.Grants))
		}
	}
	zoneIDs := mapset.New[string]()
	f.ForEachZone(func(scene *gameworld.Scene, z *entities.Zone) {
		if zoneIDs.Has(z.ID) {
			fail("duplicate zone %q", z.ID)
		}
		zoneIDs.Put(z.ID)
		if z.Effect.Kind == entities.EffectGrantFlag {
			if z.Effect.Flag == "" {
				fail("zone %q grants an empty flag", z.ID)
			}
			granted.Put(z.Effect.Flag)
		}
	})

	reachable := reachableScenes(f)
	for _, id := range f.SceneOrder {
		scene := f.Scenes[id]
		if !reachable.Has(id) {
			fail("scene %q is not reachable from %q", id, f.Initial)
			continue
		}
		if len(scene.Transitions) == 0 {
			fail("scene %q has no transitions", id)
		}
		errs = append(errs, validateScene(f, scene, granted)...)
	}

	return errs
}

func validateScene(f *gameworld.Facility, scene *gameworld.Scene, granted mapset.Set[entities.Flag]) []error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("scene %q: "+format, append([]interface{}{scene.ID}, args...)...))
	}
	rows, cols := scene.Grid.Rows(), scene.Grid.Cols()

	if !standable(scene, scene.Spawn) {
		fail("spawn %s is not walkable", scene.Spawn)
	}

	cells := reachableCells(f, scene)

	for _, t := range scene.Transitions {
		if !t.Area.Within(rows, cols) {
			fail("transition to %q lies outside the map", t.Target)
		}
		target := f.Scene(t.Target)
		if target == nil {
			fail("transition target %q does not exist", t.Target)
			continue
		}
		if !standable(target, t.Spawn) {
			fail("transition to %q spawns on unwalkable cell %s", t.Target, t.Spawn)
		}
		if onTransition(target, t.Spawn.Row, t.Spawn.Col) {
			fail("transition to %q spawns on an exit of %q", t.Target, t.Target)
		}
		if !anyCell(t.Area, cells.Has) {
			fail("transition to %q cannot be reached", t.Target)
		}
	}

	for _, z := range scene.Zones {
		if !z.Area.Within(rows, cols) {
			fail("zone %q lies outside the map", z.ID)
			continue
		}
		reach := f.ReachOf(z.Kind)
		inReach := false
		cells.Each(func(p world.Position) {
			if z.Area.Distance(p.Row, p.Col) <= reach {
				inReach = true
			}
		})
		if !inReach {
			fail("zone %q is not within reach %d of any reachable cell", z.ID, reach)
		}
		if z.RequiredFlag != "" && !granted.Has(z.RequiredFlag) {
			fail("zone %q requires flag %q that nothing grants", z.ID, z.RequiredFlag)
		}
		if z.Effect.Kind == entities.EffectOpenProcedure {
			if _, ok := f.Procedures[z.Effect.Procedure]; !ok {
				fail("zone %q opens unknown procedure %q", z.ID, z.Effect.Procedure)
			}
		}
	}

	return errs
}

// standable reports whether the player can stand on p whatever the lock state.
func standable(scene *gameworld.Scene, p world.Position) bool {
	if !scene.Grid.IsOpen(p.Row, p.Col) {
		return false
	}
	for _, z := range scene.Zones {
		if z.Covers(p.Row, p.Col) && (z.Solid || z.LockPolicy == entities.LockSolid) {
			return false
		}
	}
	return true
}

func anyCell(r world.Rect, has func(world.Position) bool) bool {
	found := false
	r.ForEachCell(func(row, col int) {
		if has(world.Position{Row: row, Col: col}) {
			found = true
		}
	})
	return found
}
