package world

import (
	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/procedure"
)

// DefaultSpeed is the number of cells a single move intent may cover
const DefaultSpeed = 1

// Facility is the complete, validated world: every scene, the procedures
// stations can open, and the rules shared by all zones.
type Facility struct {
	Name       string
	Scenes     map[SceneID]*Scene
	SceneOrder []SceneID // Declaration order
	Initial    SceneID
	Start      world.Position // Player start cell in the initial scene

	// Reach is the proximity range per zone kind, in cells.
	Reach map[entities.ZoneKind]int
	Speed int

	Procedures map[string]*procedure.Definition
}

// Scene returns the scene with the given ID, or nil
func (f *Facility) Scene(id SceneID) *Scene {
	return f.Scenes[id]
}

// ReachOf returns the proximity range for a zone kind
func (f *Facility) ReachOf(kind entities.ZoneKind) int {
	return f.Reach[kind]
}

// ForEachZone calls fn for every zone of every scene in declaration order
func (f *Facility) ForEachZone(fn func(scene *Scene, zone *entities.Zone)) {
	for _, id := range f.SceneOrder {
		scene := f.Scenes[id]
		for _, z := range scene.Zones {
			fn(scene, z)
		}
	}
}

// RefreshLocks re-evaluates the lock state of every zone in every scene
// against flags. Returns the zones that became unlocked.
func (f *Facility) RefreshLocks(flags entities.FlagSet) []*entities.Zone {
	var unlocked []*entities.Zone
	f.ForEachZone(func(_ *Scene, z *entities.Zone) {
		if z.Refresh(flags) {
			unlocked = append(unlocked, z)
		}
	})
	return unlocked
}

// Reset restores every zone to its initial state and applies flags
func (f *Facility) Reset(flags entities.FlagSet) {
	f.ForEachZone(func(_ *Scene, z *entities.Zone) {
		z.Reset()
	})
	f.RefreshLocks(flags)
}

// Clone returns a facility whose scenes and zones are private copies, so lock
// and consumed state can change without touching f. Grids, transitions and
// procedures are read-only after Build and stay shared.
func (f *Facility) Clone() *Facility {
	c := *f
	c.Scenes = make(map[SceneID]*Scene, len(f.Scenes))
	for id, scene := range f.Scenes {
		sc := *scene
		sc.Zones = make([]*entities.Zone, len(scene.Zones))
		for i, z := range scene.Zones {
			zc := *z
			sc.Zones[i] = &zc
		}
		c.Scenes[id] = &sc
	}
	return &c
}
