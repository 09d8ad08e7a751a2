// Package world provides the orientation facility: scenes built on the
// engine grid, their zones and the transitions between them.
package world

import (
	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
)

// SceneID identifies a scene in the facility
type SceneID string

const (
	SceneOffice SceneID = "office"
	ScenePool   SceneID = "pool"
)

// Transition is an edge out of a scene. Stepping onto any cell of Area moves
// the player to Target at Spawn.
type Transition struct {
	Area      world.Rect
	Target    SceneID
	Spawn     world.Position
	Objective string // Replaces the session objective on arrival when non-empty
}

// SceneChange is the result of crossing a transition
type SceneChange struct {
	Target    SceneID
	Spawn     world.Position
	Objective string
}

// Scene is one map of the facility.
type Scene struct {
	ID          SceneID
	Name        string
	Grid        *world.Grid
	Zones       []*entities.Zone // Declaration order; used to break ties
	Transitions []Transition
	Spawn       world.Position
	Objective   string
}

// Zone returns the zone with the given ID, or nil
func (s *Scene) Zone(id string) *entities.Zone {
	for _, z := range s.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// ZoneAt returns the first zone covering (row, col), or nil
func (s *Scene) ZoneAt(row, col int) *entities.Zone {
	for _, z := range s.Zones {
		if z.Covers(row, col) {
			return z
		}
	}
	return nil
}

// Walkable returns true if the player may stand on (row, col). Out of bounds
// cells, blocking terrain, solid zones and solid-policy locked zones are not walkable.
func (s *Scene) Walkable(row, col int) bool {
	if !s.Grid.IsOpen(row, col) {
		return false
	}
	for _, z := range s.Zones {
		if z.Covers(row, col) && z.Blocks() {
			return false
		}
	}
	return true
}

// ResolveTransition returns the scene change for a position lying on a
// transition edge. It does not modify anything.
func (s *Scene) ResolveTransition(row, col int) (SceneChange, bool) {
	for _, t := range s.Transitions {
		if t.Area.Contains(row, col) {
			return SceneChange{Target: t.Target, Spawn: t.Spawn, Objective: t.Objective}, true
		}
	}
	return SceneChange{}, false
}
