package gameplay

import (
	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/procedure"
	gameworld "lifeguard/pkg/game/world"
)

// ZoneView is a read-only copy of a zone for renderers.
type ZoneView struct {
	ID       string
	Name     string
	Kind     entities.ZoneKind
	Area     world.Rect
	Icon     rune
	Locked   bool
	Blocks   bool
	Consumed bool
}

// Snapshot is everything a renderer needs to draw one frame. It shares no
// memory with the session.
type Snapshot struct {
	SessionID string
	SceneID   gameworld.SceneID
	SceneName string
	Terrain   []string
	Exits     []world.Rect

	Player world.Position
	Facing world.Direction
	Flags  []entities.Flag
	Zones  []ZoneView

	Messages  []string
	Objective string
	Hint      string
	Focus     string // Zone the next interact would use, if any

	// Procedure is nil unless a procedure is open.
	Procedure *procedure.View

	AdvancedUnlocked bool
	Quit             bool
}

// Snapshot copies the session state for rendering
func (s *Session) Snapshot() Snapshot {
	g := s.game
	snap := Snapshot{
		SessionID:        s.ID,
		SceneID:          g.Scene.ID,
		SceneName:        g.Scene.Name,
		Terrain:          g.Scene.Grid.Lines(),
		Player:           g.Player.Pos,
		Facing:           g.Player.Facing,
		Flags:            g.Flags(),
		Messages:         append([]string(nil), g.Messages...),
		Objective:        g.Objective,
		Hint:             s.NearbyHint(),
		AdvancedUnlocked: g.AdvancedUnlocked,
		Quit:             s.quit,
	}

	if s.proc == nil {
		if candidates := Resolve(g.Player.Pos.Row, g.Player.Pos.Col, g.Scene.Zones, g.Facility.ReachOf); len(candidates) > 0 {
			snap.Focus = candidates[0].ID
		}
	}
	for _, t := range g.Scene.Transitions {
		snap.Exits = append(snap.Exits, t.Area)
	}
	for _, z := range g.Scene.Zones {
		snap.Zones = append(snap.Zones, ZoneView{
			ID:       z.ID,
			Name:     z.Name,
			Kind:     z.Kind,
			Area:     z.Area,
			Icon:     z.Icon,
			Locked:   z.Locked(),
			Blocks:   z.Blocks(),
			Consumed: z.Consumed(),
		})
	}
	if s.proc != nil {
		v := s.proc.View()
		snap.Procedure = &v
	}
	return snap
}
