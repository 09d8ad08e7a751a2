package gameplay

import (
	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/state"
	"lifeguard/pkg/game/text"
	gameworld "lifeguard/pkg/game/world"
)

// MoveResult reports what a move did.
type MoveResult struct {
	From    world.Position
	To      world.Position
	Moved   bool
	Blocked bool // Some requested step was refused

	// Transition is set when the player stepped onto an exit.
	Transition *gameworld.SceneChange
}

// AttemptMove moves the player up to speed cells along each axis of
// (dRow, dCol), horizontal first. Each axis stops before the first cell the
// player cannot stand on, so a diagonal move slides along walls. The new
// position is committed; a fully refused move leaves it unchanged. Stepping
// onto an exit ends the move and reports the transition.
func AttemptMove(scene *gameworld.Scene, p *state.Player, dRow, dCol, speed int) MoveResult {
	res := MoveResult{From: p.Pos, To: p.Pos}
	if d, ok := world.Facing(dRow, dCol); ok {
		p.Facing = d
	}
	if speed < 1 {
		speed = 1
	}

	pos := p.Pos
	axes := [2][2]int{{0, world.Sign(dCol)}, {world.Sign(dRow), 0}}
	for _, axis := range axes {
		if axis == [2]int{0, 0} || res.Transition != nil {
			continue
		}
		for i := 0; i < speed; i++ {
			next := pos.Add(axis[0], axis[1])
			if !scene.Walkable(next.Row, next.Col) {
				res.Blocked = true
				break
			}
			pos = next
			if change, ok := scene.ResolveTransition(pos.Row, pos.Col); ok {
				res.Transition = &change
				break
			}
		}
	}

	p.Pos = pos
	res.To = pos
	res.Moved = pos != res.From
	return res
}

// ResolveTransition returns the scene change for a position on an exit
func ResolveTransition(scene *gameworld.Scene, row, col int) (gameworld.SceneChange, bool) {
	return scene.ResolveTransition(row, col)
}

// Move applies a move intent. Rejected while a procedure is open.
func (s *Session) Move(dRow, dCol int) (MoveResult, bool) {
	g := s.game
	if s.proc != nil {
		logMessage(g, "%s", text.Tf("PROCEDURE_OPEN", s.proc.Definition().Name))
		return MoveResult{From: g.Player.Pos, To: g.Player.Pos}, false
	}

	res := AttemptMove(g.Scene, &g.Player, dRow, dCol, g.Facility.Speed)
	if res.Transition != nil {
		from := g.Scene.ID
		g.EnterScene(*res.Transition)
		res.To = g.Player.Pos
		logMessage(g, "%s", text.Tf("ENTERED_SCENE", g.Scene.Name))
		s.log.Info("Scene transition", "from", from, "to", g.Scene.ID, "spawn", g.Player.Pos.String())
	}
	return res, true
}
