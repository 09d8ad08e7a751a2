package gameplay

import (
	"strings"

	"lifeguard/pkg/game/text"
)

// NearbyHint describes the zone an interact would act on, or "" when there
// is none or a procedure is open.
func (s *Session) NearbyHint() string {
	if s.proc != nil {
		return ""
	}
	g := s.game
	candidates := Resolve(g.Player.Pos.Row, g.Player.Pos.Col, g.Scene.Zones, g.Facility.ReachOf)
	if len(candidates) == 0 {
		return ""
	}

	z := candidates[0]
	key := "NEARBY"
	if z.Locked() {
		key = "NEARBY_LOCKED"
	}
	hint := text.Tf(key, text.T(z.Name), text.T(z.Description))
	return strings.TrimSuffix(strings.TrimSpace(hint), ".")
}
