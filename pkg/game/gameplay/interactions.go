package gameplay

import (
	"sort"

	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/text"
)

// OutcomeKind classifies the result of an interaction.
type OutcomeKind int

const (
	OutcomeNothing OutcomeKind = iota
	OutcomeLocked
	OutcomeEffect
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeLocked:
		return "locked"
	case OutcomeEffect:
		return "effect"
	default:
		return "nothing"
	}
}

// Outcome is what an interact intent did.
type Outcome struct {
	Kind    OutcomeKind
	Zone    *entities.Zone // Nil for OutcomeNothing with no candidate
	Message string

	// Unlocked lists zones whose lock opened because of a granted flag.
	Unlocked []*entities.Zone
}

// priority tiers used by Resolve; lower sorts first.
const (
	tierAvailable = iota
	tierLocked
	tierOther
)

func tier(z *entities.Zone) int {
	switch {
	case z.Locked():
		return tierLocked
	case z.Available():
		return tierAvailable
	default:
		return tierOther
	}
}

// Resolve returns every zone within reach of (row, col), best first: unlocked
// zones with an effect still to run, then locked zones, then the rest.
// Declaration order breaks ties.
func Resolve(row, col int, zones []*entities.Zone, reach func(entities.ZoneKind) int) []*entities.Zone {
	var candidates []*entities.Zone
	for _, z := range zones {
		if z.Area.Distance(row, col) <= reach(z.Kind) {
			candidates = append(candidates, z)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return tier(candidates[i]) < tier(candidates[j])
	})
	return candidates
}

// Interact resolves the best zone near the player and runs its effect.
// Locked zones report why and change nothing.
func (s *Session) Interact() (Outcome, bool) {
	g := s.game
	if s.proc != nil {
		logMessage(g, "%s", text.Tf("PROCEDURE_OPEN", s.proc.Definition().Name))
		return Outcome{}, false
	}

	candidates := Resolve(g.Player.Pos.Row, g.Player.Pos.Col, g.Scene.Zones, g.Facility.ReachOf)
	if len(candidates) == 0 {
		out := Outcome{Kind: OutcomeNothing, Message: text.T("NOTHING_HERE")}
		logMessage(g, "%s", out.Message)
		return out, true
	}

	z := candidates[0]
	out := s.interactZone(z)
	logMessage(g, "%s", out.Message)
	s.log.Debug("Interaction",
		"zone", z.ID,
		"outcome", out.Kind.String(),
		"scene", g.Scene.ID)
	return out, true
}

func (s *Session) interactZone(z *entities.Zone) Outcome {
	g := s.game

	if z.Locked() {
		reason := z.LockedReason
		if reason == "" {
			reason = text.Tf("LOCKED_DEFAULT", z.Name)
		}
		return Outcome{Kind: OutcomeLocked, Zone: z, Message: text.T(reason)}
	}

	if !z.Available() {
		msg := text.T(z.Description)
		if z.OneShot && z.Consumed() {
			msg = z.ConsumedMessage
			if msg == "" {
				msg = text.Tf("ALREADY_USED", z.Name)
			}
			msg = text.T(msg)
		}
		return Outcome{Kind: OutcomeNothing, Zone: z, Message: msg}
	}

	z.Consume()
	out := Outcome{Kind: OutcomeEffect, Zone: z, Message: text.T(z.Effect.Message)}

	switch z.Effect.Kind {
	case entities.EffectGrantFlag:
		out.Unlocked = g.GrantFlag(z.Effect.Flag)
		s.log.Info("Flag granted", "flag", string(z.Effect.Flag), "zone", z.ID)
		for _, u := range out.Unlocked {
			s.log.Debug("Zone unlocked", "zone", u.ID)
		}
	case entities.EffectOpenProcedure:
		out.Message = s.openProcedure(z)
	case entities.EffectMessage:
	}

	g.SetObjective(z.Effect.Objective)
	return out
}
