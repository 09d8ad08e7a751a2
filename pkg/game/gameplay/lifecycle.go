package gameplay

import (
	"strings"

	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/procedure"
	"lifeguard/pkg/game/text"
)

// openProcedure starts a fresh instance of the zone's procedure. A station
// used again after completion starts over.
func (s *Session) openProcedure(z *entities.Zone) string {
	def := s.game.Facility.Procedures[z.Effect.Procedure]
	s.proc = procedure.New(def)
	s.procZone = z
	s.log.Info("Procedure opened", "procedure", def.ID, "zone", z.ID)

	lines := []string{text.T(def.Name) + ":"}
	lines = append(lines, def.Instructions()...)
	lines = append(lines, s.proc.Message())
	return strings.Join(lines, "\n")
}

// SupplyReagent forwards a reagent drop to the open procedure
func (s *Session) SupplyReagent(id string) (procedure.Result, bool) {
	if s.proc == nil {
		return procedure.Result{}, false
	}
	res := s.proc.SupplyReagent(id)
	logMessage(s.game, "%s", res.Message)
	if res.Completed {
		s.log.Info("Procedure completed", "procedure", s.proc.Definition().ID)
	}
	return res, true
}

// Answer forwards an answer to the open procedure
func (s *Session) Answer(choice int) (procedure.Result, bool) {
	if s.proc == nil {
		return procedure.Result{}, false
	}
	res := s.proc.Answer(choice)
	logMessage(s.game, "%s", res.Message)
	if res.Accepted && !res.Correct {
		s.log.Debug("Wrong answer", "procedure", s.proc.Definition().ID, "step", s.proc.StepIndex())
	}
	if res.Completed {
		s.log.Info("Procedure completed", "procedure", s.proc.Definition().ID)
	}
	return res, true
}

// CloseProcedure discards the open procedure. A completed procedure is
// folded into the player's flags first, and the first completion sets the
// durable advanced flag.
func (s *Session) CloseProcedure() bool {
	if s.proc == nil {
		return false
	}
	g := s.game
	def := s.proc.Definition()

	if s.proc.Completed() {
		if def.Grants != "" {
			g.GrantFlag(entities.Flag(def.Grants))
		}
		if !g.AdvancedUnlocked {
			g.AdvancedUnlocked = true
			g.GrantFlag(entities.FlagAdvancedUnlocked)
			if s.opts.OnAdvancedUnlocked != nil {
				s.opts.OnAdvancedUnlocked(true)
			}
			logMessage(g, "%s", text.T("ADVANCED_UNLOCKED"))
			s.log.Info("Advanced training unlocked")
		}
		logMessage(g, "%s", text.Tf("PROCEDURE_FOLDED", text.T(def.Name)))
	} else {
		logMessage(g, "%s", text.Tf("PROCEDURE_CLOSED", text.T(def.Name)))
	}

	s.log.Info("Procedure closed", "procedure", def.ID, "completed", s.proc.Completed())
	s.proc = nil
	s.procZone = nil
	return true
}

// Restart puts the player back at the start. Progress flags and zones reset;
// the durable advanced flag is kept.
func (s *Session) Restart() {
	s.proc = nil
	s.procZone = nil
	s.game.Reset()
	logMessage(s.game, "%s", text.T("RESTARTED"))
	s.log.Info("Session restarted")
}
