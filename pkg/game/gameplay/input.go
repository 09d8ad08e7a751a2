package gameplay

import (
	engineinput "lifeguard/pkg/engine/input"
	"lifeguard/pkg/game/devtools"
	"lifeguard/pkg/game/procedure"
	"lifeguard/pkg/game/text"
)

// Event is what one intent did. Rejected intents are no-ops.
type Event struct {
	Intent   engineinput.Intent
	Rejected bool

	Move      *MoveResult
	Outcome   *Outcome
	Procedure *procedure.Result
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent) Event {
	ev := Event{Intent: intent}

	switch intent.Action {
	case engineinput.ActionNone:
		ev.Rejected = true

	case engineinput.ActionMoveNorth, engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest, engineinput.ActionMoveEast, engineinput.ActionMove:
		dRow, dCol := intent.Delta()
		res, ok := s.Move(dRow, dCol)
		ev.Move = &res
		ev.Rejected = !ok || !res.Moved

	case engineinput.ActionInteract:
		out, ok := s.Interact()
		ev.Outcome = &out
		ev.Rejected = !ok

	case engineinput.ActionSupplyReagent:
		res, ok := s.SupplyReagent(intent.Reagent)
		ev.Procedure = &res
		ev.Rejected = !ok || !res.Accepted

	case engineinput.ActionAnswer:
		res, ok := s.Answer(intent.Choice)
		ev.Procedure = &res
		ev.Rejected = !ok || !res.Accepted

	case engineinput.ActionCloseProcedure:
		ev.Rejected = !s.CloseProcedure()

	case engineinput.ActionRestart:
		s.Restart()

	case engineinput.ActionMapDump:
		path, err := devtools.DumpSceneToFile(s.game, ".")
		if err != nil {
			logMessage(s.game, "%s", text.Tf("MAP_DUMP_FAILED", err))
			s.log.Warn("Map dump failed", "error", err)
			ev.Rejected = true
		} else {
			logMessage(s.game, "%s", text.Tf("MAP_DUMPED", path))
		}

	case engineinput.ActionQuit:
		s.quit = true
		s.log.Info("Session ended")
	}

	return ev
}

// Tick applies the intents gathered since the last tick, in order. Only the
// first interact intent of a tick is processed; later ones are dropped so a
// one-shot effect cannot fire twice.
func (s *Session) Tick(intents []engineinput.Intent) []Event {
	events := make([]Event, 0, len(intents))
	interacted := false
	for _, intent := range intents {
		if intent.Action == engineinput.ActionInteract {
			if interacted {
				s.debounced++
				events = append(events, Event{Intent: intent, Rejected: true})
				continue
			}
			interacted = true
		}
		events = append(events, s.ProcessIntent(intent))
		if s.quit {
			break
		}
	}
	return events
}
