// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/procedure"
	"lifeguard/pkg/game/state"
	"lifeguard/pkg/game/text"
	gameworld "lifeguard/pkg/game/world"
)

// Options configures a session's collaborators.
type Options struct {
	// AdvancedUnlocked is the durable flag as loaded at startup.
	AdvancedUnlocked bool

	// OnAdvancedUnlocked is called once when the durable flag changes so the
	// caller can persist it.
	OnAdvancedUnlocked func(unlocked bool)

	Logger *slog.Logger
}

// Session owns the player, the current scene and the open procedure, and is
// the only way they change. It is not safe for concurrent use.
type Session struct {
	ID string

	game *state.Game
	opts Options
	log  *slog.Logger

	proc     *procedure.Procedure
	procZone *entities.Zone

	debounced int
	quit      bool
}

// NewSession starts a run through the facility
func NewSession(f *gameworld.Facility, opts Options) *Session {
	s := &Session{
		ID:   uuid.NewString(),
		game: state.NewGame(f, opts.AdvancedUnlocked),
		opts: opts,
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s.log = logger.With("session_id", s.ID)

	s.game.AddMessage(text.T("WELCOME"))
	s.log.Info("Session started",
		"facility", f.Name,
		"scene", s.game.Scene.ID,
		"advanced_unlocked", opts.AdvancedUnlocked)
	return s
}

// Game exposes the session state for read-only inspection
func (s *Session) Game() *state.Game {
	return s.game
}

// Procedure returns the open procedure, or nil
func (s *Session) Procedure() *procedure.Procedure {
	return s.proc
}

// Quit returns true once the player asked to leave
func (s *Session) Quit() bool {
	return s.quit
}

// Debounced returns how many surplus interact intents were dropped
func (s *Session) Debounced() int {
	return s.debounced
}

// logMessage adds a formatted message to the player's message log
func logMessage(g *state.Game, format string, a ...interface{}) {
	g.AddMessage(fmt.Sprintf(format, a...))
}
