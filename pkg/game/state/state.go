// Package state holds the mutable state of one orientation run.
package state

import (
	"sort"

	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/text"
	gameworld "lifeguard/pkg/game/world"
)

const maxMessages = 5

// Player is the avatar: a grid cell, a facing and the flags collected so far.
type Player struct {
	Pos    world.Position
	Facing world.Direction
	Flags  entities.FlagSet
}

// Game represents the state of one run through the facility
type Game struct {
	Facility *gameworld.Facility
	Scene    *gameworld.Scene
	Player   Player

	Objective string
	Messages  []string

	// AdvancedUnlocked is the durable flag; it survives restarts.
	AdvancedUnlocked bool
}

// NewGame creates a game at the facility start. The game works on its own
// copy of the facility's zones.
func NewGame(f *gameworld.Facility, advancedUnlocked bool) *Game {
	g := &Game{Facility: f.Clone(), AdvancedUnlocked: advancedUnlocked}
	g.Reset()
	return g
}

// Reset puts the player back at the start with no flags except the durable
// one, and restores every zone.
func (g *Game) Reset() {
	flags := entities.NewFlagSet()
	if g.AdvancedUnlocked {
		flags.Put(entities.FlagAdvancedUnlocked)
	}

	g.Scene = g.Facility.Scene(g.Facility.Initial)
	g.Player = Player{Pos: g.Facility.Start, Facing: world.North, Flags: flags}
	g.Objective = text.T(g.Scene.Objective)
	g.Messages = make([]string, 0)
	g.Facility.Reset(flags)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	if msg == "" {
		return
	}
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SetObjective replaces the objective; empty text leaves it unchanged
func (g *Game) SetObjective(objective string) {
	if objective != "" {
		g.Objective = text.T(objective)
	}
}

// HasFlag checks if the player holds a flag
func (g *Game) HasFlag(f entities.Flag) bool {
	return g.Player.Flags.Has(f)
}

// GrantFlag gives the player a flag and re-evaluates every zone lock in the
// facility. Returns the zones it unlocked.
func (g *Game) GrantFlag(f entities.Flag) []*entities.Zone {
	g.Player.Flags.Put(f)
	return g.Facility.RefreshLocks(g.Player.Flags)
}

// Flags returns the player's flags sorted by name
func (g *Game) Flags() []entities.Flag {
	flags := make([]entities.Flag, 0, g.Player.Flags.Size())
	g.Player.Flags.Each(func(f entities.Flag) {
		flags = append(flags, f)
	})
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return flags
}

// EnterScene switches to another scene and places the player at spawn
func (g *Game) EnterScene(change gameworld.SceneChange) {
	g.Scene = g.Facility.Scene(change.Target)
	g.Player.Pos = change.Spawn
	g.SetObjective(change.Objective)
}
