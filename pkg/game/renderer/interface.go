package renderer

import (
	"lifeguard/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleWater
	StyleExit
	StyleZone
	StyleLocked
	StyleUsed
	StylePlayer
	StyleSubtle
	StyleAction
	StyleDenied
	StyleSuccess
)

// Renderer defines the interface for frontends. A frontend owns the loop:
// it gathers input, hands intents to the session and draws snapshots.
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init prepares the frontend (colours, window, etc.)
	Init() error

	// Run drives the session until the player quits
	Run(s *gameplay.Session) error
}
