package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTouch
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionMove // Vector move carried in Intent.DRow/DCol (diagonals)

	// World
	ActionInteract

	// Procedure
	ActionSupplyReagent // Reagent carried in Intent.Reagent
	ActionAnswer        // Zero-based choice carried in Intent.Choice
	ActionCloseProcedure

	// Meta
	ActionRestart
	ActionMapDump
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action

	DRow, DCol int
	Reagent    string
	Choice     int
}

// Move returns a vector move intent.
func Move(dRow, dCol int) Intent {
	return Intent{Action: ActionMove, DRow: dRow, DCol: dCol}
}

// Supply returns a reagent intent.
func Supply(reagent string) Intent {
	return Intent{Action: ActionSupplyReagent, Reagent: reagent}
}

// Answer returns an answer intent for a zero-based choice.
func Answer(choice int) Intent {
	return Intent{Action: ActionAnswer, Choice: choice}
}

// Delta returns the movement vector of a move intent, or (0, 0) for any other action.
func (i Intent) Delta() (dRow, dCol int) {
	switch i.Action {
	case ActionMoveNorth:
		return -1, 0
	case ActionMoveSouth:
		return 1, 0
	case ActionMoveWest:
		return 0, -1
	case ActionMoveEast:
		return 0, 1
	case ActionMove:
		return i.DRow, i.DCol
	default:
		return 0, 0
	}
}

// IsMove returns true for cardinal and vector moves.
func (i Intent) IsMove() bool {
	switch i.Action {
	case ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast, ActionMove:
		return true
	default:
		return false
	}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "e", "tap").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code arriving within Window of each other.
// Frontends that poll held keys use it to turn key-repeat into discrete steps.
type Debouncer struct {
	Window time.Duration

	last map[string]time.Time
}

// NewDebouncer creates a debouncer with the given repeat window
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{Window: window, last: make(map[string]time.Time)}
}

// Accept converts a raw event to a debounced event; ok is false when the event
// repeats the same code inside the window.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if prev, seen := d.last[raw.Code]; seen && raw.Timestamp.Sub(prev) < d.Window {
		return DebouncedInput{}, false
	}
	d.last[raw.Code] = raw.Timestamp
	return DebouncedInput{Device: raw.Device, Code: raw.Code}, true
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"l":           ActionMoveEast,

	"e":        ActionInteract,
	"enter":    ActionInteract,
	"interact": ActionInteract,
	"tap":      ActionInteract,

	"x":       ActionCloseProcedure,
	"close":   ActionCloseProcedure,
	"restart": ActionRestart,
	"map":     ActionMapDump,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ParseCommand turns a typed command into an Intent. Besides the plain
// bindings it understands "add <reagent>" / "a <reagent>" and a bare
// number "1".."9" selecting an answer (one-based on screen, zero-based in the Intent).
func ParseCommand(line string) Intent {
	raw := strings.Fields(line)
	if len(raw) == 0 {
		return Intent{Action: ActionNone}
	}
	fields := strings.Fields(strings.ToLower(line))

	switch fields[0] {
	case "add", "a", "drop":
		if len(raw) < 2 {
			return Intent{Action: ActionNone}
		}
		// Reagents are named by ID or by a possibly multi-word name.
		return Supply(strings.Join(raw[1:], " "))
	case "answer":
		if len(fields) < 2 {
			return Intent{Action: ActionNone}
		}
		fields = fields[1:]
	}

	if n, err := strconv.Atoi(fields[0]); err == nil {
		if n < 1 {
			return Intent{Action: ActionNone}
		}
		return Answer(n - 1)
	}

	return MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: fields[0]})
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionMove:
		return "Move"
	case ActionInteract:
		return "Interact"
	case ActionSupplyReagent:
		return "Add Reagent"
	case ActionAnswer:
		return "Answer"
	case ActionCloseProcedure:
		return "Close"
	case ActionRestart:
		return "Restart"
	case ActionMapDump:
		return "Map Dump"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
