// Package entities contains the interactable zones of the orientation facility
// and the progress flags that gate them.
package entities

import (
	"fmt"

	"lifeguard/pkg/engine/world"

	"github.com/zyedidia/generic/mapset"
)

// Flag is a boolean progress flag held by the player.
type Flag string

const (
	FlagHasKey            Flag = "has_key"
	FlagWaterTestComplete Flag = "water_test_complete"
	FlagAdvancedUnlocked  Flag = "advanced_unlocked"
)

// FlagSet is the set of flags a player holds
type FlagSet = mapset.Set[Flag]

// NewFlagSet returns a flag set holding the given flags
func NewFlagSet(flags ...Flag) FlagSet {
	s := mapset.New[Flag]()
	for _, f := range flags {
		s.Put(f)
	}
	return s
}

// ZoneKind classifies zones; reach is configured per kind.
type ZoneKind int

const (
	ZoneItem    ZoneKind = iota // Something picked up (the key)
	ZoneStation                 // Equipment that opens a procedure
	ZoneArea                    // A room feature (hot tub, steam room)
)

var zoneKindNames = map[ZoneKind]string{
	ZoneItem:    "item",
	ZoneStation: "station",
	ZoneArea:    "area",
}

func (k ZoneKind) String() string {
	if name, ok := zoneKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseZoneKind converts a layout name to a ZoneKind
func ParseZoneKind(s string) (ZoneKind, error) {
	for k, name := range zoneKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown zone kind %q", s)
}

// EffectKind is what happens when an unlocked zone is used.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectGrantFlag
	EffectOpenProcedure
	EffectMessage
)

var effectKindNames = map[EffectKind]string{
	EffectNone:          "none",
	EffectGrantFlag:     "grant_flag",
	EffectOpenProcedure: "open_procedure",
	EffectMessage:       "message",
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEffectKind converts a layout name to an EffectKind. Empty means EffectNone.
func ParseEffectKind(s string) (EffectKind, error) {
	if s == "" {
		return EffectNone, nil
	}
	for k, name := range effectKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind %q", s)
}

// LockPolicy decides whether a locked zone also blocks movement.
type LockPolicy int

const (
	LockEnterable LockPolicy = iota // Locked zones can be walked through but not used
	LockSolid                       // Locked zones are impassable until unlocked
)

// ParseLockPolicy converts a layout name to a LockPolicy. Empty means LockEnterable.
func ParseLockPolicy(s string) (LockPolicy, error) {
	switch s {
	case "", "enterable":
		return LockEnterable, nil
	case "solid":
		return LockSolid, nil
	default:
		return 0, fmt.Errorf("unknown lock policy %q", s)
	}
}

func (p LockPolicy) String() string {
	if p == LockSolid {
		return "solid"
	}
	return "enterable"
}

// Effect describes what a zone does when used
type Effect struct {
	Kind      EffectKind
	Flag      Flag   // EffectGrantFlag
	Procedure string // EffectOpenProcedure
	Message   string
	Objective string // Replaces the session objective when non-empty
}

// Zone is a named rectangular region of a scene the player can interact with.
type Zone struct {
	ID          string
	Name        string
	Kind        ZoneKind
	Area        world.Rect
	Icon        rune   // Drawn over the zone's cells by renderers
	Description string // Hint text shown when the player is nearby

	RequiredFlag Flag   // Empty means the zone is never locked
	LockedReason string // Shown when interacting while locked
	LockPolicy   LockPolicy
	Solid        bool // Blocks movement regardless of lock state

	Effect          Effect
	OneShot         bool
	ConsumedMessage string // Shown when a consumed one-shot zone is used again

	locked   bool
	consumed bool
}

// Reset restores the zone to its initial state: locked if it has a
// requirement, and not consumed.
func (z *Zone) Reset() {
	z.locked = z.RequiredFlag != ""
	z.consumed = false
}

// Locked returns true if the zone's requirement is unmet
func (z *Zone) Locked() bool {
	return z.locked
}

// Consumed returns true if a one-shot zone has been used
func (z *Zone) Consumed() bool {
	return z.consumed
}

// Refresh re-evaluates the lock against the given flags.
// Returns true if the zone was unlocked by this call.
func (z *Zone) Refresh(flags FlagSet) bool {
	if z.RequiredFlag == "" {
		z.locked = false
		return false
	}
	was := z.locked
	z.locked = !flags.Has(z.RequiredFlag)
	return was && !z.locked
}

// Available returns true if using the zone would run its effect
func (z *Zone) Available() bool {
	if z.Effect.Kind == EffectNone {
		return false
	}
	return !z.OneShot || !z.consumed
}

// Consume marks a one-shot zone as used. Returns true only on the first call,
// like searching furniture that only holds its item once.
func (z *Zone) Consume() bool {
	if !z.OneShot {
		return true
	}
	if z.consumed {
		return false
	}
	z.consumed = true
	return true
}

// Blocks returns true if the zone currently prevents the player entering its cells
func (z *Zone) Blocks() bool {
	return z.Solid || (z.locked && z.LockPolicy == LockSolid)
}

// Covers returns true if (row, col) lies inside the zone
func (z *Zone) Covers(row, col int) bool {
	return z.Area.Contains(row, col)
}
