package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/procedure"
	"lifeguard/pkg/game/setup"
)

func newSession(t *testing.T) *gameplay.Session {
	t.Helper()
	f, err := setup.Default()
	require.NoError(t, err)
	return gameplay.NewSession(f, gameplay.Options{})
}

func TestCellGlyph_Office(t *testing.T) {
	s := newSession(t)
	snap := s.Snapshot()

	assert.Equal(t, Glyph{Char: PlayerIcon, Style: StylePlayer}, CellGlyph(snap, 9, 7))
	assert.Equal(t, Glyph{Char: '#', Style: StyleWall}, CellGlyph(snap, 0, 0))
	assert.Equal(t, Glyph{Char: '.', Style: StyleFloor}, CellGlyph(snap, 5, 5))
	assert.Equal(t, Glyph{Char: IconExit, Style: StyleExit}, CellGlyph(snap, 1, 3))
	assert.Equal(t, Glyph{Char: 'D', Style: StyleZone}, CellGlyph(snap, 2, 3))
	assert.Equal(t, IconVoid, CellGlyph(snap, 40, 40).Char)
}

func TestCellGlyph_ZoneStates(t *testing.T) {
	s := newSession(t)
	g := s.Game()
	g.Scene = g.Facility.Scene("pool")
	snap := s.Snapshot()

	// The hot tub sits on plain floor, so its icon shows.
	assert.Equal(t, Glyph{Char: 'H', Style: StyleLocked}, CellGlyph(snap, 7, 1))
	assert.Equal(t, Glyph{Char: 'P', Style: StyleLocked}, CellGlyph(snap, 1, 7), "lap lane is locked")
	assert.Equal(t, Glyph{Char: '~', Style: StyleWater}, CellGlyph(snap, 1, 1))

	g.GrantFlag("has_key")
	snap = s.Snapshot()
	assert.Equal(t, Glyph{Char: 'H', Style: StyleZone}, CellGlyph(snap, 7, 1))
}

func TestFocusArea(t *testing.T) {
	s := newSession(t)
	_, ok := FocusArea(s.Snapshot())
	assert.False(t, ok, "nothing in reach at the start")

	g := s.Game()
	g.Player.Pos.Row, g.Player.Pos.Col = 3, 7
	area, ok := FocusArea(s.Snapshot())
	require.True(t, ok)
	assert.True(t, area.Contains(2, 3), "front desk is focused")
}

func TestStatusLines(t *testing.T) {
	s := newSession(t)
	lines := StatusLines(s.Snapshot())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Objective:")
	assert.Equal(t, "Inventory: (empty)", lines[1])

	s.Game().GrantFlag("has_key")
	assert.Equal(t, "Inventory: Key", StatusLines(s.Snapshot())[1])
	s.Game().GrantFlag("water_test_complete")
	assert.Equal(t, "Inventory: Key, Water test passed", StatusLines(s.Snapshot())[1])
}

func TestFlagLabelFallsBackToName(t *testing.T) {
	assert.Equal(t, "Advanced training", flagLabel("advanced_unlocked"))
	assert.Equal(t, "mystery_flag", flagLabel("mystery_flag"))
}

func TestDropBar(t *testing.T) {
	assert.Equal(t, "[###..] 3/5", DropBar(procedure.DropLevel{Drops: 3, Target: 5}))
	assert.Equal(t, "[.....] 0/5", DropBar(procedure.DropLevel{Drops: 0, Target: 5}))
	assert.Equal(t, "[#####] 5/5", DropBar(procedure.DropLevel{Drops: 5, Target: 5}))
}

func TestProcedureLines(t *testing.T) {
	assert.Nil(t, ProcedureLines(nil))

	s := newSession(t)
	g := s.Game()
	g.Player.Pos.Row, g.Player.Pos.Col = 3, 10
	s.Interact()
	snap := s.Snapshot()
	require.NotNil(t, snap.Procedure)

	lines := ProcedureLines(snap.Procedure)
	assert.Equal(t, "WATER TEST", lines[0])
	assert.Equal(t, "Step 1/5: Prepare the sample", lines[1])
	assert.Contains(t, lines, "1) Add 5 drops of 001 (turns clear)")
	assert.Contains(t, lines, "> 001             [.....] 0/5")
	assert.Contains(t, lines, "  phenol red [PR] [.....] 0/5")
	assert.Contains(t, lines, "4) Add 5 drops of phenol red [PR] (turns orange-red)")
	assert.Contains(t, HelpLine(snap), "add <reagent>")
}

func TestHelpLine(t *testing.T) {
	s := newSession(t)
	assert.Contains(t, HelpLine(s.Snapshot()), "arrows/hjkl: move")
}
