package tui

import (
	"bytes"
	"io"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/setup"
)

// scripted returns a reader that replays commands and then reports EOF.
func scripted(commands ...string) func() (string, error) {
	return func() (string, error) {
		if len(commands) == 0 {
			return "", io.EOF
		}
		next := commands[0]
		commands = commands[1:]
		return next, nil
	}
}

func newRenderer(t *testing.T, commands ...string) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	color.Disable()
	var out bytes.Buffer
	r := &TUIRenderer{out: &out, readInput: scripted(commands...)}
	require.NoError(t, r.Init())
	return r, &out
}

func newSession(t *testing.T) *gameplay.Session {
	t.Helper()
	f, err := setup.Default()
	require.NoError(t, err)
	return gameplay.NewSession(f, gameplay.Options{})
}

func TestRun_PicksUpKey(t *testing.T) {
	s := newSession(t)

	r, out := newRenderer(t, "arrow_up", "arrow_up", "arrow_up", "arrow_up", "arrow_up", "arrow_up", "e", "q")
	require.NoError(t, r.Run(s))

	assert.True(t, s.Quit())
	assert.True(t, s.Game().HasFlag("has_key"))
	assert.Contains(t, out.String(), "You picked up the KEY!")
	assert.Contains(t, out.String(), "FRONT OFFICE")
}

func TestRun_WaterTestCommands(t *testing.T) {
	s := newSession(t)
	s.Game().Player.Pos.Row, s.Game().Player.Pos.Col = 3, 10

	r, out := newRenderer(t, "e", "add 001", "a 001", "answer 1")
	require.NoError(t, r.Run(s))

	require.NotNil(t, s.Procedure())
	assert.Equal(t, 2, s.Procedure().Drops(0))
	assert.Contains(t, out.String(), "WATER TEST")
	assert.Contains(t, out.String(), "[##...] 2/5")
}

func TestRun_WaterTestByReagentName(t *testing.T) {
	s := newSession(t)
	s.Game().Player.Pos.Row, s.Game().Player.Pos.Col = 3, 10

	var commands []string
	add := func(reagent string) {
		for i := 0; i < 5; i++ {
			commands = append(commands, "add "+reagent)
		}
	}
	commands = append(commands, "e")
	add("001")
	add("002")
	commands = append(commands, "2")
	add("003")
	commands = append(commands, "2", "2")
	add("phenol red")
	commands = append(commands, "2", "x")

	r, out := newRenderer(t, commands...)
	require.NoError(t, r.Run(s))

	assert.Nil(t, s.Procedure())
	assert.True(t, s.Game().HasFlag(entities.FlagWaterTestComplete))
	assert.Contains(t, out.String(), "phenol red [PR]")
	assert.NotContains(t, out.String(), "There is no reagent")
}

func TestRenderFrame_Map(t *testing.T) {
	s := newSession(t)

	r, out := newRenderer(t)
	r.RenderFrame(s.Snapshot())

	assert.Contains(t, out.String(), "Messages")
	assert.Contains(t, out.String(), "Objective:")
	assert.Contains(t, out.String(), "@")
}
