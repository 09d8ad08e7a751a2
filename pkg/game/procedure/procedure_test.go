package procedure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(s string) Reading {
	v, err := ParseReading(s)
	if err != nil {
		panic(err)
	}
	return v
}

// waterTest mirrors the facility's chlorine and pH test.
func waterTest(free, total string) *Definition {
	return &Definition{
		ID:   "water_test",
		Name: "Water Test",
		Steps: []Step{
			{Title: "Buffer", Kind: StepSupplyReagent, Reagent: &Reagent{ID: "001", Name: "001", Drops: 5, Change: "turns clear"}},
			{
				Title: "Free chlorine", Kind: StepSupplyReagent,
				Reagent: &Reagent{ID: "002", Name: "002", Drops: 5, Change: "turns light pink"},
				Question: &Question{Prompt: "Free chlorine?", Choices: []Choice{
					{Value: r("1.0")}, {Value: r(free), Correct: true}, {Value: r("5.0")},
				}},
				Observable: ObservableFreeChlorine,
			},
			{
				Title: "Total chlorine", Kind: StepSupplyReagent,
				Reagent: &Reagent{ID: "003", Name: "003", Drops: 5, Change: "turns darker pink"},
				Question: &Question{Prompt: "Total chlorine?", Choices: []Choice{
					{Value: r(total), Correct: true}, {Value: r("4.0")},
				}},
				Observable: ObservableTotalChlorine,
			},
			{
				Title: "Combined chlorine", Kind: StepAnswerCheck,
				Question: &Question{
					Prompt:  "Combined chlorine?",
					Choices: []Choice{{Value: r("0.0")}, {Value: r("0.5")}, {Value: r("1.0")}, {Value: r("4.5")}},
					Derive:  &Derivation{From: ObservableTotalChlorine, Minus: ObservableFreeChlorine},
				},
				Observable: ObservableCombinedChlorine,
			},
		},
		Observables: []ObservableInfo{
			{Name: ObservableFreeChlorine, Label: "Free chlorine", Unit: "ppm", Ideal: Range{Min: r("1.0"), Max: r("3.0")}},
			{Name: ObservableTotalChlorine, Label: "Total chlorine", Unit: "ppm", Ideal: Range{Min: r("1.0"), Max: r("3.5")}},
			{Name: ObservableCombinedChlorine, Label: "Combined chlorine", Unit: "ppm", Ideal: Range{Min: r("0.0"), Max: r("0.2")}},
		},
	}
}

func drops(t *testing.T, p *Procedure, id string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		res := p.SupplyReagent(id)
		require.True(t, res.Accepted, "drop %d of %s rejected: %s", i+1, id, res.Message)
	}
}

func TestParseReading(t *testing.T) {
	tests := []struct {
		in   string
		want Reading
		ok   bool
	}{
		{"2.5", 25, true},
		{"2", 20, true},
		{"0.0", 0, true},
		{"-0.5", -5, true},
		{"7.4", 74, true},
		{"2.55", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{".5", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseReading(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, "-0.5", Reading(-5).String())
	assert.Equal(t, "2.5", Reading(25).String())
}

func TestDefinitionValidate(t *testing.T) {
	require.NoError(t, waterTest("2.0", "2.5").Validate())

	twoCorrect := waterTest("2.0", "2.5")
	twoCorrect.Steps[1].Question.Choices[0].Correct = true
	assert.Error(t, twoCorrect.Validate())

	noMatch := waterTest("2.0", "3.5") // combined 1.5 is not a choice
	assert.Error(t, noMatch.Validate())

	ambiguous := waterTest("2.0", "2.5")
	ambiguous.Steps[3].Question.Choices = append(ambiguous.Steps[3].Question.Choices, Choice{Value: r("0.5")})
	assert.Error(t, ambiguous.Validate())

	reordered := waterTest("2.0", "2.5")
	reordered.Steps[1], reordered.Steps[3] = reordered.Steps[3], reordered.Steps[1]
	assert.Error(t, reordered.Validate(), "derivation before its inputs are recorded")
}

func TestWaterTestScenario(t *testing.T) {
	p := New(waterTest("2.0", "2.5"))
	assert.Equal(t, PhaseNotStarted, p.Phase())

	drops(t, p, "001", 5)
	assert.Equal(t, PhaseInProgress, p.Phase())
	assert.Equal(t, 1, p.StepIndex())

	drops(t, p, "002", 5)
	assert.Equal(t, PhaseAwaitingAnswer, p.Phase())

	res := p.Answer(1)
	assert.True(t, res.Correct)
	free, ok := p.Reading(ObservableFreeChlorine)
	require.True(t, ok)
	assert.Equal(t, r("2.0"), free)
	assert.Equal(t, 2, p.StepIndex())

	drops(t, p, "003", 5)
	require.Equal(t, PhaseAwaitingAnswer, p.Phase())
	require.True(t, p.Answer(0).Correct)

	// Combined is validated against the recorded readings: 2.5 - 2.0.
	assert.Equal(t, PhaseAwaitingAnswer, p.Phase())
	assert.False(t, p.Answer(0).Correct)
	res = p.Answer(1)
	assert.True(t, res.Correct)
	assert.True(t, res.Completed)
	assert.True(t, p.Completed())

	combined, _ := p.Reading(ObservableCombinedChlorine)
	assert.Equal(t, r("0.5"), combined)

	summary := p.Summary()
	require.Len(t, summary, 3)
	assert.Equal(t, StatusOK, summary[0].Status)
	assert.Equal(t, StatusHigh, summary[2].Status)
}

func TestDerivedStepFollowsUpstreamValues(t *testing.T) {
	p := New(waterTest("1.0", "2.0"))
	drops(t, p, "001", 5)
	drops(t, p, "002", 5)
	require.True(t, p.Answer(1).Correct)
	drops(t, p, "003", 5)
	require.True(t, p.Answer(0).Correct)

	assert.False(t, p.Answer(1).Correct, "0.5 is not 2.0 - 1.0")
	assert.True(t, p.Answer(2).Correct, "1.0 is 2.0 - 1.0")
}

func TestReagentCountersSaturate(t *testing.T) {
	p := New(waterTest("2.0", "2.5"))
	drops(t, p, "001", 5)
	drops(t, p, "002", 5)

	before := p.View()
	res := p.SupplyReagent("002")
	assert.False(t, res.Accepted)
	assert.Equal(t, ReasonAwaitingAnswer, res.Reason)
	assert.Equal(t, before, p.View())
	assert.Equal(t, 5, p.Drops(1))
}

func TestOutOfOrderRejected(t *testing.T) {
	p := New(waterTest("2.0", "2.5"))
	before := p.View()

	res := p.SupplyReagent("003")
	assert.False(t, res.Accepted)
	assert.Equal(t, ReasonOutOfOrder, res.Reason)

	res = p.SupplyReagent("999")
	assert.Equal(t, ReasonUnknownReagent, res.Reason)

	res = p.Answer(0)
	assert.Equal(t, ReasonNotAwaitingAnswer, res.Reason)

	assert.Equal(t, before, p.View(), "rejections must not change state or message")
}

func TestWrongAnswerChangesNothingButMessage(t *testing.T) {
	p := New(waterTest("2.0", "2.5"))
	drops(t, p, "001", 5)
	drops(t, p, "002", 5)

	before := p.View()
	res := p.Answer(0)
	assert.True(t, res.Accepted)
	assert.False(t, res.Correct)

	after := p.View()
	assert.Equal(t, before.Phase, after.Phase)
	assert.Equal(t, before.Step, after.Step)
	assert.Equal(t, before.Drops, after.Drops)
	assert.Empty(t, after.Readings)
	assert.NotEqual(t, before.Message, after.Message)

	assert.Equal(t, ReasonInvalidChoice, p.Answer(9).Reason)
}

func TestOpenCloseOpenEqualsFreshOpen(t *testing.T) {
	def := waterTest("2.0", "2.5")
	fresh := New(def).View()

	p := New(def)
	drops(t, p, "001", 5)
	drops(t, p, "002", 3)
	p.Open()
	assert.Equal(t, fresh, p.View())

	p.Open()
	assert.Equal(t, fresh, p.View(), "open is idempotent")
}

func TestCompletedRejectsEverything(t *testing.T) {
	def := waterTest("2.0", "2.5")
	def.Steps = def.Steps[:1]
	p := New(def)
	drops(t, p, "001", 5)
	require.True(t, p.Completed())

	assert.Equal(t, ReasonCompleted, p.SupplyReagent("001").Reason)
	assert.Equal(t, ReasonCompleted, p.Answer(0).Reason)
	assert.Nil(t, p.CurrentStep())
	assert.Equal(t, 0, p.View().Step)
}

func TestInstructionsListColourChanges(t *testing.T) {
	lines := waterTest("2.0", "2.5").Instructions()
	assert.Equal(t, []string{
		"1) Add 5 drops of 001 (turns clear)",
		"2) Add 5 drops of 002 (turns light pink)",
		"3) Add 5 drops of 003 (turns darker pink)",
	}, lines)
}

func TestReagentsResolveByNameOrID(t *testing.T) {
	def := &Definition{
		ID:   "ph_test",
		Name: "pH Test",
		Steps: []Step{
			{Title: "pH", Kind: StepSupplyReagent, Reagent: &Reagent{ID: "PR", Name: "phenol red", Drops: 2, Change: "turns orange-red"}},
		},
	}
	require.NoError(t, def.Validate())

	for _, in := range []string{"PR", "pr", "phenol red", "Phenol Red", "  phenol   red "} {
		got, ok := def.Reagent(in)
		require.True(t, ok, in)
		assert.Equal(t, "PR", got.ID)
	}
	_, ok := def.Reagent("phenol")
	assert.False(t, ok)

	assert.Equal(t, "phenol red [PR]", def.Steps[0].Reagent.Label())
	assert.Equal(t, []string{"1) Add 2 drops of phenol red [PR] (turns orange-red)"}, def.Instructions())

	p := New(def)
	assert.True(t, p.SupplyReagent("phenol red").Accepted)
	assert.True(t, p.SupplyReagent("pr").Accepted)
	assert.True(t, p.Completed())
	assert.Equal(t, "phenol red [PR]", p.View().Drops[0].Name)
}

func TestValidateRejectsAmbiguousReagentNames(t *testing.T) {
	def := &Definition{
		ID:   "clash",
		Name: "Clash",
		Steps: []Step{
			{Title: "One", Kind: StepSupplyReagent, Reagent: &Reagent{ID: "A", Name: "b", Drops: 1}},
			{Title: "Two", Kind: StepSupplyReagent, Reagent: &Reagent{ID: "B", Name: "other", Drops: 1}},
		},
	}
	err := def.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "used by more than one step")
}
