package procedure

import (
	"strings"

	"lifeguard/pkg/game/text"
)

// DropLevel is the fill state of one reagent.
type DropLevel struct {
	Reagent string
	Name    string
	Drops   int
	Target  int
	Current bool
}

// SummaryLine reports one recorded reading against its ideal range.
type SummaryLine struct {
	Observable Observable
	Label      string
	Value      Reading
	Unit       string
	Status     Status
	Ideal      Range
}

// String renders the line for display
func (l SummaryLine) String() string {
	return text.Tf("SUMMARY_LINE", l.Label, l.Value, l.Unit, l.Status, l.Ideal.Min, l.Ideal.Max)
}

// String returns the translated status name
func (s Status) String() string {
	switch s {
	case StatusLow:
		return text.T("STATUS_LOW")
	case StatusHigh:
		return text.T("STATUS_HIGH")
	default:
		return text.T("STATUS_OK")
	}
}

// View is a read-only copy of the procedure state for renderers.
type View struct {
	ID           string
	Name         string
	Phase        Phase
	Step         int // One-based; 0 once completed
	Steps        int
	StepTitle    string
	Instructions []string
	Drops        []DropLevel
	Question     string
	Choices      []string
	Readings     []SummaryLine
	Message      string
}

// Instructions lists every reagent with its expected colour change, in order.
func (d *Definition) Instructions() []string {
	var lines []string
	for i, r := range d.Reagents() {
		lines = append(lines, text.Tf("PROC_INSTRUCTION", i+1, r.Drops, r.Label(), r.Change))
	}
	return lines
}

// Summary reports every recorded reading, in recording order, against its ideal range.
func (p *Procedure) Summary() []SummaryLine {
	lines := make([]SummaryLine, 0, len(p.order))
	for _, o := range p.order {
		v := p.recorded[o]
		line := SummaryLine{Observable: o, Label: string(o), Value: v}
		if info, ok := p.def.Info(o); ok {
			line.Label = info.Label
			line.Unit = info.Unit
			line.Ideal = info.Ideal
			line.Status = info.Ideal.Classify(v)
		}
		lines = append(lines, line)
	}
	return lines
}

// View returns a snapshot of the procedure
func (p *Procedure) View() View {
	v := View{
		ID:           p.def.ID,
		Name:         p.def.Name,
		Phase:        p.phase,
		Steps:        len(p.def.Steps),
		Instructions: p.def.Instructions(),
		Readings:     p.Summary(),
		Message:      p.message,
	}

	for i, s := range p.def.Steps {
		if s.Reagent == nil {
			continue
		}
		v.Drops = append(v.Drops, DropLevel{
			Reagent: s.Reagent.ID,
			Name:    s.Reagent.Label(),
			Drops:   p.drops[i],
			Target:  s.Reagent.Drops,
			Current: i == p.step && p.phase != PhaseCompleted,
		})
	}

	step := p.CurrentStep()
	if step == nil {
		return v
	}
	v.Step = p.step + 1
	v.StepTitle = step.Title
	if p.phase == PhaseAwaitingAnswer {
		v.Question = text.T(step.Question.Prompt)
		for _, c := range step.Question.Choices {
			choice := c.Value.String()
			if info, ok := p.def.Info(step.Observable); ok && info.Unit != "" {
				choice = strings.TrimSpace(text.Tf("PROC_CHOICE", choice, info.Unit))
			}
			v.Choices = append(v.Choices, choice)
		}
	}
	return v
}
