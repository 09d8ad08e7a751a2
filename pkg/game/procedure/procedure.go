package procedure

import (
	"lifeguard/pkg/game/text"
)

// Phase is the state of a running procedure.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseAwaitingAnswer
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// RejectReason says why an action was refused. Refused actions change nothing.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonCompleted
	ReasonAwaitingAnswer
	ReasonNotAwaitingAnswer
	ReasonUnknownReagent
	ReasonOutOfOrder
	ReasonSaturated
	ReasonInvalidChoice
	ReasonMissingReading
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCompleted:
		return "completed"
	case ReasonAwaitingAnswer:
		return "awaiting_answer"
	case ReasonNotAwaitingAnswer:
		return "not_awaiting_answer"
	case ReasonUnknownReagent:
		return "unknown_reagent"
	case ReasonOutOfOrder:
		return "out_of_order"
	case ReasonSaturated:
		return "saturated"
	case ReasonInvalidChoice:
		return "invalid_choice"
	case ReasonMissingReading:
		return "missing_reading"
	default:
		return "unknown"
	}
}

// Result reports the effect of a single action.
type Result struct {
	Accepted  bool
	Reason    RejectReason
	Correct   bool // Answer only
	Advanced  bool // The step index moved forward
	Completed bool
	Message   string
}

// Procedure is one running instance of a Definition. The zero value is not
// usable; create instances with New.
type Procedure struct {
	def *Definition

	phase    Phase
	step     int
	drops    []int
	recorded map[Observable]Reading
	order    []Observable
	message  string
}

// New creates an opened procedure for def
func New(def *Definition) *Procedure {
	p := &Procedure{def: def}
	p.Open()
	return p
}

// Open resets every counter, reading and answer and shows the first prompt.
// Calling it again at any point starts over.
func (p *Procedure) Open() string {
	p.step = 0
	p.drops = make([]int, len(p.def.Steps))
	p.recorded = make(map[Observable]Reading)
	p.order = nil
	p.phase = PhaseNotStarted
	if len(p.def.Steps) > 0 && p.def.Steps[0].Kind == StepAnswerCheck {
		p.phase = PhaseAwaitingAnswer
	}
	p.message = p.prompt()
	return p.message
}

// Definition returns the static definition
func (p *Procedure) Definition() *Definition {
	return p.def
}

// Phase returns the current phase
func (p *Procedure) Phase() Phase {
	return p.phase
}

// StepIndex returns the zero-based current step. Equal to the step count once completed.
func (p *Procedure) StepIndex() int {
	return p.step
}

// Completed returns true once the last step has been satisfied
func (p *Procedure) Completed() bool {
	return p.phase == PhaseCompleted
}

// Message returns the last prompt or feedback text
func (p *Procedure) Message() string {
	return p.message
}

// Drops returns the drop count for the step at index i
func (p *Procedure) Drops(i int) int {
	if i < 0 || i >= len(p.drops) {
		return 0
	}
	return p.drops[i]
}

// Reading returns a recorded observable
func (p *Procedure) Reading(o Observable) (Reading, bool) {
	r, ok := p.recorded[o]
	return r, ok
}

// Recorded returns the observables in the order they were recorded
func (p *Procedure) Recorded() []Observable {
	out := make([]Observable, len(p.order))
	copy(out, p.order)
	return out
}

// CurrentStep returns the step being worked on, or nil once completed
func (p *Procedure) CurrentStep() *Step {
	if p.step >= len(p.def.Steps) {
		return nil
	}
	return &p.def.Steps[p.step]
}

// SupplyReagent adds one drop of the reagent. It is accepted only when the
// reagent belongs to the current step and its count is below target.
func (p *Procedure) SupplyReagent(id string) Result {
	switch p.phase {
	case PhaseCompleted:
		return reject(ReasonCompleted, text.T("REJECT_COMPLETED"))
	case PhaseAwaitingAnswer:
		return reject(ReasonAwaitingAnswer, text.T("REJECT_AWAITING_ANSWER"))
	}

	reagent, ok := p.def.Reagent(id)
	if !ok {
		return reject(ReasonUnknownReagent, text.Tf("REJECT_UNKNOWN_REAGENT", id))
	}

	step := p.CurrentStep()
	if step == nil {
		return reject(ReasonCompleted, text.T("REJECT_COMPLETED"))
	}
	if step.Kind != StepSupplyReagent || step.Reagent.ID != reagent.ID {
		return reject(ReasonOutOfOrder, text.Tf("REJECT_OUT_OF_ORDER", p.expecting()))
	}
	if p.drops[p.step] >= reagent.Drops {
		return reject(ReasonSaturated, text.Tf("REJECT_SATURATED", reagent.Name))
	}

	p.drops[p.step]++
	p.phase = PhaseInProgress
	p.message = text.Tf("PROC_DROP", reagent.Name, p.drops[p.step], reagent.Drops)
	res := Result{Accepted: true}

	if p.drops[p.step] == reagent.Drops {
		colour := text.Tf("PROC_COLOUR", reagent.Change)
		if step.Question != nil {
			p.phase = PhaseAwaitingAnswer
			p.message = colour + " " + p.prompt()
		} else {
			res.Advanced = true
			p.advance()
			p.message = colour + " " + p.message
		}
	}

	res.Completed = p.Completed()
	res.Message = p.message
	return res
}

// Answer checks a zero-based choice against the current question. A wrong
// answer changes nothing but the message.
func (p *Procedure) Answer(choice int) Result {
	if p.phase != PhaseAwaitingAnswer {
		if p.phase == PhaseCompleted {
			return reject(ReasonCompleted, text.T("REJECT_COMPLETED"))
		}
		return reject(ReasonNotAwaitingAnswer, text.T("REJECT_NOT_AWAITING"))
	}

	step := p.CurrentStep()
	q := step.Question
	if choice < 0 || choice >= len(q.Choices) {
		return reject(ReasonInvalidChoice, text.T("REJECT_INVALID_CHOICE"))
	}

	correct, err := q.correctIndex(p.recorded)
	if err != nil {
		return reject(ReasonMissingReading, text.T("REJECT_MISSING_READING"))
	}

	if choice != correct {
		p.message = text.T("PROC_RETRY") + " " + p.prompt()
		return Result{Accepted: true, Message: p.message}
	}

	value := q.Choices[choice].Value
	p.recorded[step.Observable] = value
	p.order = append(p.order, step.Observable)
	feedback := text.Tf("PROC_CORRECT", p.label(step.Observable), p.format(step.Observable, value))

	p.advance()
	p.message = feedback + " " + p.message
	return Result{Accepted: true, Correct: true, Advanced: true, Completed: p.Completed(), Message: p.message}
}

// advance moves to the next step and sets its prompt.
func (p *Procedure) advance() {
	p.step++
	switch {
	case p.step >= len(p.def.Steps):
		p.phase = PhaseCompleted
	case p.def.Steps[p.step].Kind == StepAnswerCheck:
		p.phase = PhaseAwaitingAnswer
	default:
		p.phase = PhaseInProgress
	}
	p.message = p.prompt()
}

// prompt is the instruction for the current state.
func (p *Procedure) prompt() string {
	step := p.CurrentStep()
	if step == nil {
		return text.T("PROC_COMPLETE")
	}
	total := len(p.def.Steps)
	if p.phase == PhaseAwaitingAnswer {
		return text.Tf("PROC_QUESTION", p.step+1, total, text.T(step.Question.Prompt))
	}
	return text.Tf("PROC_ADD_REAGENT", p.step+1, total, step.Reagent.Drops, step.Reagent.Label())
}

// expecting names what the current step is waiting for.
func (p *Procedure) expecting() string {
	step := p.CurrentStep()
	if step.Reagent != nil {
		return step.Reagent.Label()
	}
	return step.Title
}

func (p *Procedure) label(o Observable) string {
	if info, ok := p.def.Info(o); ok {
		return info.Label
	}
	return string(o)
}

func (p *Procedure) format(o Observable, r Reading) string {
	if info, ok := p.def.Info(o); ok && info.Unit != "" {
		return r.String() + " " + info.Unit
	}
	return r.String()
}

func reject(reason RejectReason, msg string) Result {
	return Result{Reason: reason, Message: msg}
}
