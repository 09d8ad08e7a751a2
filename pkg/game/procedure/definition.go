// Package procedure implements guided, ordered procedures such as the pool
// water test: reagent drops, verification questions and derived readings,
// driven by an explicit step-indexed state machine.
package procedure

import (
	"errors"
	"fmt"
	"strings"
)

// Observable names a reading produced by a step.
type Observable string

const (
	ObservableFreeChlorine     Observable = "free_chlorine"
	ObservableTotalChlorine    Observable = "total_chlorine"
	ObservableCombinedChlorine Observable = "combined_chlorine"
	ObservablePH               Observable = "ph"
)

// StepKind is the action a step expects.
type StepKind int

const (
	StepSupplyReagent StepKind = iota
	StepAnswerCheck
)

func (k StepKind) String() string {
	switch k {
	case StepSupplyReagent:
		return "supply_reagent"
	case StepAnswerCheck:
		return "answer_check"
	default:
		return "unknown"
	}
}

// ParseStepKind converts a layout name to a StepKind
func ParseStepKind(s string) (StepKind, error) {
	switch s {
	case "supply_reagent":
		return StepSupplyReagent, nil
	case "answer_check":
		return StepAnswerCheck, nil
	default:
		return 0, fmt.Errorf("unknown step kind %q", s)
	}
}

// Reagent is a test liquid added drop by drop.
type Reagent struct {
	ID     string
	Name   string
	Drops  int    // Target drop count
	Change string // Expected colour change, e.g. "turns clear"
}

// Label is the name shown to the player, with the ID when the two differ,
// e.g. "phenol red [PR]".
func (r *Reagent) Label() string {
	if r.Name == "" || strings.EqualFold(r.Name, r.ID) {
		return r.ID
	}
	return r.Name + " [" + r.ID + "]"
}

// Matches reports whether s names the reagent by ID or by name, ignoring case
// and surrounding space.
func (r *Reagent) Matches(s string) bool {
	s = strings.Join(strings.Fields(s), " ")
	return strings.EqualFold(s, r.ID) || (r.Name != "" && strings.EqualFold(s, r.Name))
}

// Choice is one candidate answer.
type Choice struct {
	Value   Reading
	Correct bool // Ignored for derived questions
}

// Derivation computes a reading from two recorded observables: From - Minus.
type Derivation struct {
	From  Observable
	Minus Observable
}

// Evaluate computes the derived reading from recorded observables
func (d Derivation) Evaluate(recorded map[Observable]Reading) (Reading, bool) {
	from, ok := recorded[d.From]
	if !ok {
		return 0, false
	}
	minus, ok := recorded[d.Minus]
	if !ok {
		return 0, false
	}
	return from - minus, true
}

// Question is a verification question with exactly one correct choice.
type Question struct {
	Prompt  string
	Choices []Choice
	Derive  *Derivation // When set, the correct choice is computed at answer time
}

// Step is one stage of a procedure. Its predecessor is the previous step.
type Step struct {
	Title      string
	Kind       StepKind
	Reagent    *Reagent   // StepSupplyReagent
	Question   *Question  // Required for StepAnswerCheck, optional otherwise
	Observable Observable // Recorded on a correct answer
}

// ObservableInfo describes how an observable is displayed and judged.
type ObservableInfo struct {
	Name  Observable
	Label string
	Unit  string
	Ideal Range
}

// Definition is the static description of a procedure.
type Definition struct {
	ID          string
	Name        string
	Grants      string // Progress flag folded into the player on completion
	Steps       []Step
	Observables []ObservableInfo
}

// Info returns the display info for an observable
func (d *Definition) Info(o Observable) (ObservableInfo, bool) {
	for _, info := range d.Observables {
		if info.Name == o {
			return info, true
		}
	}
	return ObservableInfo{}, false
}

// Reagent returns the reagent used by any step whose ID or name matches id
func (d *Definition) Reagent(id string) (*Reagent, bool) {
	for _, s := range d.Steps {
		if s.Reagent != nil && s.Reagent.Matches(id) {
			return s.Reagent, true
		}
	}
	return nil, false
}

// Reagents returns every reagent in step order
func (d *Definition) Reagents() []*Reagent {
	var out []*Reagent
	for _, s := range d.Steps {
		if s.Reagent != nil {
			out = append(out, s.Reagent)
		}
	}
	return out
}

// expectedReadings plays the definition through with every question answered
// correctly and returns the readings it would record.
func (d *Definition) expectedReadings() (map[Observable]Reading, error) {
	recorded := make(map[Observable]Reading)
	for i, s := range d.Steps {
		if s.Question == nil {
			continue
		}
		idx, err := s.Question.correctIndex(recorded)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, s.Title, err)
		}
		recorded[s.Observable] = s.Question.Choices[idx].Value
	}
	return recorded, nil
}

// correctIndex finds the single correct choice given the readings recorded so far.
func (q *Question) correctIndex(recorded map[Observable]Reading) (int, error) {
	if q.Derive != nil {
		want, ok := q.Derive.Evaluate(recorded)
		if !ok {
			return -1, fmt.Errorf("derivation %s - %s uses a reading not recorded by an earlier step", q.Derive.From, q.Derive.Minus)
		}
		idx := -1
		for i, c := range q.Choices {
			if c.Value != want {
				continue
			}
			if idx >= 0 {
				return -1, fmt.Errorf("derived value %s matches more than one choice", want)
			}
			idx = i
		}
		if idx < 0 {
			return -1, fmt.Errorf("derived value %s matches no choice", want)
		}
		return idx, nil
	}

	idx := -1
	for i, c := range q.Choices {
		if !c.Correct {
			continue
		}
		if idx >= 0 {
			return -1, errors.New("question has more than one correct choice")
		}
		idx = i
	}
	if idx < 0 {
		return -1, errors.New("question has no correct choice")
	}
	return idx, nil
}

// Validate checks the definition for problems that would make it impossible
// to complete. All problems are reported.
func (d *Definition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("procedure has no id"))
	}
	if len(d.Steps) == 0 {
		errs = append(errs, fmt.Errorf("procedure %s has no steps", d.ID))
	}

	seenReagents := make(map[string]bool)
	seenObservables := make(map[Observable]bool)
	for i, s := range d.Steps {
		where := fmt.Sprintf("procedure %s step %d", d.ID, i+1)
		switch s.Kind {
		case StepSupplyReagent:
			if s.Reagent == nil {
				errs = append(errs, fmt.Errorf("%s: supply step has no reagent", where))
				break
			}
			if s.Reagent.Drops <= 0 {
				errs = append(errs, fmt.Errorf("%s: reagent %s has no drop target", where, s.Reagent.ID))
			}
			// Players may type either the ID or the name, so both must be unique.
			names := []string{strings.ToLower(s.Reagent.ID)}
			if n := strings.ToLower(s.Reagent.Name); n != "" && n != names[0] {
				names = append(names, n)
			}
			for _, n := range names {
				if seenReagents[n] {
					errs = append(errs, fmt.Errorf("%s: reagent %s used by more than one step", where, n))
				}
				seenReagents[n] = true
			}
		case StepAnswerCheck:
			if s.Question == nil {
				errs = append(errs, fmt.Errorf("%s: answer check has no question", where))
			}
		}

		if s.Question == nil {
			continue
		}
		if len(s.Question.Choices) == 0 {
			errs = append(errs, fmt.Errorf("%s: question has no choices", where))
		}
		if s.Observable == "" {
			errs = append(errs, fmt.Errorf("%s: question records no observable", where))
		} else if seenObservables[s.Observable] {
			errs = append(errs, fmt.Errorf("%s: observable %s recorded twice", where, s.Observable))
		}
		seenObservables[s.Observable] = true
		if _, ok := d.Info(s.Observable); s.Observable != "" && !ok {
			errs = append(errs, fmt.Errorf("%s: observable %s has no display info", where, s.Observable))
		}
	}

	if len(errs) == 0 {
		if _, err := d.expectedReadings(); err != nil {
			errs = append(errs, fmt.Errorf("procedure %s: %w", d.ID, err))
		}
	}

	return errors.Join(errs...)
}
