// Package setup builds the facility from its YAML layout and refuses
// layouts that could not be played through.
package setup

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lifeguard/pkg/engine/world"
	"lifeguard/pkg/game/entities"
	"lifeguard/pkg/game/procedure"
	gameworld "lifeguard/pkg/game/world"
)

// ErrInvalidConfiguration is wrapped by every error returned for a bad layout.
var ErrInvalidConfiguration = errors.New("invalid configuration")

//go:embed orientation.yaml
var defaultLayout []byte

// Layout is the YAML form of a facility.
type Layout struct {
	Name       string            `yaml:"name"`
	Initial    string            `yaml:"initial"`
	Start      world.Position    `yaml:"start"`
	Speed      int               `yaml:"speed"`
	Reach      map[string]int    `yaml:"reach"`
	Scenes     []SceneLayout     `yaml:"scenes"`
	Procedures []ProcedureLayout `yaml:"procedures"`
}

type SceneLayout struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Objective   string             `yaml:"objective"`
	Blocking    string             `yaml:"blocking"`
	Spawn       world.Position     `yaml:"spawn"`
	Map         []string           `yaml:"map"`
	Zones       []ZoneLayout       `yaml:"zones"`
	Transitions []TransitionLayout `yaml:"transitions"`
}

type ZoneLayout struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Kind            string       `yaml:"kind"`
	Area            world.Rect   `yaml:"area"`
	Icon            string       `yaml:"icon"`
	Description     string       `yaml:"description"`
	Requires        string       `yaml:"requires"`
	LockedReason    string       `yaml:"locked_reason"`
	LockPolicy      string       `yaml:"lock_policy"`
	Solid           bool         `yaml:"solid"`
	OneShot         bool         `yaml:"one_shot"`
	ConsumedMessage string       `yaml:"consumed_message"`
	Effect          EffectLayout `yaml:"effect"`
}

type EffectLayout struct {
	Kind      string `yaml:"kind"`
	Flag      string `yaml:"flag"`
	Procedure string `yaml:"procedure"`
	Message   string `yaml:"message"`
	Objective string `yaml:"objective"`
}

type TransitionLayout struct {
	Area      world.Rect     `yaml:"area"`
	Target    string         `yaml:"target"`
	Spawn     world.Position `yaml:"spawn"`
	Objective string         `yaml:"objective"`
}

type ProcedureLayout struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Grants      string             `yaml:"grants"`
	Observables []ObservableLayout `yaml:"observables"`
	Steps       []StepLayout       `yaml:"steps"`
}

type ObservableLayout struct {
	Name  string    `yaml:"name"`
	Label string    `yaml:"label"`
	Unit  string    `yaml:"unit"`
	Ideal [2]string `yaml:"ideal"`
}

type StepLayout struct {
	Title      string          `yaml:"title"`
	Kind       string          `yaml:"kind"`
	Reagent    *ReagentLayout  `yaml:"reagent"`
	Question   *QuestionLayout `yaml:"question"`
	Observable string          `yaml:"observable"`
}

type ReagentLayout struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Drops  int    `yaml:"drops"`
	Change string `yaml:"change"`
}

type QuestionLayout struct {
	Prompt  string        `yaml:"prompt"`
	Choices []string      `yaml:"choices"`
	Correct *int          `yaml:"correct"`
	Derive  *DeriveLayout `yaml:"derive"`
}

type DeriveLayout struct {
	From  string `yaml:"from"`
	Minus string `yaml:"minus"`
}

// Default builds the embedded orientation facility
func Default() (*gameworld.Facility, error) {
	return Parse(defaultLayout)
}

// LoadFile builds a facility from a layout file; an empty path means the embedded layout.
func LoadFile(path string) (*gameworld.Facility, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*gameworld.Facility, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: decode layout: %w", ErrInvalidConfiguration, err)
	}
	return Build(&l)
}

// Build converts a decoded layout into a facility, reporting every problem
// found wrapped in ErrInvalidConfiguration.
func Build(l *Layout) (*gameworld.Facility, error) {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	f := &gameworld.Facility{
		Name:       l.Name,
		Scenes:     make(map[gameworld.SceneID]*gameworld.Scene),
		Initial:    gameworld.SceneID(l.Initial),
		Start:      l.Start,
		Speed:      l.Speed,
		Reach:      make(map[entities.ZoneKind]int),
		Procedures: make(map[string]*procedure.Definition),
	}
	if f.Speed == 0 {
		f.Speed = gameworld.DefaultSpeed
	}
	if f.Speed < 0 {
		fail("speed %d is negative", f.Speed)
	}

	for name, reach := range l.Reach {
		kind, err := entities.ParseZoneKind(name)
		if err != nil {
			fail("reach: %w", err)
			continue
		}
		if reach < 0 {
			fail("reach for %s is negative", name)
		}
		f.Reach[kind] = reach
	}

	for _, pl := range l.Procedures {
		def, err := buildProcedure(pl)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := f.Procedures[def.ID]; dup {
			fail("duplicate procedure %q", def.ID)
			continue
		}
		f.Procedures[def.ID] = def
	}

	for _, sl := range l.Scenes {
		scene, err := buildScene(sl)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := f.Scenes[scene.ID]; dup {
			fail("duplicate scene %q", scene.ID)
			continue
		}
		f.Scenes[scene.ID] = scene
		f.SceneOrder = append(f.SceneOrder, scene.ID)
	}

	// Structural problems make the facility checks meaningless.
	if len(errs) == 0 {
		errs = append(errs, Validate(f)...)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, errors.Join(errs...))
	}

	f.Reset(entities.NewFlagSet())
	return f, nil
}

func buildScene(sl SceneLayout) (*gameworld.Scene, error) {
	var errs []error
	where := fmt.Sprintf("scene %q", sl.ID)
	if sl.ID == "" {
		errs = append(errs, errors.New("scene without id"))
	}

	grid, err := world.ParseGrid(sl.Map, []rune(sl.Blocking))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	if err := grid.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", where, err))
	}

	scene := &gameworld.Scene{
		ID:        gameworld.SceneID(sl.ID),
		Name:      sl.Name,
		Grid:      grid,
		Spawn:     sl.Spawn,
		Objective: sl.Objective,
	}
	if scene.Name == "" {
		scene.Name = sl.ID
	}

	for _, zl := range sl.Zones {
		z, err := buildZone(zl)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
			continue
		}
		scene.Zones = append(scene.Zones, z)
	}

	for _, tl := range sl.Transitions {
		scene.Transitions = append(scene.Transitions, gameworld.Transition{
			Area:      tl.Area,
			Target:    gameworld.SceneID(tl.Target),
			Spawn:     tl.Spawn,
			Objective: tl.Objective,
		})
	}

	return scene, errors.Join(errs...)
}

func buildZone(zl ZoneLayout) (*entities.Zone, error) {
	var errs []error
	kind, err := entities.ParseZoneKind(zl.Kind)
	if err != nil {
		errs = append(errs, err)
	}
	policy, err := entities.ParseLockPolicy(zl.LockPolicy)
	if err != nil {
		errs = append(errs, err)
	}
	effect, err := entities.ParseEffectKind(zl.Effect.Kind)
	if err != nil {
		errs = append(errs, err)
	}
	if zl.ID == "" {
		errs = append(errs, errors.New("zone without id"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("zone %q: %w", zl.ID, errors.Join(errs...))
	}

	z := &entities.Zone{
		ID:           zl.ID,
		Name:         zl.Name,
		Kind:         kind,
		Area:         zl.Area,
		Description:  zl.Description,
		RequiredFlag: entities.Flag(zl.Requires),
		LockedReason: zl.LockedReason,
		LockPolicy:   policy,
		Solid:        zl.Solid,
		Effect: entities.Effect{
			Kind:      effect,
			Flag:      entities.Flag(zl.Effect.Flag),
			Procedure: zl.Effect.Procedure,
			Message:   zl.Effect.Message,
			Objective: zl.Effect.Objective,
		},
		OneShot:         zl.OneShot,
		ConsumedMessage: zl.ConsumedMessage,
	}
	if z.Name == "" {
		z.Name = z.ID
	}
	if icon := []rune(zl.Icon); len(icon) > 0 {
		z.Icon = icon[0]
	}
	return z, nil
}

func buildProcedure(pl ProcedureLayout) (*procedure.Definition, error) {
	var errs []error
	where := fmt.Sprintf("procedure %q", pl.ID)
	reading := func(what, s string) procedure.Reading {
		r, err := procedure.ParseReading(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", where, what, err))
		}
		return r
	}

	def := &procedure.Definition{ID: pl.ID, Name: pl.Name, Grants: pl.Grants}
	if def.Name == "" {
		def.Name = def.ID
	}

	for _, ol := range pl.Observables {
		def.Observables = append(def.Observables, procedure.ObservableInfo{
			Name:  procedure.Observable(ol.Name),
			Label: ol.Label,
			Unit:  ol.Unit,
			Ideal: procedure.Range{
				Min: reading(ol.Name+" ideal min", ol.Ideal[0]),
				Max: reading(ol.Name+" ideal max", ol.Ideal[1]),
			},
		})
	}

	for i, sl := range pl.Steps {
		kind, err := procedure.ParseStepKind(sl.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s step %d: %w", where, i+1, err))
			continue
		}
		step := procedure.Step{Title: sl.Title, Kind: kind, Observable: procedure.Observable(sl.Observable)}
		if sl.Reagent != nil {
			step.Reagent = &procedure.Reagent{ID: sl.Reagent.ID, Name: sl.Reagent.Name, Drops: sl.Reagent.Drops, Change: sl.Reagent.Change}
			if step.Reagent.Name == "" {
				step.Reagent.Name = step.Reagent.ID
			}
		}
		if ql := sl.Question; ql != nil {
			q := &procedure.Question{Prompt: ql.Prompt}
			for j, c := range ql.Choices {
				q.Choices = append(q.Choices, procedure.Choice{
					Value:   reading(fmt.Sprintf("step %d choice %d", i+1, j+1), c),
					Correct: ql.Correct != nil && *ql.Correct == j,
				})
			}
			switch {
			case ql.Derive != nil:
				if ql.Correct != nil {
					errs = append(errs, fmt.Errorf("%s step %d: derived question must not name a correct choice", where, i+1))
				}
				q.Derive = &procedure.Derivation{
					From:  procedure.Observable(ql.Derive.From),
					Minus: procedure.Observable(ql.Derive.Minus),
				}
			case ql.Correct == nil || *ql.Correct < 0 || *ql.Correct >= len(ql.Choices):
				errs = append(errs, fmt.Errorf("%s step %d: question needs exactly one correct choice", where, i+1))
			}
			step.Question = q
		}
		def.Steps = append(def.Steps, step)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
