// Package engine drives recipe lifecycles: it invokes the hooks of a recipe
// in their fixed order, at most once each, and stops at the first failure.
package engine

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goplus/llar-getopt/recipe"
	"go.trai.ch/zerr"
)

var (
	// ErrOutOfOrder is returned when a step is invoked before its predecessors.
	ErrOutOfOrder = zerr.New("step out of order")

	// ErrStepRepeated is returned when a step is invoked a second time.
	ErrStepRepeated = zerr.New("step already run")

	// ErrAborted is returned for any step invoked after a failure.
	ErrAborted = zerr.New("session aborted")
)

// Step identifies a lifecycle hook.
type Step int

const (
	ConfigOptions Step = iota
	Layout
	Generate
	Build
	Package
)

var stepNames = [...]string{
	ConfigOptions: "config_options",
	Layout:        "layout",
	Generate:      "generate",
	Build:         "build",
	Package:       "package",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// Kind returns the error kind failures of s belong to: recipe.ErrBuild,
// recipe.ErrInstall or recipe.ErrConfiguration.
func (s Step) Kind() error {
	switch s {
	case Build:
		return recipe.ErrBuild
	case Package:
		return recipe.ErrInstall
	}
	return recipe.ErrConfiguration
}

// StepError is a hook failure.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return e.Step.String() + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of e.Step.
func (e *StepError) Is(target error) bool {
	return target == e.Step.Kind()
}

// Session is one package build of a recipe. Its methods must be called in
// step order, each at most once.
type Session struct {
	recipe *recipe.Recipe
	ctx    *recipe.Context

	next   Step
	failed bool
	done   []Step
}

// NewSession starts a session of r over c.
func NewSession(r *recipe.Recipe, c *recipe.Context) *Session {
	return &Session{recipe: r, ctx: c}
}

// Context returns the build context the hooks receive.
func (s *Session) Context() *recipe.Context {
	return s.ctx
}

// Completed returns the steps that ran successfully.
func (s *Session) Completed() []Step {
	return slices.Clone(s.done)
}

func (s *Session) enter(step Step) error {
	switch {
	case s.failed:
		return zerr.With(zerr.Wrap(ErrAborted, step.String()+" after failure"), "step", step.String())
	case step < s.next:
		return zerr.With(zerr.Wrap(ErrStepRepeated, step.String()), "step", step.String())
	case step > s.next:
		msg := fmt.Sprintf("%s before %s", step, s.next)
		return zerr.With(zerr.Wrap(ErrOutOfOrder, msg), "step", step.String())
	}
	return nil
}

func (s *Session) leave(step Step, err error) error {
	s.next = step + 1
	if err != nil {
		s.failed = true
		return &StepError{Step: step, Err: err}
	}
	s.done = append(s.done, step)
	return nil
}

func (s *Session) hook(step Step, h recipe.Hook) error {
	if err := s.enter(step); err != nil {
		return err
	}
	var err error
	if h == nil {
		err = zerr.With(zerr.Wrap(recipe.ErrInvalidRecipe, "missing "+step.String()+" hook"), "recipe", s.recipe.Ref())
	} else {
		err = h(s.ctx)
	}
	return s.leave(step, err)
}

// ConfigureOptions configures the recipe options for the target OS and then
// applies overrides in name order. Overriding an option the recipe removed
// fails with recipe.ErrUnknownOption.
func (s *Session) ConfigureOptions(overrides map[string]string) error {
	if err := s.enter(ConfigOptions); err != nil {
		return err
	}
	opts := s.recipe.ConfigureOptions(s.ctx.Settings.OS)
	var err error
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if err = opts.Set(name, overrides[name]); err != nil {
			break
		}
	}
	if err == nil {
		s.ctx.Options = opts
	}
	return s.leave(ConfigOptions, err)
}

// Layout runs the layout hook.
func (s *Session) Layout() error {
	return s.hook(Layout, s.recipe.Layout)
}

// Generate runs the generate hook.
func (s *Session) Generate() error {
	return s.hook(Generate, s.recipe.Generate)
}

// Build runs the build hook.
func (s *Session) Build() error {
	return s.hook(Build, s.recipe.Build)
}

// Package runs the package hook.
func (s *Session) Package() error {
	return s.hook(Package, s.recipe.Package)
}
