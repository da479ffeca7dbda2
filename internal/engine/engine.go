package engine

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goplus/llar-getopt/recipe"
	"go.trai.ch/zerr"
)

// Engine runs recipe lifecycles.
type Engine struct {
	log *log.Logger
}

// New returns an Engine logging to logger. A nil logger discards output.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{log: logger}
}

// Params describes one package build.
type Params struct {
	Settings recipe.Settings
	// Options are user overrides applied after the recipe configured its
	// options for the target OS.
	Options map[string]string

	// RootDir holds the package sources. Layout hooks derive the build tree
	// from it.
	RootDir string
	// PackageDir receives the installed package.
	PackageDir string
	Deps       []recipe.Dependency

	Stdout io.Writer
	Stderr io.Writer
}

// Result reports what a run accomplished, including on failure.
type Result struct {
	Options recipe.Options
	Layout  recipe.Layout
	Steps   []Step
}

// Run executes the lifecycle of r for p. Steps run in order and the first
// failure stops the run.
func (e *Engine) Run(ctx context.Context, r *recipe.Recipe, p Params) (*Result, error) {
	logger := e.log.With("recipe", r.Ref())

	c := recipe.NewContext(ctx)
	c.Settings = p.Settings
	c.RootDir = p.RootDir
	c.Layout.PackageDir = p.PackageDir
	c.Deps = p.Deps
	c.Log = logger
	c.Stdout, c.Stderr = p.Stdout, p.Stderr
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	s := NewSession(r, c)
	steps := []struct {
		step Step
		run  func() error
	}{
		{ConfigOptions, func() error { return s.ConfigureOptions(p.Options) }},
		{Layout, s.Layout},
		{Generate, s.Generate},
		{Build, s.Build},
		{Package, s.Package},
	}

	var err error
	for _, st := range steps {
		if err = ctx.Err(); err != nil {
			err = zerr.With(zerr.Wrap(err, "run canceled"), "step", st.step.String())
			break
		}
		logger.Info("run step", "step", st.step, "settings", p.Settings)
		start := time.Now()
		err = st.run()
		logger.Debug("step done", "step", st.step, "elapsed", time.Since(start), "ok", err == nil)
		if err != nil {
			break
		}
	}
	return &Result{Options: c.Options, Layout: c.Layout, Steps: s.Completed()}, err
}
