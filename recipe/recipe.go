package recipe

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/goplus/llar-getopt/pkgs/mod/module"
	"go.trai.ch/zerr"
)

// Hook is a lifecycle callback of a recipe.
type Hook func(c *Context) error

// Recipe describes how to fetch, configure, build and install one package.
//
// An orchestrator invokes the hooks in fixed order: ConfigOptions, Layout,
// Generate, Build, Package. Each runs at most once per package build.
type Recipe struct {
	Identity

	// Settings lists the settings axes the package binaries vary over.
	Settings []string
	// Options holds the declared options with their defaults.
	Options Options
	// ExportsSources lists the patterns of files copied alongside the recipe
	// so the package can be built from source without a separate fetch.
	ExportsSources []string
	// Requires lists packages this one builds against.
	Requires []module.Version

	ConfigOptions func(opts Options, targetOS string)
	Layout        Hook
	Generate      Hook
	Build         Hook
	Package       Hook
}

// ConfigureOptions returns the declared options adjusted for targetOS.
// The declared defaults are never modified, so repeated calls with the same
// targetOS yield the same set.
func (r *Recipe) ConfigureOptions(targetOS string) Options {
	opts := r.Options.Clone()
	if r.ConfigOptions != nil {
		r.ConfigOptions(opts, targetOS)
	}
	return opts
}

// Validate checks the recipe declaration.
func (r *Recipe) Validate() error {
	if err := r.Identity.Validate(); err != nil {
		return err
	}
	for _, axis := range r.Settings {
		if !slices.Contains(Axes, axis) {
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, "unknown settings axis"), "axis", axis)
		}
	}
	if err := r.Options.validate(); err != nil {
		return err
	}
	hooks := []struct {
		name string
		set  bool
	}{
		{"layout", r.Layout != nil},
		{"generate", r.Generate != nil},
		{"build", r.Build != nil},
		{"package", r.Package != nil},
	}
	for _, h := range hooks {
		if !h.set {
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, "missing "+h.name+" hook"), "recipe", r.Ref())
		}
	}
	return nil
}

// Layout is the directory convention of one package build.
type Layout struct {
	SourceDir     string
	BuildDir      string
	GeneratorsDir string
	PackageDir    string
}

// Dependency is a required package that has already been built.
type Dependency struct {
	Version module.Version
	Dir     string // package directory holding include/, lib/, ...
}

// Context carries the state of one package build into the hooks.
type Context struct {
	Settings Settings
	Options  Options
	Layout   Layout
	RootDir  string
	Deps     []Dependency

	Log    *log.Logger
	Stdout io.Writer
	Stderr io.Writer

	ctx context.Context
}

// NewContext returns a Context bound to ctx. Output goes to the process
// stdout/stderr and logs are discarded until the caller sets them.
func NewContext(ctx context.Context) *Context {
	return &Context{
		Log:    log.New(io.Discard),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		ctx:    ctx,
	}
}

// Context returns the context of the running build.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// Logger returns c.Log, or a discarding logger when unset.
func (c *Context) Logger() *log.Logger {
	if c.Log == nil {
		return log.New(io.Discard)
	}
	return c.Log
}
