package cmake

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goplus/llar-getopt/pkgs/buildsys"
	"github.com/goplus/llar-getopt/recipe"
	"go.trai.ch/zerr"
)

// DepsFile is the name of the generated dependency file.
const DepsFile = "llar_deps.cmake"

// Deps generates the CMake file that makes the resolved dependencies of a
// build visible to find_package, find_path and find_library.
type Deps struct {
	ctx *recipe.Context
}

var _ buildsys.Generator = (*Deps)(nil)

// NewDeps creates a dependency generator for c.
func NewDeps(c *recipe.Context) *Deps {
	return &Deps{ctx: c}
}

// Path returns where Generate writes the dependency file.
func (d *Deps) Path() string {
	return filepath.Join(d.ctx.Layout.GeneratorsDir, DepsFile)
}

// Generate writes the dependency file. The file is written even when the
// build has no dependencies.
func (d *Deps) Generate() error {
	deps := slices.Clone(d.ctx.Deps)
	slices.SortFunc(deps, func(a, b recipe.Dependency) int {
		return cmp.Compare(a.Version.String(), b.Version.String())
	})

	var b strings.Builder
	b.WriteString("# Generated by llar. Do not edit.\n")
	b.WriteString("include_guard()\n")
	for _, dep := range deps {
		if _, err := os.Stat(dep.Dir); err != nil {
			return zerr.With(zerr.Wrap(recipe.ErrDependencyNotFound, dep.Version.String()), "dir", dep.Dir)
		}
		fmt.Fprintf(&b, "\n# %s\n", dep.Version)
		fmt.Fprintf(&b, "list(PREPEND CMAKE_PREFIX_PATH %s)\n", quote(dep.Dir))
		for _, sub := range []struct{ dir, variable string }{
			{"include", "CMAKE_INCLUDE_PATH"},
			{"lib", "CMAKE_LIBRARY_PATH"},
		} {
			p := filepath.Join(dep.Dir, sub.dir)
			if _, err := os.Stat(p); err == nil {
				fmt.Fprintf(&b, "list(PREPEND %s %s)\n", sub.variable, quote(p))
			}
		}
	}

	if err := os.MkdirAll(d.ctx.Layout.GeneratorsDir, 0o755); err != nil {
		return err
	}
	d.ctx.Logger().Debug("generate deps", "path", d.Path(), "deps", len(deps))
	return os.WriteFile(d.Path(), []byte(b.String()), 0o644)
}
