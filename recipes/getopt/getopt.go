// Package getopt is the packaging recipe of the getopt C library.
package getopt

import (
	"github.com/goplus/llar-getopt/pkgs/buildsys"
	"github.com/goplus/llar-getopt/pkgs/buildsys/cmake"
	"github.com/goplus/llar-getopt/recipe"
)

// Identity of the packaged library.
var Identity = recipe.Identity{
	Name:        "getopt",
	Version:     "0.1",
	License:     "LGPL-3.0",
	Author:      "Frederik Carlier <frederik.carlier@keysight.com>",
	URL:         "https://github.com/libimobiledevice-win32/getopt",
	Description: "getopt for vcpkg",
}

// ExportsSources lists the files shipped with the recipe.
var ExportsSources = []string{"CMakeLists.txt", "getopt.*"}

type config struct {
	buildSystem func(c *recipe.Context) buildsys.BuildSystem
	generators  func(c *recipe.Context) []buildsys.Generator
}

// An Opt customizes the backends used by the recipe hooks.
type Opt func(*config)

// WithBuildSystem replaces the CMake build system driven by the build and
// package hooks.
func WithBuildSystem(f func(c *recipe.Context) buildsys.BuildSystem) Opt {
	return func(cfg *config) {
		cfg.buildSystem = f
	}
}

// WithGenerators replaces the generators run by the generate hook. They run
// in the order returned.
func WithGenerators(f func(c *recipe.Context) []buildsys.Generator) Opt {
	return func(cfg *config) {
		cfg.generators = f
	}
}

func defaultBuildSystem(c *recipe.Context) buildsys.BuildSystem {
	return cmake.New(c)
}

func defaultGenerators(c *recipe.Context) []buildsys.Generator {
	return []buildsys.Generator{cmake.NewDeps(c), cmake.NewToolchain(c)}
}

// New returns the getopt recipe.
func New(opts ...Opt) *recipe.Recipe {
	cfg := &config{
		buildSystem: defaultBuildSystem,
		generators:  defaultGenerators,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &recipe.Recipe{
		Identity: Identity,
		Settings: []string{recipe.AxisOS, recipe.AxisCompiler, recipe.AxisBuildType, recipe.AxisArch},
		Options: recipe.Options{
			"shared": recipe.BoolOption(false),
			"fPIC":   recipe.BoolOption(true),
		},
		ExportsSources: ExportsSources,

		ConfigOptions: func(opts recipe.Options, targetOS string) {
			if targetOS == recipe.OSWindows {
				opts.Delete("fPIC")
			}
		},
		Layout: cmake.Layout,
		Generate: func(c *recipe.Context) error {
			for _, g := range cfg.generators(c) {
				if err := g.Generate(); err != nil {
					return err
				}
			}
			return nil
		},
		Build: func(c *recipe.Context) error {
			bs := cfg.buildSystem(c)
			if err := bs.Configure(); err != nil {
				return err
			}
			return bs.Build()
		},
		Package: func(c *recipe.Context) error {
			return cfg.buildSystem(c).Install()
		},
	}
}
