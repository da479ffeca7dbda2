package cmake

import (
	"path/filepath"
	"strings"

	"github.com/goplus/llar-getopt/recipe"
)

// DefaultGenerator returns the CMake generator used for settings.
func DefaultGenerator(s recipe.Settings) string {
	switch {
	case s.Compiler == "msvc":
		return "Visual Studio 17 2022"
	case s.OS == recipe.OSWindows && s.Compiler == "gcc":
		return "MinGW Makefiles"
	}
	return "Unix Makefiles"
}

// IsMultiConfig reports whether generator selects the build type at build
// time rather than at configure time.
func IsMultiConfig(generator string) bool {
	return strings.HasPrefix(generator, "Visual Studio") ||
		generator == "Xcode" ||
		generator == "Ninja Multi-Config"
}

// Layout applies the standard CMake layout to c:
//
//	<root>/                       sources
//	<root>/build/<build_type>/    build tree (single-config generators)
//	<root>/build/                 build tree (multi-config generators)
//	<build>/generators/           toolchain and dependency files
//
// The package directory is left as the orchestrator set it.
func Layout(c *recipe.Context) error {
	build := filepath.Join(c.RootDir, "build")
	if !IsMultiConfig(DefaultGenerator(c.Settings)) {
		if err := c.Settings.Require(recipe.AxisBuildType); err != nil {
			return err
		}
		build = filepath.Join(build, c.Settings.BuildType)
	}
	c.Layout.SourceDir = c.RootDir
	c.Layout.BuildDir = build
	c.Layout.GeneratorsDir = filepath.Join(build, "generators")
	return nil
}
