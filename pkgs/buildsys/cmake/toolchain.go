package cmake

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goplus/llar-getopt/pkgs/buildsys"
	"github.com/goplus/llar-getopt/recipe"
	"go.trai.ch/zerr"
)

// ToolchainFile is the name of the generated toolchain file.
const ToolchainFile = "llar_toolchain.cmake"

var systemNames = map[string]string{
	recipe.OSWindows: "Windows",
	recipe.OSLinux:   "Linux",
	recipe.OSMacos:   "Darwin",
	"FreeBSD":        "FreeBSD",
	"Android":        "Android",
	"iOS":            "iOS",
}

var processors = map[string]string{
	"x86":     "i686",
	"x86_64":  "x86_64",
	"armv7":   "armv7-a",
	"armv8":   "aarch64",
	"riscv64": "riscv64",
}

// compilers maps each supported compiler to the operating systems it can
// target. A nil list means any.
var compilers = map[string][]string{
	"gcc":         nil,
	"clang":       nil,
	"apple-clang": {recipe.OSMacos, "iOS"},
	"msvc":        {recipe.OSWindows},
}

// Toolchain generates the CMake toolchain file describing the compiler and
// platform settings of a build.
type Toolchain struct {
	ctx *recipe.Context

	// Variables are extra variables written to the toolchain file.
	Variables map[string]string
}

var _ buildsys.Generator = (*Toolchain)(nil)

// NewToolchain creates a toolchain generator for c.
func NewToolchain(c *recipe.Context) *Toolchain {
	return &Toolchain{ctx: c, Variables: map[string]string{}}
}

// Path returns where Generate writes the toolchain file.
func (t *Toolchain) Path() string {
	return filepath.Join(t.ctx.Layout.GeneratorsDir, ToolchainFile)
}

// Generate validates the settings and writes the toolchain file.
func (t *Toolchain) Generate() error {
	content, err := t.content()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(t.ctx.Layout.GeneratorsDir, 0o755); err != nil {
		return err
	}
	t.ctx.Logger().Debug("generate toolchain", "path", t.Path())
	return os.WriteFile(t.Path(), []byte(content), 0o644)
}

func (t *Toolchain) content() (string, error) {
	s := t.ctx.Settings
	if err := s.Require(recipe.AxisOS, recipe.AxisCompiler, recipe.AxisArch); err != nil {
		return "", err
	}
	system, ok := systemNames[s.OS]
	if !ok {
		return "", zerr.With(zerr.Wrap(recipe.ErrUnsupportedSetting, "unsupported os"), "os", s.OS)
	}
	processor, ok := processors[s.Arch]
	if !ok {
		return "", zerr.With(zerr.Wrap(recipe.ErrUnsupportedSetting, "unsupported arch"), "arch", s.Arch)
	}
	targets, ok := compilers[s.Compiler]
	if !ok {
		return "", zerr.With(zerr.Wrap(recipe.ErrUnsupportedSetting, "unsupported compiler"), "compiler", s.Compiler)
	}
	if targets != nil && !slices.Contains(targets, s.OS) {
		msg := fmt.Sprintf("compiler %s cannot target %s", s.Compiler, s.OS)
		return "", zerr.With(zerr.Wrap(recipe.ErrUnsupportedSetting, msg), "compiler", s.Compiler)
	}
	if system == "Darwin" && processor == "aarch64" {
		processor = "arm64"
	}

	var b strings.Builder
	b.WriteString("# Generated by llar. Do not edit.\n")
	b.WriteString("include_guard()\n\n")
	b.WriteString("message(STATUS \"Using llar toolchain: ${CMAKE_CURRENT_LIST_FILE}\")\n\n")

	if s.OS != recipe.HostOS() || s.Arch != recipe.HostArch() {
		fmt.Fprintf(&b, "set(CMAKE_SYSTEM_NAME %s)\n", system)
		fmt.Fprintf(&b, "set(CMAKE_SYSTEM_PROCESSOR %s)\n", processor)
	}
	generator := DefaultGenerator(s)
	if s.BuildType != "" && !IsMultiConfig(generator) {
		fmt.Fprintf(&b, "set(CMAKE_BUILD_TYPE %s CACHE STRING \"Choose the type of build.\" FORCE)\n", quote(s.BuildType))
	}

	opts := t.ctx.Options
	if opts.Has("shared") {
		fmt.Fprintf(&b, "set(BUILD_SHARED_LIBS %s CACHE BOOL \"Build shared libraries\")\n", onOff(opts.Bool("shared")))
	}
	if opts.Has("fPIC") {
		fmt.Fprintf(&b, "set(CMAKE_POSITION_INDEPENDENT_CODE %s CACHE BOOL \"Position independent code\")\n", onOff(opts.Bool("fPIC")))
	}
	if s.Compiler == "msvc" {
		runtime := "MultiThreaded$<$<CONFIG:Debug>:Debug>"
		if opts.Bool("shared") {
			runtime += "DLL"
		}
		fmt.Fprintf(&b, "set(CMAKE_MSVC_RUNTIME_LIBRARY %s)\n", quote(runtime))
	}

	for _, k := range slices.Sorted(maps.Keys(t.Variables)) {
		fmt.Fprintf(&b, "set(%s %s)\n", k, quote(t.Variables[k]))
	}

	b.WriteString("\ninclude(\"${CMAKE_CURRENT_LIST_DIR}/" + DepsFile + "\" OPTIONAL)\n")
	return b.String(), nil
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// quote returns s as a quoted CMake argument. Paths use forward slashes.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `/`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
