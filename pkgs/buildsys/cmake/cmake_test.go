package cmake

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/goplus/llar-getopt/recipe"
)

func TestOutputDirPrefersInstall(t *testing.T) {
	c := New(nil)
	if got := c.OutputDir(); got != "build" {
		t.Fatalf("default OutputDir = %q, want %q", got, "build")
	}
	c.InstallDir("custom-install")
	if got := c.OutputDir(); got != "custom-install" {
		t.Fatalf("OutputDir after InstallDir = %q, want %q", got, "custom-install")
	}
}

func TestNewFromContext(t *testing.T) {
	root := t.TempDir()
	rc := recipe.NewContext(context.Background())
	rc.RootDir = root
	rc.Settings = recipe.Settings{OS: "Linux", Compiler: "gcc", BuildType: "Debug", Arch: "x86_64"}
	rc.Layout.PackageDir = filepath.Join(root, "pkg")
	if err := Layout(rc); err != nil {
		t.Fatal(err)
	}

	c := New(rc)
	if c.SourceDir != root {
		t.Errorf("SourceDir = %q, want %q", c.SourceDir, root)
	}
	if c.buildDir != filepath.Join(root, "build", "Debug") {
		t.Errorf("buildDir = %q", c.buildDir)
	}
	if c.OutputDir() != rc.Layout.PackageDir {
		t.Errorf("OutputDir = %q, want %q", c.OutputDir(), rc.Layout.PackageDir)
	}
	if c.generator != "Unix Makefiles" || c.buildType != "Debug" {
		t.Errorf("generator = %q, buildType = %q", c.generator, c.buildType)
	}
	if c.toolchain != "" {
		t.Errorf("toolchain = %q before generation, want empty", c.toolchain)
	}

	if err := NewToolchain(rc).Generate(); err != nil {
		t.Fatal(err)
	}
	if got := New(rc).toolchain; got != filepath.Join(rc.Layout.GeneratorsDir, ToolchainFile) {
		t.Errorf("toolchain after generation = %q", got)
	}
}

func TestDefinesArgsSorted(t *testing.T) {
	c := New(nil)
	c.Define("ZED", "last").DefineBool("ALPHA", true).DefineBool("MID", false)
	c.Defines["RAW"] = defineValue{value: "x"}

	got := strings.Join(c.definesArgs(), " ")
	want := "-DALPHA:BOOL=ON -DMID:BOOL=OFF -DRAW=x -DZED:STRING=last"
	if got != want {
		t.Errorf("definesArgs() = %q, want %q", got, want)
	}
}

func TestEnvDoesNotLeakIntoProcess(t *testing.T) {
	t.Setenv("LLAR_CMAKE_TEST", "")
	c := New(nil)
	c.Env("LLAR_CMAKE_TEST", "value")
	if got := os.Getenv("LLAR_CMAKE_TEST"); got != "" {
		t.Errorf("process env LLAR_CMAKE_TEST = %q, want empty", got)
	}
	if c.env["LLAR_CMAKE_TEST"] != "value" {
		t.Errorf("env = %v", c.env)
	}
}

func TestConfigureBuildInstallE2E(t *testing.T) {
	if _, err := exec.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}
	if runtime.GOOS == "windows" {
		t.Skip("e2e test uses Unix Makefiles")
	}

	tmp := t.TempDir()
	installDir := filepath.Join(tmp, "install")
	sourceDir, err := filepath.Abs(filepath.Join("testdata", "project"))
	if err != nil {
		t.Fatal(err)
	}

	c := New(nil)
	c.buildDir = filepath.Join(tmp, "build")
	c.Env("CUSTOM", "VAL")
	c.Source(sourceDir)
	c.InstallDir(installDir)
	c.BuildType("Release")
	c.Generator("Unix Makefiles")
	toolchain := filepath.Join(tmp, "toolchain.cmake")
	if err := os.WriteFile(toolchain, []byte("# dummy toolchain"), 0o644); err != nil {
		t.Fatalf("write toolchain: %v", err)
	}
	c.Toolchain(toolchain)
	c.Define("FOO", "BAR")
	c.DefineBool("ENABLE", true)
	c.DefineBool("DISABLE", false)

	if err := c.Configure(); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := c.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := c.Install(); err != nil {
		t.Fatalf("install: %v", err)
	}

	wantLib := filepath.Join(installDir, "lib", "libdummy.a")
	if _, err := os.Stat(wantLib); err != nil {
		t.Fatalf("installed lib missing: %v", err)
	}
	wantHeader := filepath.Join(installDir, "include", "dummy.h")
	if _, err := os.Stat(wantHeader); err != nil {
		t.Fatalf("installed header missing: %v", err)
	}

	cache := filepath.Join(c.buildDir, "CMakeCache.txt")
	data, err := os.ReadFile(cache)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	content := string(data)
	for _, snippet := range []string{
		"FOO:STRING=BAR",
		"ENABLE:BOOL=ON",
		"DISABLE:BOOL=OFF",
		"CMAKE_BUILD_TYPE:STRING=Release",
	} {
		if !strings.Contains(content, snippet) {
			t.Fatalf("cache missing %q", snippet)
		}
	}
}
