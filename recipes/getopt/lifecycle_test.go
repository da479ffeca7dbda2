package getopt

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/goplus/llar-getopt/internal/engine"
	"github.com/goplus/llar-getopt/internal/export"
	"github.com/goplus/llar-getopt/pkgs/buildsys"
	"github.com/goplus/llar-getopt/pkgs/buildsys/mocks"
	"github.com/goplus/llar-getopt/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func hostSettings() recipe.Settings {
	return recipe.Settings{
		OS:        recipe.HostOS(),
		Compiler:  recipe.HostCompiler(),
		BuildType: "Release",
		Arch:      recipe.HostArch(),
	}
}

func TestExportedSources(t *testing.T) {
	inPlace := copyTree(t, filepath.Join("testdata", "src"))
	for name, content := range map[string]string{
		"build/Release/CMakeFiles/getopt.dir/getopt.c.o": "\x7fELF",
		"build/Release/CMakeCache.txt":                   "CMAKE_BUILD_TYPE:STRING=Release\n",
		"package/include/getopt.h":                       "int getopt(int, char *const[], const char *);\n",
		"package/lib/libgetopt.a":                        "!<arch>\n",
		"test/CMakeLists.txt":                            "add_executable(getopt_test main.c)\n",
		"test/main.c":                                    "int main(void) { return 0; }\n",
	} {
		p := filepath.Join(inPlace, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	tests := []struct {
		name string
		src  string
	}{
		{"fresh", filepath.Join("testdata", "src")},
		{"after in-place build", inPlace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := t.TempDir()
			m, err := export.Export(tt.src, dest, ExportsSources)
			require.NoError(t, err)
			assert.Equal(t, []string{"CMakeLists.txt", "getopt.c", "getopt.h"}, m.Paths())

			var got []string
			require.NoError(t, filepath.WalkDir(dest, func(p string, d os.DirEntry, err error) error {
				if err == nil && !d.IsDir() {
					rel, _ := filepath.Rel(dest, p)
					got = append(got, filepath.ToSlash(rel))
				}
				return err
			}))
			assert.Equal(t, []string{"CMakeLists.txt", "getopt.c", "getopt.h"}, got)
		})
	}
}

func TestBuildFailureSkipsPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	bs := mocks.NewMockBuildSystem(ctrl)
	gen := mocks.NewMockGenerator(ctrl)

	buildErr := &buildsys.ToolError{
		Tool:     "cmake",
		Args:     []string{"--build", "build/Release"},
		ExitCode: 2,
		Err:      errors.New("exit status 2"),
		Stderr:   "getopt.c:6:1: error: expected expression before '}' token",
	}
	gen.EXPECT().Generate().Return(nil).Times(2)
	bs.EXPECT().Configure().Return(nil)
	bs.EXPECT().Build().Return(buildErr)
	// No Install expectation: calling it fails the test.

	r := New(
		WithGenerators(func(*recipe.Context) []buildsys.Generator { return []buildsys.Generator{gen, gen} }),
		WithBuildSystem(func(*recipe.Context) buildsys.BuildSystem { return bs }),
	)
	res, err := engine.New(nil).Run(context.Background(), r, engine.Params{
		Settings:   recipe.Settings{OS: recipe.OSLinux, Compiler: "gcc", BuildType: "Release", Arch: "x86_64"},
		RootDir:    t.TempDir(),
		PackageDir: t.TempDir(),
		Stdout:     io.Discard,
		Stderr:     io.Discard,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, recipe.ErrBuild)
	assert.Contains(t, err.Error(), "expected expression before '}' token")
	var te *buildsys.ToolError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 2, te.ExitCode)
	assert.NotContains(t, res.Steps, engine.Package)
}

func copyTree(t *testing.T, src string) string {
	t.Helper()
	dst := filepath.Join(t.TempDir(), "src")
	_, err := export.Export(src, dst, []string{"*"})
	require.NoError(t, err)
	return dst
}

func requireCMake(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}
	if runtime.GOOS == "windows" {
		t.Skip("e2e test uses Unix Makefiles")
	}
}

func TestLifecycleE2E(t *testing.T) {
	requireCMake(t)

	for _, shared := range []string{"false", "true"} {
		t.Run("shared="+shared, func(t *testing.T) {
			root := copyTree(t, filepath.Join("testdata", "src"))
			pkg := filepath.Join(t.TempDir(), "package")

			res, err := engine.New(nil).Run(context.Background(), New(), engine.Params{
				Settings:   hostSettings(),
				Options:    map[string]string{"shared": shared},
				RootDir:    root,
				PackageDir: pkg,
				Stdout:     io.Discard,
				Stderr:     io.Discard,
			})
			require.NoError(t, err)
			assert.Len(t, res.Steps, 5)

			_, err = os.Stat(filepath.Join(pkg, "include", "getopt.h"))
			require.NoError(t, err, "header installed")
			libs, err := filepath.Glob(filepath.Join(pkg, "lib", "libgetopt.*"))
			require.NoError(t, err)
			assert.NotEmpty(t, libs, "library installed")

			_, err = os.Stat(filepath.Join(res.Layout.GeneratorsDir, "llar_toolchain.cmake"))
			assert.NoError(t, err)
			_, err = os.Stat(filepath.Join(res.Layout.GeneratorsDir, "llar_deps.cmake"))
			assert.NoError(t, err)
		})
	}
}

func TestLifecycleE2EBrokenSource(t *testing.T) {
	requireCMake(t)

	root := copyTree(t, filepath.Join("testdata", "broken"))
	pkg := filepath.Join(t.TempDir(), "package")

	res, err := engine.New(nil).Run(context.Background(), New(), engine.Params{
		Settings:   hostSettings(),
		RootDir:    root,
		PackageDir: pkg,
		Stdout:     io.Discard,
		Stderr:     io.Discard,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, recipe.ErrBuild)
	assert.Contains(t, err.Error(), "getopt.c")
	assert.NotContains(t, res.Steps, engine.Package)

	_, statErr := os.Stat(filepath.Join(pkg, "include"))
	assert.True(t, os.IsNotExist(statErr), "nothing installed")
}
