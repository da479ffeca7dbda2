package env

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWorkDirFromEnv(t *testing.T) {
	home := filepath.Join(t.TempDir(), "llar-home")
	t.Setenv(HomeEnv, home)

	dir, err := WorkDir()
	if err != nil {
		t.Fatalf("WorkDir() returned error: %v", err)
	}
	if dir != home {
		t.Errorf("WorkDir() = %q, want %q", dir, home)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("WorkDir() created a file instead of a directory")
	}
	if runtime.GOOS != "windows" {
		if mode := info.Mode().Perm(); mode != 0o700 {
			t.Errorf("Directory has permissions %v, want %v", mode, os.FileMode(0o700))
		}
	}
}

func TestWorkDirDefault(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME only drives os.UserCacheDir on linux")
	}
	cache := t.TempDir()
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_CACHE_HOME", cache)

	dir, err := WorkDir()
	if err != nil {
		t.Fatalf("WorkDir() returned error: %v", err)
	}
	if want := filepath.Join(cache, ".llar"); dir != want {
		t.Errorf("WorkDir() = %q, want %q", dir, want)
	}
}

// TestWorkDirIdempotent verifies that repeated calls return the same directory.
func TestWorkDirIdempotent(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	dir1, err := WorkDir()
	if err != nil {
		t.Fatalf("First WorkDir() call failed: %v", err)
	}
	dir2, err := WorkDir()
	if err != nil {
		t.Fatalf("Second WorkDir() call failed: %v", err)
	}
	if dir1 != dir2 {
		t.Errorf("WorkDir() not idempotent: first call = %q, second call = %q", dir1, dir2)
	}
}
