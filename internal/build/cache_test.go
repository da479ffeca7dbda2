package build

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoadBuildCache(t *testing.T) {
	b := &Builder{workspaceDir: t.TempDir()}

	now := time.Now().Truncate(time.Second)
	cache := &buildCache{}
	cache.set("0.1", "abc", &buildEntry{
		Revision:  "rev",
		Settings:  map[string]string{"os": "Linux"},
		Options:   map[string]string{"shared": "false"},
		BuildTime: now,
	})

	if err := b.saveCache("getopt", cache); err != nil {
		t.Fatalf("saveCache failed: %v", err)
	}

	loaded, err := b.loadCache("getopt")
	if err != nil {
		t.Fatalf("loadCache failed: %v", err)
	}

	entry, ok := loaded.get("0.1", "abc")
	if !ok {
		t.Fatal("entry 0.1-abc missing after reload")
	}
	if entry.Revision != "rev" {
		t.Errorf("Revision mismatch: got %q, want %q", entry.Revision, "rev")
	}
	if !entry.BuildTime.Truncate(time.Second).Equal(now) {
		t.Errorf("BuildTime mismatch: got %v, want %v", entry.BuildTime, now)
	}
}

func TestLoadBuildCache_NotExist(t *testing.T) {
	b := &Builder{workspaceDir: t.TempDir()}

	_, err := b.loadCache("getopt")
	if !os.IsNotExist(err) {
		t.Fatalf("loadCache error = %v, want not-exist", err)
	}
}

func TestLoadBuildCache_InvalidJSON(t *testing.T) {
	b := &Builder{workspaceDir: t.TempDir()}
	dir, _ := b.cacheDir("getopt")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, cacheFile), []byte("invalid json"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := b.loadCache("getopt")
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestBuildCacheFind(t *testing.T) {
	cache := &buildCache{}
	cache.set("1.0", "aaa", &buildEntry{Settings: map[string]string{"os": "Linux", "arch": "x86_64"}})
	cache.set("1.0", "bbb", &buildEntry{Settings: map[string]string{"os": "Windows", "arch": "x86_64"}})
	cache.set("1.0-rc", "ccc", &buildEntry{Settings: map[string]string{"os": "Linux", "arch": "x86_64"}})

	tests := []struct {
		name     string
		version  string
		settings map[string]string
		want     string
		found    bool
	}{
		{"linux", "1.0", map[string]string{"os": "Linux", "arch": "x86_64", "compiler": "gcc"}, "aaa", true},
		{"windows", "1.0", map[string]string{"os": "Windows", "arch": "x86_64"}, "bbb", true},
		{"prerelease", "1.0-rc", map[string]string{"os": "Linux", "arch": "x86_64"}, "ccc", true},
		{"other arch", "1.0", map[string]string{"os": "Linux", "arch": "armv8"}, "", false},
		{"other version", "2.0", map[string]string{"os": "Linux", "arch": "x86_64"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cache.find(tt.version, tt.settings)
			if ok != tt.found || got != tt.want {
				t.Errorf("find(%q) = %q, %v; want %q, %v", tt.version, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestInstallDirConvention(t *testing.T) {
	b := &Builder{workspaceDir: t.TempDir()}

	dir, err := b.installDir("owner/getopt", "0.1", "abc123")
	if err != nil {
		t.Fatal(err)
	}
	rel, err := filepath.Rel(b.workspaceDir, dir)
	if err != nil {
		t.Fatalf("installDir not under workspace: %v", err)
	}
	if want := filepath.Join("owner", "getopt@0.1-abc123"); rel != want {
		t.Errorf("installDir rel = %q, want %q", rel, want)
	}

	if _, err := b.installDir("../escape", "0.1", "abc"); err == nil {
		t.Error("installDir accepted a path escaping the workspace")
	}
}
