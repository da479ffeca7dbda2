package build

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goplus/llar-getopt/pkgs/mod/module"
)

// Workspace directory layout:
//
//	workspaceDir/
//	  <escaped>/                          # package-level dir (cacheDir)
//	    .cache.json                       # build cache: maps "version-pkgid" to buildEntry
//	    <version>/export/                 # exported sources
//	    <version>/manifest.yaml           # export manifest
//	  <escaped>@<version>-<pkgid>/        # package dir (installDir)
//	    include/
//	    lib/
//	    llarinfo.yaml
//	  <escaped>@<version>-<pkgid>.build/  # build root
const cacheFile = ".cache.json"

// buildEntry contains metadata about a single successful build.
type buildEntry struct {
	Revision  string            `json:"revision"`
	Settings  map[string]string `json:"settings"`
	Options   map[string]string `json:"options"`
	BuildTime time.Time         `json:"build_time"`
}

// buildCache maps "version-pkgid" keys to their build entries.
type buildCache struct {
	Cache map[string]*buildEntry `json:"cache"`
}

func cacheKey(version, pkgID string) string {
	return version + "-" + pkgID
}

func (c *buildCache) get(version, pkgID string) (*buildEntry, bool) {
	entry, ok := c.Cache[cacheKey(version, pkgID)]
	return entry, ok
}

func (c *buildCache) set(version, pkgID string, entry *buildEntry) {
	if c.Cache == nil {
		c.Cache = make(map[string]*buildEntry)
	}
	c.Cache[cacheKey(version, pkgID)] = entry
}

// find returns the package id of a build of version whose settings agree
// with settings on every axis the build recorded.
func (c *buildCache) find(version string, settings map[string]string) (string, bool) {
	for _, key := range slices.Sorted(maps.Keys(c.Cache)) {
		pkgID, ok := strings.CutPrefix(key, version+"-")
		if ok && pkgID != "" && !strings.Contains(pkgID, "-") && matchSettings(c.Cache[key].Settings, settings) {
			return pkgID, true
		}
	}
	return "", false
}

func matchSettings(recorded, want map[string]string) bool {
	for axis, v := range recorded {
		if want[axis] != v {
			return false
		}
	}
	return true
}

// cacheDir returns the package-level directory for cache storage: workspaceDir/<escapedPath>.
func (b *Builder) cacheDir(modPath string) (string, error) {
	escaped, err := module.EscapePath(modPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(b.workspaceDir, escaped), nil
}

// installDir returns the package directory: workspaceDir/<escapedPath>@<version>-<pkgid>.
func (b *Builder) installDir(modPath, version, pkgID string) (string, error) {
	escaped, err := module.EscapePath(modPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(b.workspaceDir, fmt.Sprintf("%s@%s-%s", escaped, version, pkgID)), nil
}

// loadCache reads the cache file for a package from the workspace directory.
func (b *Builder) loadCache(modPath string) (*buildCache, error) {
	dir, err := b.cacheDir(modPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, cacheFile))
	if err != nil {
		return nil, err
	}
	var cache buildCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

// saveCache writes the cache file for a package to the workspace directory.
func (b *Builder) saveCache(modPath string, cache *buildCache) error {
	dir, err := b.cacheDir(modPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, cacheFile), data, 0o644)
}

// recordBuild adds entry to the cache of modPath under the cache lock.
func (b *Builder) recordBuild(modPath, version, pkgID string, entry *buildEntry) error {
	dir, err := b.cacheDir(modPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	unlock, err := mutexAt(filepath.Join(dir, ".cache.lock")).Lock()
	if err != nil {
		return err
	}
	defer unlock()

	b.cacheMu.Lock()
	defer b.cacheMu.Unlock()

	cache, err := b.loadCache(modPath)
	if os.IsNotExist(err) {
		cache, err = &buildCache{}, nil
	}
	if err != nil {
		return err
	}
	cache.set(version, pkgID, entry)
	return b.saveCache(modPath, cache)
}
