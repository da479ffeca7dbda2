// Package build exports recipes and builds their packages into the llar
// workspace, one package per settings and options combination.
package build

import (
	"encoding/binary"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/goplus/llar-getopt/internal/engine"
	"github.com/goplus/llar-getopt/internal/env"
	"github.com/goplus/llar-getopt/internal/export"
	"github.com/goplus/llar-getopt/recipe"
)

// InfoFile is the name of the package description written into every
// package directory.
const InfoFile = "llarinfo.yaml"

// Options configures a Builder.
type Options struct {
	// WorkspaceDir defaults to env.WorkDir().
	WorkspaceDir string
	Logger       *log.Logger
	// Jobs bounds how many combinations build at once. Values below 1 mean 1.
	Jobs int
	// Force rebuilds cached packages.
	Force bool

	Stdout io.Writer
	Stderr io.Writer
}

type Builder struct {
	workspaceDir string
	engine       *engine.Engine
	log          *log.Logger
	jobs         int
	force        bool
	stdout       io.Writer
	stderr       io.Writer

	cacheMu sync.Mutex
}

// Exported describes the exported sources of a recipe.
type Exported struct {
	Dir      string
	Manifest *export.Manifest
	Revision string
}

// Result describes the package built for one combination.
type Result struct {
	Ref         string
	Combination recipe.Combination
	Settings    recipe.Settings
	Options     recipe.Options
	PackageID   string
	PackageDir  string
	// Cached reports that the package came from the cache.
	Cached bool
}

// Info is the content of InfoFile.
type Info struct {
	Name      string            `yaml:"name"`
	Version   string            `yaml:"version"`
	Revision  string            `yaml:"revision"`
	PackageID string            `yaml:"package_id"`
	Settings  map[string]string `yaml:"settings"`
	Options   map[string]string `yaml:"options"`
	Requires  []string          `yaml:"requires,omitempty"`
	BuildTime time.Time         `yaml:"build_time"`
}

// NewBuilder returns a Builder for opts.
func NewBuilder(opts Options) (*Builder, error) {
	ws := opts.WorkspaceDir
	if ws == "" {
		dir, err := env.WorkDir()
		if err != nil {
			return nil, err
		}
		ws = dir
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Builder{
		workspaceDir: ws,
		engine:       engine.New(logger),
		log:          logger,
		jobs:         max(opts.Jobs, 1),
		force:        opts.Force,
		stdout:       stdout,
		stderr:       stderr,
	}, nil
}

// WorkspaceDir returns the workspace the builder writes to.
func (b *Builder) WorkspaceDir() string {
	return b.workspaceDir
}

// exportDir returns workspaceDir/<escapedPath>/<version>.
func (b *Builder) exportDir(r *recipe.Recipe) (string, error) {
	dir, err := b.cacheDir(r.Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, r.Version), nil
}

// Export copies the exported sources of r from recipeDir into the workspace
// and records their manifest. Earlier exports of the same version are
// replaced.
func (b *Builder) Export(r *recipe.Recipe, recipeDir string) (*Exported, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	dir, err := b.exportDir(r)
	if err != nil {
		return nil, err
	}
	unlock, err := b.lockDir(dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	dest := filepath.Join(dir, "export")
	if err := os.RemoveAll(dest); err != nil {
		return nil, err
	}
	m, err := export.Export(recipeDir, dest, r.ExportsSources)
	if err != nil {
		return nil, err
	}
	if err := m.Save(dir); err != nil {
		return nil, err
	}
	exp := &Exported{Dir: dest, Manifest: m, Revision: m.Revision(r.Identity)}
	b.log.Info("exported", "ref", r.Ref(), "revision", exp.Revision, "files", len(m.Files))
	return exp, nil
}

func (b *Builder) lockDir(dir string) (unlock func(), err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return mutexAt(dir + ".lock").Lock()
}

// PackageID identifies the binary package built from revision for the
// settings axes of r and the configured options.
func PackageID(r *recipe.Recipe, revision string, settings recipe.Settings, opts recipe.Options) string {
	h := xxhash.New()
	write := func(s string) {
		var n [8]byte
		binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.WriteString(s)
	}
	write(revision)
	values := settings.Values(r.Settings)
	for _, axis := range slices.Sorted(maps.Keys(values)) {
		write(axis + "=" + values[axis])
	}
	write(opts.String())
	return strconv.FormatUint(h.Sum64(), 16)
}
