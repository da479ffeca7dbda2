package build

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/goplus/llar-getopt/internal/engine"
	"github.com/goplus/llar-getopt/recipe"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Create exports r from recipeDir and builds one package per combination.
// Up to Jobs combinations build concurrently and the first failure cancels
// the rest. Results are in combination order.
func (b *Builder) Create(ctx context.Context, r *recipe.Recipe, recipeDir string, combos []recipe.Combination) ([]Result, error) {
	exp, err := b.Export(r, recipeDir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(combos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.jobs)
	for i, combo := range combos {
		g.Go(func() error {
			res, err := b.buildOne(gctx, r, exp, combo)
			if err != nil {
				return zerr.With(err, "combination", combo.String())
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// configure resolves the settings and configured options of combo.
func configure(r *recipe.Recipe, combo recipe.Combination) (recipe.Settings, recipe.Options, error) {
	settings, err := recipe.SettingsFrom(combo.Require)
	if err != nil {
		return recipe.Settings{}, nil, &engine.StepError{Step: engine.ConfigOptions, Err: err}
	}
	opts := r.ConfigureOptions(settings.OS)
	for _, name := range slices.Sorted(maps.Keys(combo.Options)) {
		if err := opts.Set(name, combo.Options[name]); err != nil {
			return settings, nil, &engine.StepError{Step: engine.ConfigOptions, Err: err}
		}
	}
	return settings, opts, nil
}

func (b *Builder) buildOne(ctx context.Context, r *recipe.Recipe, exp *Exported, combo recipe.Combination) (*Result, error) {
	settings, opts, err := configure(r, combo)
	if err != nil {
		return nil, err
	}
	pkgID := PackageID(r, exp.Revision, settings, opts)
	pkgDir, err := b.installDir(r.Name, r.Version, pkgID)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Ref:         r.Ref(),
		Combination: combo,
		Settings:    settings,
		Options:     opts,
		PackageID:   pkgID,
		PackageDir:  pkgDir,
	}
	logger := b.log.With("ref", r.Ref(), "package_id", pkgID)

	if b.cached(r, pkgID, pkgDir) {
		logger.Info("package cached", "dir", pkgDir)
		res.Cached = true
		return res, nil
	}

	buildRoot := pkgDir + ".build"
	unlock, err := mutexAt(buildRoot + ".lock").Lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Double-check cache after acquiring lock (another process may have built it)
	if b.cached(r, pkgID, pkgDir) {
		logger.Info("package cached", "dir", pkgDir)
		res.Cached = true
		return res, nil
	}

	deps, err := b.resolveDeps(r, settings)
	if err != nil {
		return nil, &engine.StepError{Step: engine.Generate, Err: err}
	}

	for _, dir := range []string{buildRoot, pkgDir} {
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
	}
	if err := os.CopyFS(buildRoot, os.DirFS(exp.Dir)); err != nil {
		return nil, err
	}

	logger.Info("building", "settings", settings, "options", opts)
	_, err = b.engine.Run(ctx, r, engine.Params{
		Settings:   settings,
		Options:    combo.Options,
		RootDir:    buildRoot,
		PackageDir: pkgDir,
		Deps:       deps,
		Stdout:     b.stdout,
		Stderr:     b.stderr,
	})
	if err != nil {
		return nil, err
	}
	if !hasContent(pkgDir) {
		logger.Warn("package has no headers or libraries", "dir", pkgDir)
	}

	now := time.Now()
	info := Info{
		Name:      r.Name,
		Version:   r.Version,
		Revision:  exp.Revision,
		PackageID: pkgID,
		Settings:  settings.Values(r.Settings),
		Options:   opts.Resolved(),
		BuildTime: now,
	}
	for _, req := range r.Requires {
		info.Requires = append(info.Requires, req.String())
	}
	if err := writeInfo(pkgDir, &info); err != nil {
		return nil, err
	}

	entry := &buildEntry{
		Revision:  exp.Revision,
		Settings:  info.Settings,
		Options:   info.Options,
		BuildTime: now,
	}
	if err := b.recordBuild(r.Name, r.Version, pkgID, entry); err != nil {
		return nil, err
	}
	logger.Info("package created", "dir", pkgDir)
	return res, nil
}

func (b *Builder) cached(r *recipe.Recipe, pkgID, pkgDir string) bool {
	if b.force {
		return false
	}
	cache, err := b.loadCache(r.Name)
	if err != nil {
		return false
	}
	if _, ok := cache.get(r.Version, pkgID); !ok {
		return false
	}
	_, err = os.Stat(filepath.Join(pkgDir, InfoFile))
	return err == nil
}

// resolveDeps finds the packages of the requirements of r built for the
// same settings.
func (b *Builder) resolveDeps(r *recipe.Recipe, settings recipe.Settings) ([]recipe.Dependency, error) {
	var deps []recipe.Dependency
	want := settings.Values(recipe.Axes)
	for _, req := range r.Requires {
		cache, err := b.loadCache(req.Path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		var pkgID string
		found := false
		if cache != nil {
			pkgID, found = cache.find(req.Version, want)
		}
		if !found {
			return nil, zerr.With(zerr.Wrap(recipe.ErrDependencyNotFound, req.String()+" is not built for "+settings.String()), "requirement", req.String())
		}
		dir, err := b.installDir(req.Path, req.Version, pkgID)
		if err != nil {
			return nil, err
		}
		deps = append(deps, recipe.Dependency{Version: req, Dir: dir})
	}
	return deps, nil
}

// hasContent reports whether dir holds headers or binaries.
func hasContent(dir string) bool {
	for _, sub := range []string{"include", "lib", "bin"} {
		entries, err := os.ReadDir(filepath.Join(dir, sub))
		if err == nil && len(entries) > 0 {
			return true
		}
	}
	return false
}

func writeInfo(dir string, info *Info) error {
	data, err := yaml.Marshal(info)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, InfoFile), data, 0o644)
}

// ReadInfo reads the package description in dir.
func ReadInfo(dir string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(dir, InfoFile))
	if err != nil {
		return nil, err
	}
	var info Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "parse "+InfoFile), "dir", dir)
	}
	return &info, nil
}
