// Package export copies the sources a recipe ships with into an export
// directory and records what was copied.
package export

import (
	"cmp"
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/goplus/llar-getopt/recipe"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of a saved manifest.
const ManifestFile = "manifest.yaml"

var (
	// ErrNothingExported is returned when no file matches the export patterns.
	ErrNothingExported = zerr.New("nothing exported")

	// ErrBadPattern is returned for a malformed export pattern.
	ErrBadPattern = zerr.New("bad export pattern")
)

// File is one exported file.
type File struct {
	Path string `yaml:"path"` // slash-separated, relative to the export root
	Size int64  `yaml:"size"`
	Hash string `yaml:"hash"` // hex xxhash64 of the content
}

// Manifest lists the exported files sorted by path.
type Manifest struct {
	Files []File `yaml:"files"`
}

// Paths returns the exported paths.
func (m *Manifest) Paths() []string {
	paths := make([]string, len(m.Files))
	for i, f := range m.Files {
		paths[i] = f.Path
	}
	return paths
}

// Revision identifies the recipe identity together with the exported
// content. Any change to either yields a different revision.
func (m *Manifest) Revision(id recipe.Identity) string {
	h := xxhash.New()
	for _, s := range []string{id.Name, id.Version, id.License, id.URL} {
		writeString(h, s)
	}
	files := slices.Clone(m.Files)
	slices.SortFunc(files, func(a, b File) int { return cmp.Compare(a.Path, b.Path) })
	for _, f := range files {
		writeString(h, f.Path)
		writeString(h, f.Hash)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func writeString(h *xxhash.Digest, s string) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
	h.Write(n[:])
	h.WriteString(s)
}

// SkipDirs are top-level directories Export never descends into: the build
// tree and package dir of an in-place build.
var SkipDirs = []string{"build", "package"}

// Match reports whether the slash-separated path rel, relative to the
// exported directory, matches any of patterns.
func Match(patterns []string, rel string) (bool, error) {
	for _, p := range patterns {
		ok, err := path.Match(p, rel)
		if err != nil {
			return false, zerr.With(zerr.Wrap(ErrBadPattern, err.Error()), "pattern", p)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Export copies every regular file below srcDir whose relative path matches
// patterns into destDir, keeping relative paths and file modes.
func Export(srcDir, destDir string, patterns []string) (*Manifest, error) {
	m := &Manifest{}
	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if slices.Contains(SkipDirs, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ok, err := Match(patterns, rel)
		if err != nil || !ok {
			return err
		}
		f, err := copyFile(p, filepath.Join(destDir, filepath.FromSlash(rel)))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "export "+rel), "src", srcDir)
		}
		f.Path = rel
		m.Files = append(m.Files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(m.Files) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrNothingExported, srcDir), "patterns", patterns)
	}
	return m, nil
}

func copyFile(src, dst string) (File, error) {
	in, err := os.Open(src)
	if err != nil {
		return File{}, err
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return File{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return File{}, err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return File{}, err
	}
	h := xxhash.New()
	n, err := io.Copy(io.MultiWriter(out, h), in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return File{}, err
	}
	// OpenFile honours the umask; restore the source mode.
	if err := os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return File{}, err
	}
	return File{Size: n, Hash: strconv.FormatUint(h.Sum64(), 16)}, nil
}

// Load reads the manifest saved in dir.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "parse manifest"), "dir", dir)
	}
	return &m, nil
}

// Save writes m to dir.
func (m *Manifest) Save(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644)
}
