// Package module defines the module.Version type along with support code.
package module

import (
	"fmt"
	"path/filepath"
	"strings"
)

// A Version represents a specific version of a package identified by its path.
type Version struct {
	Path    string // Package path, e.g. "getopt" or "owner/repo"
	Version string // Version string (e.g., "0.1")
}

// String returns the reference form "path/version".
func (v Version) String() string {
	if v.Version == "" {
		return v.Path
	}
	return v.Path + "/" + v.Version
}

// ParseRef parses a reference in the form "path/version" or "path@version".
// The version is the last segment; the path may itself contain slashes.
func ParseRef(ref string) (Version, error) {
	if i := strings.LastIndexByte(ref, '@'); i >= 0 {
		return newVersion(ref[:i], ref[i+1:], ref)
	}
	i := strings.LastIndexByte(ref, '/')
	if i < 0 {
		return Version{}, fmt.Errorf("invalid reference %q: missing version", ref)
	}
	return newVersion(ref[:i], ref[i+1:], ref)
}

func newVersion(path, ver, ref string) (Version, error) {
	if path == "" || ver == "" {
		return Version{}, fmt.Errorf("invalid reference %q", ref)
	}
	return Version{Path: path, Version: ver}, nil
}

// EscapePath returns the escaped form of the given module path as a valid
// file system path. It fails if the module path is invalid.
func EscapePath(path string) (escaped string, err error) {
	return filepath.Localize(path)
}
