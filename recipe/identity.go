package recipe

import (
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Identity is the static identity of a package. It is declared when the
// recipe is authored and never changes during a build.
type Identity struct {
	Name        string
	Version     string
	License     string
	Author      string
	URL         string
	Description string
}

// Ref returns the "name/version" reference of the package.
func (id Identity) Ref() string {
	return id.Name + "/" + id.Version
}

// Validate checks that the identity names a package and carries a
// semver-shaped version. Short forms such as "0.1" are accepted.
func (id Identity) Validate() error {
	if id.Name == "" {
		return zerr.Wrap(ErrInvalidRecipe, "package name is empty")
	}
	if id.Version == "" {
		return zerr.With(zerr.Wrap(ErrInvalidRecipe, "package version is empty"), "name", id.Name)
	}
	if !semver.IsValid("v" + strings.TrimPrefix(id.Version, "v")) {
		return zerr.With(zerr.Wrap(ErrInvalidRecipe, "package version is not a valid version"), "version", id.Version)
	}
	return nil
}
