package recipe

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Settings axes.
const (
	AxisOS        = "os"
	AxisCompiler  = "compiler"
	AxisBuildType = "build_type"
	AxisArch      = "arch"
)

// Axes lists every settings axis a recipe may vary over.
var Axes = []string{AxisOS, AxisCompiler, AxisBuildType, AxisArch}

// Operating systems.
const (
	OSWindows = "Windows"
	OSLinux   = "Linux"
	OSMacos   = "Macos"
)

// Settings is the (os, compiler, build_type, arch) tuple a single package
// build is performed for. It is read-only input to the recipe.
type Settings struct {
	OS        string
	Compiler  string
	BuildType string
	Arch      string
}

// SettingsFrom converts an axis->value map into Settings.
func SettingsFrom(values map[string]string) (Settings, error) {
	var s Settings
	for axis, v := range values {
		switch axis {
		case AxisOS:
			s.OS = v
		case AxisCompiler:
			s.Compiler = v
		case AxisBuildType:
			s.BuildType = v
		case AxisArch:
			s.Arch = v
		default:
			return Settings{}, zerr.With(zerr.Wrap(ErrUnsupportedSetting, "unknown settings axis"), "axis", axis)
		}
	}
	return s, nil
}

// Get returns the value of axis. ok is false for an unknown axis.
func (s Settings) Get(axis string) (v string, ok bool) {
	switch axis {
	case AxisOS:
		return s.OS, true
	case AxisCompiler:
		return s.Compiler, true
	case AxisBuildType:
		return s.BuildType, true
	case AxisArch:
		return s.Arch, true
	}
	return "", false
}

// Values returns the values of the given axes keyed by axis name.
func (s Settings) Values(axes []string) map[string]string {
	out := make(map[string]string, len(axes))
	for _, axis := range axes {
		if v, ok := s.Get(axis); ok {
			out[axis] = v
		}
	}
	return out
}

// Require reports the first of axes that has no value.
func (s Settings) Require(axes ...string) error {
	for _, axis := range axes {
		v, ok := s.Get(axis)
		if !ok {
			return zerr.With(zerr.Wrap(ErrUnsupportedSetting, "unknown settings axis"), "axis", axis)
		}
		if v == "" {
			return zerr.With(zerr.Wrap(ErrMissingSetting, "settings."+axis+" is not defined"), "axis", axis)
		}
	}
	return nil
}

// String returns the canonical "axis=value,..." form, sorted by axis, with
// empty axes omitted.
func (s Settings) String() string {
	vals := s.Values(Axes)
	keys := make([]string, 0, len(vals))
	for k, v := range vals {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + vals[k]
	}
	return strings.Join(parts, ",")
}
