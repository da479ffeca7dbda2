// Package profile loads build profiles: the settings and option values a
// package is built for. Any value may list several entries, which makes it
// an axis of the build matrix.
package profile

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/goplus/llar-getopt/recipe"
	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes environment overrides, e.g. LLAR_SETTINGS_OS.
const EnvPrefix = "LLAR"

var (
	// ErrInvalidProfile is returned when a profile file cannot be used.
	ErrInvalidProfile = zerr.New("invalid profile")

	// ErrInvalidOverride is returned for a malformed key=value override.
	ErrInvalidOverride = zerr.New("invalid override")
)

// Profile holds the values of every settings axis and option.
type Profile struct {
	Settings map[string][]string
	// Options are keyed by lower-cased option name.
	Options map[string][]string
}

// Defaults returns the settings of the host with build_type Release.
func Defaults() map[string]string {
	return map[string]string{
		recipe.AxisOS:        recipe.HostOS(),
		recipe.AxisCompiler:  recipe.HostCompiler(),
		recipe.AxisBuildType: "Release",
		recipe.AxisArch:      recipe.HostArch(),
	}
}

// Load reads the profile at path over the host defaults, then applies
// environment overrides. An empty path loads the defaults only. The format
// follows the file extension: .toml, .yaml, .yml or .json.
func Load(path string) (*Profile, error) {
	v := viper.New()
	for axis, val := range Defaults() {
		v.SetDefault("settings."+axis, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml", ".yaml", ".yml", ".json":
		default:
			return nil, zerr.With(zerr.Wrap(ErrInvalidProfile, "unsupported format "+strconv.Quote(ext)), "path", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "read profile"), "path", path)
		}
	}

	p := &Profile{
		Settings: map[string][]string{},
		Options:  map[string][]string{},
	}
	for _, key := range slices.Sorted(maps.Keys(v.GetStringMap("settings"))) {
		if !slices.Contains(recipe.Axes, key) {
			return nil, zerr.With(zerr.Wrap(recipe.ErrUnsupportedSetting, "unknown settings axis "+key), "path", path)
		}
	}
	for _, axis := range recipe.Axes {
		if vals := values(v.Get("settings." + axis)); len(vals) > 0 {
			p.Settings[axis] = vals
		}
	}
	for name := range v.GetStringMap("options") {
		if vals := values(v.Get("options." + name)); len(vals) > 0 {
			p.Options[name] = vals
		}
	}
	return p, nil
}

// values flattens a profile value into its entries. Strings are split on
// commas.
func values(raw any) []string {
	var out []string
	add := func(s string) {
		for part := range strings.SplitSeq(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	switch x := raw.(type) {
	case nil:
	case string:
		add(x)
	case []string:
		for _, s := range x {
			add(s)
		}
	case []any:
		for _, e := range x {
			add(fmt.Sprint(e))
		}
	default:
		add(fmt.Sprint(x))
	}
	return out
}

// Apply overrides settings and options from "key=value" pairs. Each pair
// replaces the whole axis; a comma-separated value lists several entries.
func (p *Profile) Apply(settings, options []string) error {
	for _, kv := range settings {
		k, vals, err := splitOverride(kv)
		if err != nil {
			return err
		}
		if !slices.Contains(recipe.Axes, k) {
			return zerr.With(zerr.Wrap(recipe.ErrUnsupportedSetting, "unknown settings axis "+k), "override", kv)
		}
		p.Settings[k] = vals
	}
	for _, kv := range options {
		k, vals, err := splitOverride(kv)
		if err != nil {
			return err
		}
		p.Options[strings.ToLower(k)] = vals
	}
	return nil
}

func splitOverride(kv string) (string, []string, error) {
	k, v, ok := strings.Cut(kv, "=")
	k = strings.TrimSpace(k)
	vals := values(v)
	if !ok || k == "" || len(vals) == 0 {
		return "", nil, zerr.With(zerr.Wrap(ErrInvalidOverride, "want key=value, got "+strconv.Quote(kv)), "override", kv)
	}
	return k, vals, nil
}

// Matrix returns the build matrix of p. Option keys are matched without
// regard to case against optionNames and take the declared spelling.
func (p *Profile) Matrix(optionNames ...string) recipe.Matrix {
	m := recipe.Matrix{
		Require: map[string][]string{},
		Options: map[string][]string{},
	}
	for axis, vals := range p.Settings {
		m.Require[axis] = slices.Clone(vals)
	}
	for key, vals := range p.Options {
		name := key
		for _, declared := range optionNames {
			if strings.EqualFold(declared, key) {
				name = declared
				break
			}
		}
		m.Options[name] = slices.Clone(vals)
	}
	return m
}
