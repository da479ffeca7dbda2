package recipe

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Option is a single binary configuration option: its allowed values, the
// declared default and, once chosen, the value for this build.
type Option struct {
	Values  []string
	Default string
	Value   string
}

// BoolOption declares an option over {"true", "false"}.
func BoolOption(def bool) Option {
	return Option{Values: []string{"true", "false"}, Default: strconv.FormatBool(def)}
}

func (o Option) isBool() bool {
	return len(o.Values) == 2 && slices.Contains(o.Values, "true") && slices.Contains(o.Values, "false")
}

func (o Option) resolved() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Default
}

// Options is the option set of a recipe, keyed by option name.
type Options map[string]Option

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for name, opt := range o {
		opt.Values = slices.Clone(opt.Values)
		out[name] = opt
	}
	return out
}

// Has reports whether name is part of the option set.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Delete removes name from the option set. Deleting an absent option is a no-op.
func (o Options) Delete(name string) {
	delete(o, name)
}

// Names returns the option names in sorted order.
func (o Options) Names() []string {
	return slices.Sorted(maps.Keys(o))
}

// Set chooses value for option name. Boolean options accept anything
// strconv.ParseBool does and store the canonical "true"/"false".
func (o Options) Set(name, value string) error {
	opt, ok := o[name]
	if !ok {
		return zerr.With(zerr.Wrap(ErrUnknownOption, "option "+name+" does not exist"), "option", name)
	}
	if opt.isBool() {
		if b, err := strconv.ParseBool(value); err == nil {
			value = strconv.FormatBool(b)
		}
	}
	if !slices.Contains(opt.Values, value) {
		msg := fmt.Sprintf("%s=%q is not one of %v", name, value, opt.Values)
		return zerr.With(zerr.Wrap(ErrInvalidOptionValue, msg), "option", name)
	}
	opt.Value = value
	o[name] = opt
	return nil
}

// Get returns the resolved value of name: the chosen value, or the default.
func (o Options) Get(name string) (string, bool) {
	opt, ok := o[name]
	if !ok {
		return "", false
	}
	return opt.resolved(), true
}

// Bool returns the resolved value of name as a boolean. Absent or
// non-boolean options report false.
func (o Options) Bool(name string) bool {
	v, ok := o.Get(name)
	if !ok {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

// Resolved returns every option's resolved value keyed by name.
func (o Options) Resolved() map[string]string {
	out := make(map[string]string, len(o))
	for name, opt := range o {
		out[name] = opt.resolved()
	}
	return out
}

// String returns the canonical "name=value,..." form sorted by name.
func (o Options) String() string {
	names := o.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + o[name].resolved()
	}
	return strings.Join(parts, ",")
}

func (o Options) validate() error {
	for _, name := range o.Names() {
		opt := o[name]
		if len(opt.Values) == 0 {
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, "option declares no values"), "option", name)
		}
		if !slices.Contains(opt.Values, opt.Default) {
			msg := fmt.Sprintf("default %s=%q is not one of %v", name, opt.Default, opt.Values)
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, msg), "option", name)
		}
	}
	return nil
}
