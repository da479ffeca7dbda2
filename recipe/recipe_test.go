package recipe

import (
	"context"
	"errors"
	"testing"
)

func noop(*Context) error { return nil }

func newTestRecipe() *Recipe {
	return &Recipe{
		Identity: Identity{Name: "getopt", Version: "0.1"},
		Settings: []string{AxisOS, AxisCompiler, AxisBuildType, AxisArch},
		Options:  testOptions(),
		ConfigOptions: func(opts Options, targetOS string) {
			if targetOS == OSWindows {
				opts.Delete("fPIC")
			}
		},
		Layout:   noop,
		Generate: noop,
		Build:    noop,
		Package:  noop,
	}
}

func TestConfigureOptions(t *testing.T) {
	r := newTestRecipe()

	win := r.ConfigureOptions(OSWindows)
	if win.Has("fPIC") {
		t.Error("Windows options contain fPIC")
	}
	if got := win.String(); got != "shared=false" {
		t.Errorf("Windows options = %q, want shared=false", got)
	}

	for _, goos := range []string{OSLinux, OSMacos, "FreeBSD", "Android", ""} {
		opts := r.ConfigureOptions(goos)
		if got, ok := opts.Get("fPIC"); !ok || got != "true" {
			t.Errorf("os %q: fPIC = %q, %v; want true", goos, got, ok)
		}
		if got, _ := opts.Get("shared"); got != "false" {
			t.Errorf("os %q: shared = %q, want false", goos, got)
		}
	}

	if !r.Options.Has("fPIC") {
		t.Error("ConfigureOptions mutated the declared options")
	}
}

func TestConfigureOptionsIdempotent(t *testing.T) {
	r := newTestRecipe()
	for _, goos := range []string{OSWindows, OSLinux} {
		first := r.ConfigureOptions(goos).String()
		second := r.ConfigureOptions(goos).String()
		if first != second {
			t.Errorf("os %q: first = %q, second = %q", goos, first, second)
		}
	}
	if got := r.ConfigureOptions(OSLinux).String(); got != "fPIC=true,shared=false" {
		t.Errorf("Linux after Windows = %q", got)
	}
}

func TestConfigureOptionsWithoutHook(t *testing.T) {
	r := newTestRecipe()
	r.ConfigOptions = nil
	if !r.ConfigureOptions(OSWindows).Has("fPIC") {
		t.Error("options changed without a ConfigOptions hook")
	}
}

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Recipe)
	}{
		{"missing name", func(r *Recipe) { r.Name = "" }},
		{"missing version", func(r *Recipe) { r.Version = "" }},
		{"bad version", func(r *Recipe) { r.Version = "one.two" }},
		{"unknown axis", func(r *Recipe) { r.Settings = append(r.Settings, "libc") }},
		{"bad default", func(r *Recipe) { r.Options["shared"] = Option{Values: []string{"true", "false"}} }},
		{"missing layout", func(r *Recipe) { r.Layout = nil }},
		{"missing generate", func(r *Recipe) { r.Generate = nil }},
		{"missing build", func(r *Recipe) { r.Build = nil }},
		{"missing package", func(r *Recipe) { r.Package = nil }},
	}

	if err := newTestRecipe().Validate(); err != nil {
		t.Fatalf("Validate() on a complete recipe: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecipe()
			tt.modify(r)
			if err := r.Validate(); !errors.Is(err, ErrInvalidRecipe) {
				t.Errorf("Validate() error = %v, want ErrInvalidRecipe", err)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	id := Identity{Name: "getopt", Version: "0.1"}
	if got := id.Ref(); got != "getopt/0.1" {
		t.Errorf("Ref() = %q", got)
	}
	for _, ver := range []string{"0.1", "v0.1", "1.2.3", "1.2.3-rc.1"} {
		id.Version = ver
		if err := id.Validate(); err != nil {
			t.Errorf("Validate() with version %q: %v", ver, err)
		}
	}
}

func TestContextDefaults(t *testing.T) {
	var c Context
	if c.Context() == nil {
		t.Error("zero Context returned a nil context.Context")
	}
	if c.Logger() == nil {
		t.Error("zero Context returned a nil logger")
	}

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	nc := NewContext(ctx)
	if nc.Context().Value(key{}) != "v" {
		t.Error("NewContext did not keep the context")
	}
	if nc.Stdout == nil || nc.Stderr == nil || nc.Log == nil {
		t.Error("NewContext left writers or logger unset")
	}
}
