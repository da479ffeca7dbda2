package recipe

import (
	"errors"
	"testing"
)

func TestSettingsFrom(t *testing.T) {
	s, err := SettingsFrom(map[string]string{
		"os":         "Linux",
		"compiler":   "gcc",
		"build_type": "Release",
		"arch":       "x86_64",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{OS: "Linux", Compiler: "gcc", BuildType: "Release", Arch: "x86_64"}
	if s != want {
		t.Errorf("SettingsFrom() = %+v, want %+v", s, want)
	}
	if got := s.String(); got != "arch=x86_64,build_type=Release,compiler=gcc,os=Linux" {
		t.Errorf("String() = %q", got)
	}

	if _, err := SettingsFrom(map[string]string{"libc": "musl"}); !errors.Is(err, ErrUnsupportedSetting) {
		t.Errorf("unknown axis error = %v, want ErrUnsupportedSetting", err)
	}
}

func TestSettingsRequire(t *testing.T) {
	s := Settings{OS: "Linux", BuildType: "Release", Arch: "x86_64"}
	if err := s.Require(AxisOS, AxisArch); err != nil {
		t.Errorf("Require(os, arch): %v", err)
	}
	if err := s.Require(AxisOS, AxisCompiler); !errors.Is(err, ErrMissingSetting) {
		t.Errorf("Require(compiler) error = %v, want ErrMissingSetting", err)
	}
	if err := s.Require("libc"); !errors.Is(err, ErrUnsupportedSetting) {
		t.Errorf("Require(libc) error = %v, want ErrUnsupportedSetting", err)
	}
}

func TestSettingsValues(t *testing.T) {
	s := Settings{OS: "Windows", Compiler: "msvc"}
	got := s.Values([]string{AxisOS, AxisCompiler, "libc"})
	if len(got) != 2 || got[AxisOS] != "Windows" || got[AxisCompiler] != "msvc" {
		t.Errorf("Values() = %v", got)
	}
}
