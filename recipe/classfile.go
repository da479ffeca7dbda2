package recipe

import (
	"github.com/goplus/llar-getopt/pkgs/mod/module"
	"github.com/qiniu/x/gsh"
)

const GopPackage = true

// -----------------------------------------------------------------------------

// RecipeF is the classfile base of scripted recipes (*_recipe.gox).
type RecipeF struct {
	gsh.App

	desc Recipe
}

func (p *RecipeF) app() *gsh.App {
	return &p.App
}

// Recipe returns the recipe declared by the script.
func (p *RecipeF) Recipe() *Recipe {
	r := p.desc
	r.Options = r.Options.Clone()
	return &r
}

// Name sets the package name.
func (p *RecipeF) Name(name string) {
	p.desc.Name = name
}

// Version sets the package version.
func (p *RecipeF) Version(ver string) {
	p.desc.Version = ver
}

func (p *RecipeF) License(license string) {
	p.desc.License = license
}

func (p *RecipeF) Author(author string) {
	p.desc.Author = author
}

func (p *RecipeF) Url(url string) {
	p.desc.URL = url
}

func (p *RecipeF) Description(desc string) {
	p.desc.Description = desc
}

// Settings declares the settings axes the package binaries vary over.
func (p *RecipeF) Settings(axes ...string) {
	p.desc.Settings = append(p.desc.Settings, axes...)
}

// Option declares an option with its allowed values and default.
func (p *RecipeF) Option(name string, values []string, def string) {
	if p.desc.Options == nil {
		p.desc.Options = Options{}
	}
	p.desc.Options[name] = Option{Values: values, Default: def}
}

// ExportsSources declares the file patterns exported with the recipe.
func (p *RecipeF) ExportsSources(patterns ...string) {
	p.desc.ExportsSources = append(p.desc.ExportsSources, patterns...)
}

// Requires declares that the package builds against path at version ver.
func (p *RecipeF) Requires(path, ver string) {
	p.desc.Requires = append(p.desc.Requires, module.Version{Path: path, Version: ver})
}

// -----------------------------------------------------------------------------

// OnConfigOptions event adjusts the declared options for the target OS.
func (p *RecipeF) OnConfigOptions(f func(opts Options, targetOS string)) {
	p.desc.ConfigOptions = f
}

// OnLayout event establishes the directory layout of the build.
func (p *RecipeF) OnLayout(f func(c *Context) error) {
	p.desc.Layout = f
}

// OnGenerate event writes the build-system input files.
func (p *RecipeF) OnGenerate(f func(c *Context) error) {
	p.desc.Generate = f
}

// OnBuild event configures and compiles the sources.
func (p *RecipeF) OnBuild(f func(c *Context) error) {
	p.desc.Build = f
}

// OnPackage event installs the build into the package directory.
func (p *RecipeF) OnPackage(f func(c *Context) error) {
	p.desc.Package = f
}

// -----------------------------------------------------------------------------

// Gopt_RecipeF_Main is main entry of this classfile.
func Gopt_RecipeF_Main(this interface {
	app() *gsh.App
	MainEntry()
}) {
	this.MainEntry()
	gsh.InitApp(this.app())
}
