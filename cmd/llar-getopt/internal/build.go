package internal

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/goplus/llar-getopt/internal/engine"
	"github.com/goplus/llar-getopt/internal/profile"
	"github.com/goplus/llar-getopt/recipe"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var (
		packageDir string
		settings   []string
		options    []string
	)
	cmd := &cobra.Command{
		Use:   "build [source-dir]",
		Short: "Run the recipe lifecycle in place in a source directory",
		Long: `Build configures the options, lays out the build tree, generates the
CMake toolchain, builds and installs into the package directory, all inside
source-dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.loadRecipe()
			if err != nil {
				return err
			}
			sourceDir, err := filepath.Abs(dirArg(args))
			if err != nil {
				return err
			}
			if packageDir == "" {
				packageDir = filepath.Join(sourceDir, "package")
			}
			if packageDir, err = filepath.Abs(packageDir); err != nil {
				return err
			}

			p, err := profile.Load("")
			if err != nil {
				return err
			}
			if err := p.Apply(settings, options); err != nil {
				return err
			}
			matrix := p.Matrix(r.Options.Names()...)
			combos := matrix.Expand()
			if len(combos) != 1 {
				return zerr.With(zerr.New("build needs a single value per setting and option"), "combinations", len(combos))
			}
			s, err := recipe.SettingsFrom(combos[0].Require)
			if err != nil {
				return err
			}

			stdout, stderr := c.toolOutput(cmd)
			res, err := engine.New(c.log).Run(cmd.Context(), r, engine.Params{
				Settings:   s,
				Options:    combos[0].Options,
				RootDir:    sourceDir,
				PackageDir: packageDir,
				Stdout:     stdout,
				Stderr:     stderr,
			})
			if err != nil {
				return err
			}
			printf(cmd, "%s %s %s\n", r.Ref(), res.Options, res.Layout.PackageDir)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&packageDir, "package-dir", "", "Package directory (default <source-dir>/package)")
	flags.StringArrayVarP(&settings, "settings", "s", nil, "Settings override key=value")
	flags.StringArrayVarP(&options, "options", "o", nil, "Option override key=value")
	return cmd
}
