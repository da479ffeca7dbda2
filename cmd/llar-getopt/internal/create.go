package internal

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/goplus/llar-getopt/internal/build"
	"github.com/goplus/llar-getopt/internal/profile"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	var (
		profilePath string
		settings    []string
		options     []string
		jobs        int
		force       bool
		output      string
	)
	cmd := &cobra.Command{
		Use:   "create [recipe-dir]",
		Short: "Export the recipe and build a package for every matrix combination",
		Long: `Create exports the recipe sources and builds one binary package per
combination of the profile's settings and options. Cached packages are reused
unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.loadRecipe()
			if err != nil {
				return err
			}
			p, err := profile.Load(profilePath)
			if err != nil {
				return err
			}
			if err := p.Apply(settings, options); err != nil {
				return err
			}
			matrix := p.Matrix(r.Options.Names()...)
			combos := matrix.Expand()
			c.log.Debug("build matrix", "combinations", len(combos))

			// Resolve output path before building
			if output != "" {
				if len(combos) != 1 {
					return zerr.With(zerr.New("--output needs a single combination"), "combinations", len(combos))
				}
				if output, err = filepath.Abs(output); err != nil {
					return err
				}
			}

			stdout, stderr := c.toolOutput(cmd)
			b, err := build.NewBuilder(build.Options{
				WorkspaceDir: c.home,
				Logger:       c.log,
				Jobs:         jobs,
				Force:        force,
				Stdout:       stdout,
				Stderr:       stderr,
			})
			if err != nil {
				return err
			}
			results, err := b.Create(cmd.Context(), r, dirArg(args), combos)
			if err != nil {
				return err
			}
			for _, res := range results {
				printf(cmd, "%s %s %s cached=%s\n", res.Ref, res.Combination, res.PackageDir, strconv.FormatBool(res.Cached))
			}

			if output != "" {
				if err := outputResult(results[0].PackageDir, output); err != nil {
					return zerr.Wrap(err, "failed to write output")
				}
				c.log.Info("package written", "output", output)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&profilePath, "profile", "p", "", "Profile file (.toml, .yaml, .yml or .json)")
	flags.StringArrayVarP(&settings, "settings", "s", nil, "Settings override key=value; commas list several values")
	flags.StringArrayVarP(&options, "options", "o", nil, "Option override key=value; commas list several values")
	flags.IntVarP(&jobs, "jobs", "j", 1, "Combinations built at once")
	flags.BoolVar(&force, "force", false, "Rebuild cached packages")
	flags.StringVar(&output, "output", "", "Copy the package to this directory, or zip it when the path ends in .zip")
	return cmd
}
