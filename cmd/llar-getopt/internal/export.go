package internal

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goplus/llar-getopt/internal/build"
	"github.com/goplus/llar-getopt/internal/export"
)

func (c *CLI) newExportCmd() *cobra.Command {
	var dest string
	cmd := &cobra.Command{
		Use:   "export [recipe-dir]",
		Short: "Export the recipe sources to the workspace",
		Long:  `Export copies the files matched by the recipe's exported source patterns to the workspace, or only to the -o destination.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.loadRecipe()
			if err != nil {
				return err
			}
			recipeDir := dirArg(args)

			if dest != "" {
				if err := r.Validate(); err != nil {
					return err
				}
				m, err := export.Export(recipeDir, dest, r.ExportsSources)
				if err != nil {
					return err
				}
				c.log.Info("exported", "ref", r.Ref(), "dest", dest, "files", len(m.Files))
				for _, p := range m.Paths() {
					printf(cmd, "%s\n", filepath.Join(dest, p))
				}
				return nil
			}

			b, err := build.NewBuilder(build.Options{WorkspaceDir: c.home, Logger: c.log})
			if err != nil {
				return err
			}
			exp, err := b.Export(r, recipeDir)
			if err != nil {
				return err
			}
			printf(cmd, "%s %s\n", exp.Dir, exp.Revision)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dest, "output", "o", "", "Export to this directory instead of the workspace")
	return cmd
}
