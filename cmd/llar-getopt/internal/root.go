// Package internal implements the llar-getopt commands.
package internal

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goplus/llar-getopt/internal/loader"
	"github.com/goplus/llar-getopt/recipe"
	"github.com/goplus/llar-getopt/recipes/getopt"
)

// CLI holds the command tree and the state shared by the commands.
type CLI struct {
	rootCmd *cobra.Command
	log     *log.Logger

	verbose    bool
	home       string
	recipePath string
}

// New returns the llar-getopt command tree. Log output goes to logOut.
func New(logOut io.Writer) *CLI {
	c := &CLI{
		log: log.NewWithOptions(logOut, log.Options{Prefix: "llar-getopt"}),
	}
	rootCmd := &cobra.Command{
		Use:           "llar-getopt",
		Short:         "llar-getopt packages the getopt C library",
		Long:          `llar-getopt exports, configures, builds and packages the getopt C library with CMake.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if c.verbose {
				c.log.SetLevel(log.DebugLevel)
			}
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVar(&c.home, "home", "", "Workspace directory (overrides $LLAR_HOME)")
	flags.StringVar(&c.recipePath, "recipe", "", "Load a *_recipe.gox script instead of the built-in getopt recipe")

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newBuildCmd())

	c.rootCmd = rootCmd
	return c
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets where command results are printed.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// Execute runs the root command with ctx.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// Execute runs llar-getopt with the process arguments. This is called by
// main.main(). It exits with a non-zero status on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := New(os.Stderr)
	if err := c.Execute(ctx); err != nil {
		stop()
		c.log.Fatal("command failed", "err", err)
	}
}

// loadRecipe returns the scripted recipe named by --recipe, or the built-in
// getopt recipe.
func (c *CLI) loadRecipe() (*recipe.Recipe, error) {
	if c.recipePath == "" {
		return getopt.New(), nil
	}
	c.log.Debug("load recipe script", "path", c.recipePath)
	return loader.Load(c.recipePath)
}

// toolOutput returns where tool output goes: the command streams with -v,
// nowhere otherwise. Tool failures still carry the tail of their stderr.
func (c *CLI) toolOutput(cmd *cobra.Command) (stdout, stderr io.Writer) {
	if c.verbose {
		return cmd.OutOrStdout(), cmd.ErrOrStderr()
	}
	return io.Discard, io.Discard
}

// dirArg returns the first positional argument, or ".".
func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
