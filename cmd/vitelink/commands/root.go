// Package commands implements the CLI commands for vitelink.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vitelink/internal/app"
	"go.trai.ch/vitelink/internal/build"
	"go.trai.ch/vitelink/internal/core/domain"
)

// CLI represents the command line interface for vitelink.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vitelink",
		Short:         "Resolve Vite build manifests into HTML asset tags",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("manifest", "m", "", "Path to the build manifest file")
	rootCmd.PersistentFlags().StringP("base", "b", "", "Public base URL prefixed to every emitted path")
	rootCmd.PersistentFlags().BoolP("dev", "d", false, "Emit dev server tags instead of reading the manifest")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newURLCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// overrides collects the persistent flag values into per-call options.
func overrides(cmd *cobra.Command) domain.Options {
	manifest, _ := cmd.Flags().GetString("manifest")
	base, _ := cmd.Flags().GetString("base")
	dev, _ := cmd.Flags().GetBool("dev")
	return domain.Options{Manifest: manifest, Base: base, Dev: dev}
}
