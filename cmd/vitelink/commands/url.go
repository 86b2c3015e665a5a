package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <name>",
		Short: "Print the public URL for a single source-relative asset name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := c.app.URLFor(cmd.Context(), args[0], overrides(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
