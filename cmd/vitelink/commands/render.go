package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/vitelink/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [entries...]",
		Short: "Render the asset tags for the given entry points",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			opts := overrides(cmd)
			if images, _ := cmd.Flags().GetBool("preload-images"); images {
				opts.PreloadImages = true
			}
			if fonts, _ := cmd.Flags().GetBool("preload-fonts"); fonts {
				opts.PreloadFonts = true
			}

			tags, err := c.app.Resolve(cmd.Context(), args, opts)
			if err != nil {
				return err
			}

			section, _ := cmd.Flags().GetString("section")
			out, err := tagsSection(tags, section)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().Bool("preload-images", false, "Emit preload tags for common image assets")
	cmd.Flags().Bool("preload-fonts", false, "Emit preload tags for common font assets")
	cmd.Flags().StringP("section", "s", "all", "Which tag stream to print (preload, css, js, all)")
	return cmd
}

// tagsSection selects one of the three tag streams, or joins all non-empty
// streams in document order.
func tagsSection(tags domain.Tags, section string) (string, error) {
	switch section {
	case "preload":
		return tags.Preload, nil
	case "css":
		return tags.CSS, nil
	case "js":
		return tags.JS, nil
	case "all":
		streams := make([]string, 0, 3)
		for _, s := range []string{tags.Preload, tags.CSS, tags.JS} {
			if s != "" {
				streams = append(streams, s)
			}
		}
		return strings.Join(streams, "\n"), nil
	default:
		return "", fmt.Errorf("unknown section %q, expected preload, css, js or all", section)
	}
}
