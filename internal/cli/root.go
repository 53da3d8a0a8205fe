package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/kindlenotes/internal/config"
)

// BuildInfo identifies the running binary. Set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand assembles the kindlenotes command tree. Flag defaults are
// taken from cfg so environment settings apply unless overridden.
func NewRootCommand(cfg *config.Config, info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "kindlenotes <notebook.html>",
		Short: "Convert Kindle notebook exports to Markdown outlines",
		Long: `kindlenotes reads the HTML file produced by Kindle's "Export Notebook"
feature and writes a nested Markdown outline of the book's highlights and
notes, grouped by chapter in reading order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readConvertOptions(cmd, args)
			if err != nil {
				return err
			}
			return RunConvert(opts, cmd.OutOrStdout())
		},
	}

	addConvertFlags(root, cfg)

	root.AddCommand(
		newServeCommand(cfg, info),
		newLibraryCommand(cfg),
		newVersionCommand(info),
	)
	return root
}

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kindlenotes %s (commit %s)\n", info.Version, info.Commit)
		},
	}
}
