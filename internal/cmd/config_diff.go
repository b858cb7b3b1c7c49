package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/config"
	"github.com/rcgen/rcg/internal/output"
)

// NewConfigDiffCmd creates the config diff command.
func NewConfigDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Compare the effective configuration with the defaults",
		Long: `Compare the effective configuration with the built-in defaults.

Shows every value changed by a flag, an environment variable or the
config file.`,
		Args: cobra.NoArgs,
		RunE: runConfigDiff,
	}
}

func runConfigDiff(cmd *cobra.Command, args []string) error {
	diff, err := config.Diff(config.DefaultConfig(), GetResolvedConfig().Config(), output.IsTTY())
	if err != nil {
		return reportError(cmd, err)
	}

	out := cmd.OutOrStdout()
	if diff == "" {
		fmt.Fprintln(out, output.FormatCheckmark("effective configuration matches the defaults"))
		return nil
	}
	fmt.Fprintln(out, diff)
	return nil
}
