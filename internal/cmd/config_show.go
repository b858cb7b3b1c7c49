package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/config"
	"github.com/rcgen/rcg/internal/output"
)

var configShowFlags OutputFlags

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration and where each value came from.

Values are resolved with precedence flag > env > config file > default.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
	configShowFlags.AddTo(cmd)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := configShowFlags.Parse()
	if err != nil {
		return reportError(cmd, err)
	}

	rc := GetResolvedConfig()
	out := cmd.OutOrStdout()

	switch format {
	case output.FormatYAML:
		data, err := config.MarshalYAML(rc.Config())
		if err != nil {
			return reportError(cmd, err)
		}
		_, err = out.Write(data)
		return err
	case output.FormatJSON:
		return output.WriteJSON(out, rc.Config())
	default:
		fmt.Fprintln(out, "Config file: "+output.StyleNoun.Render(GetConfigPath()))
		tbl := output.NewTable("KEY", "VALUE", "SOURCE").Dim(2)
		for _, v := range rc.Values() {
			tbl.Row(v.Key, v.Value, string(v.Source))
		}
		tbl.Row(config.KeyLogTimestamps, fmt.Sprintf("%t", rc.Timestamps), "")
		fmt.Fprintln(out, tbl.String())
		return nil
	}
}
