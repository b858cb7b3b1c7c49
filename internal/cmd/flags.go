package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
)

// OutputFlags holds the output format flag shared by listing commands
// (templates list, config show).
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
}

// Parse returns the selected format or an invalid input error.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", oerrors.NewInvalidInputError(
			fmt.Sprintf("unknown output format %q", f.Format),
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "),
		)
	}
	return format, nil
}

// ForceFlags holds the overwrite flag for commands that write files
// (templates export, config init).
type ForceFlags struct {
	Force bool
}

// AddTo registers the force flag on the given cobra command.
func (f *ForceFlags) AddTo(cmd *cobra.Command, usage string) {
	cmd.Flags().BoolVarP(&f.Force, "force", "f", false, usage)
}
