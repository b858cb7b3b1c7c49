package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
)

// reportError prints err to the command's error stream and returns an
// ExitError marked as printed so main does not print it again.
func reportError(cmd *cobra.Command, err error) error {
	return reportErrorWithCode(cmd, err, oerrors.ExitCodeFromError(err))
}

func reportErrorWithCode(cmd *cobra.Command, err error, code int) error {
	w := cmd.ErrOrStderr()
	output.Debug("command failed", "exit", code, "reason", oerrors.ExitCodeName(code))

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprintln(w, output.FormatMessage(output.LevelFailure, detail.Message))
		if detail.Location != "" {
			fmt.Fprintln(w, "  "+output.StyleNoun.Render(detail.Location))
		}
		if detail.Hint != "" {
			fmt.Fprintln(w, output.StyleDim.Render("Hint: "+detail.Hint))
		}
	} else {
		fmt.Fprintln(w, output.FormatMessage(output.LevelFailure, err.Error()))
	}

	return &oerrors.ExitError{Err: err, Code: code, Printed: true}
}
