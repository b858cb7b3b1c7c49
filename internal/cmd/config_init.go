package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/config"
	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
)

var configInitFlags ForceFlags

// configHeader is written above the generated settings.
const configHeader = `# rcg configuration
#
# templatesDir: directory with ts_fc.txt, ts_fc_interface.txt and
#   stylesheet.scss (see "rcg templates export"); empty uses the built-in ones
# placeholder: token replaced with the component name
# componentExt / styleExt: extensions of the generated files
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the rcg configuration.

Writes the default settings to ~/.rcg/config.yaml, or to the path given by
--config or RCG_CONFIG.

Examples:
  # Initialize configuration
  rcg config init

  # Overwrite existing configuration
  rcg config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	configInitFlags.AddTo(cmd, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ExpandPath(GetConfigPath())
	if err != nil || path == "" {
		return reportError(cmd, oerrors.Wrap(oerrors.ErrNotFound, "could not determine config path"))
	}

	exists, err := afero.Exists(appFs, path)
	if err != nil {
		return reportError(cmd, oerrors.NewStorageError("stat", path, err))
	}
	if exists && !configInitFlags.Force {
		return reportError(cmd, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	body, err := config.MarshalYAML(config.DefaultConfig())
	if err != nil {
		return reportError(cmd, err)
	}

	dir := filepath.Dir(path)
	if err := appFs.MkdirAll(dir, 0o700); err != nil {
		return reportError(cmd, oerrors.NewStorageError("create directory", dir, err))
	}
	if err := afero.WriteFile(appFs, path, append([]byte(configHeader), body...), 0o600); err != nil {
		return reportError(cmd, oerrors.NewStorageError("write", path, err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(path)))
	fmt.Fprintln(out, "Validate with: rcg config vet")
	return nil
}
