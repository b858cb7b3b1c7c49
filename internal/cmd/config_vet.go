package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/config"
	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the rcg configuration.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML and matches the config schema
  3. The effective configuration, including environment overrides,
     matches the config schema

The config path is resolved using precedence:
  --config flag > RCG_CONFIG env > ~/.rcg/config.yaml

Examples:
  # Validate default configuration
  rcg config vet

  # Validate custom config path
  rcg config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return reportError(cmd, err)
	}

	output.Debug("validating config", "path", configPath)

	exists, err := afero.Exists(appFs, configPath)
	if err != nil {
		return reportError(cmd, oerrors.NewStorageError("stat", configPath, err))
	}
	if !exists {
		return reportError(cmd, oerrors.NewNotFoundError(
			"configuration file not found",
			configPath,
			"Run 'rcg config init' to create default configuration",
		))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return reportError(cmd, err)
	}

	if err := validator.ValidateFile(appFs, configPath); err != nil {
		return reportError(cmd, err)
	}
	if err := validator.Validate(GetResolvedConfig().Config()); err != nil {
		return reportError(cmd, fmt.Errorf("effective configuration: %w", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+output.StyleNoun.Render(configPath)))
	return nil
}
