// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/config"
	"github.com/rcgen/rcg/internal/output"
)

var (
	// Global flags
	configFlag       string
	verboseFlag      bool
	timestampsFlag   bool
	templatesDirFlag string
	placeholderFlag  string

	// appFs is the filesystem every command reads and writes through.
	appFs afero.Fs = afero.NewOsFs()

	// Resolved configuration (loaded during PersistentPreRunE)
	configPath     config.ResolveConfigPathResult
	loadedConfig   *config.LoadResult
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for rcg.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	appFs = fsys
	loadedConfig = nil
	resolvedConfig = nil

	rootCmd := &cobra.Command{
		Use:   "rcg",
		Short: "React component generator",
		Long: `rcg scaffolds React function components.

Each component gets its own directory holding the component source and a
module stylesheet, named after the PascalCase form of the name you give:
user_profile and user-profile both become UserProfile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RCG_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().StringVar(&templatesDirFlag, "templates-dir", "", "Directory with custom templates (env: RCG_TEMPLATES_DIR)")
	rootCmd.PersistentFlags().StringVar(&placeholderFlag, "placeholder", "", "Token replaced with the component name (env: RCG_PLACEHOLDER)")

	for _, c := range componentCommands() {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		output.Debug("config path resolution failed", "error", err)
	}
	configPath = pathResult

	var file *config.Config
	if pathResult.ConfigPath != "" {
		result, err := config.NewLoaderWithFs(appFs).Load(pathResult.ConfigPath)
		if err != nil {
			// Don't fail here; config vet reports the problem.
			output.Debug("config load error", "error", err)
		} else {
			loadedConfig = result
			file = result.File
		}
	}

	opts := config.ResolveOptions{
		TemplatesDirFlag: templatesDirFlag,
		PlaceholderFlag:  placeholderFlag,
		File:             file,
	}
	if cmd.Flags().Changed("timestamps") {
		opts.TimestampsFlag = output.BoolPtr(timestampsFlag)
	}
	resolvedConfig = config.ResolveAll(opts)

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: output.BoolPtr(resolvedConfig.Timestamps),
		Writer:     cmd.ErrOrStderr(),
	})

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configPath.ConfigPath,
			"configSource", configPath.Source,
			"configFound", loadedConfig != nil && loadedConfig.Found,
		)
		config.LogResolvedValues(resolvedConfig.Values())
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	if resolvedConfig == nil {
		return config.ResolveAll(config.ResolveOptions{
			TemplatesDirFlag: templatesDirFlag,
			PlaceholderFlag:  placeholderFlag,
		})
	}
	return resolvedConfig
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if configPath.ConfigPath != "" {
		return configPath.ConfigPath
	}
	return configFlag
}
