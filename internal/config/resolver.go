package config

import (
	"os"

	"github.com/rcgen/rcg/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single configuration value and the layer that supplied it.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RCG_CONFIG env, (3) ~/.rcg/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveOptions carries the layers that feed ResolveAll.
type ResolveOptions struct {
	// TemplatesDirFlag is the --templates-dir flag value (empty if not set).
	TemplatesDirFlag string
	// PlaceholderFlag is the --placeholder flag value (empty if not set).
	PlaceholderFlag string
	// TimestampsFlag is the --timestamps flag value (nil if not set).
	TimestampsFlag *bool
	// File holds values read from the config file; nil when there is none.
	File *Config
}

// ResolvedConfig is the effective configuration after precedence is applied.
type ResolvedConfig struct {
	TemplatesDir ResolvedValue
	Placeholder  ResolvedValue
	ComponentExt ResolvedValue
	StyleExt     ResolvedValue
	Timestamps   bool
}

// Config returns the resolved values as a plain Config.
func (r *ResolvedConfig) Config() *Config {
	ts := r.Timestamps
	return &Config{
		TemplatesDir: r.TemplatesDir.Value,
		Placeholder:  r.Placeholder.Value,
		ComponentExt: r.ComponentExt.Value,
		StyleExt:     r.StyleExt.Value,
		Log:          LogConfig{Timestamps: &ts},
	}
}

// Values lists the resolved string values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.TemplatesDir, r.Placeholder, r.ComponentExt, r.StyleExt}
}

// ResolveAll resolves every setting using precedence flag > env > config > default.
func ResolveAll(opts ResolveOptions) *ResolvedConfig {
	file := opts.File
	if file == nil {
		file = &Config{}
	}

	timestamps := true
	switch {
	case opts.TimestampsFlag != nil:
		timestamps = *opts.TimestampsFlag
	case file.Log.Timestamps != nil:
		timestamps = *file.Log.Timestamps
	}

	return &ResolvedConfig{
		TemplatesDir: resolveString(KeyTemplatesDir, opts.TemplatesDirFlag, EnvTemplatesDir, file.TemplatesDir, ""),
		Placeholder:  resolveString(KeyPlaceholder, opts.PlaceholderFlag, EnvPlaceholder, file.Placeholder, DefaultPlaceholder),
		ComponentExt: resolveString(KeyComponentExt, "", EnvComponentExt, file.ComponentExt, DefaultComponentExt),
		StyleExt:     resolveString(KeyStyleExt, "", EnvStyleExt, file.StyleExt, DefaultStyleExt),
		Timestamps:   timestamps,
	}
}

func resolveString(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	layers := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envName)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, l := range layers {
		if l.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = l.value
			rv.Source = l.source
			continue
		}
		rv.Shadowed[l.source] = l.value
	}

	if rv.Source == "" {
		rv.Source = SourceDefault
	}
	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
